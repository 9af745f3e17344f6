package btnfa

// Config holds the tunable knobs an Executor is built with. It follows
// coregx-coregex's meta.Config idiom of a plain struct with documented
// zero-value-friendly defaults rather than functional options, since every
// field here is a single scalar a caller either wants or doesn't.
type Config struct {
	// MaxBacktrackDepth bounds how many frames Stack.Push will accept
	// before Execute returns ErrBacktrackLimitExceeded, guarding against
	// runaway memory growth on adversarial patterns the zero-width guard
	// alone does not bound (e.g. deeply nested bounded quantifiers against
	// long input). Zero means unbounded, which is the default: the host is
	// expected to enforce wall-clock or memory limits itself via the
	// cancellation flag, per the cooperative-cancellation model.
	MaxBacktrackDepth int
}

// DefaultConfig returns the zero-value Config: no backtrack depth limit,
// leaving resource bounding to the host's cancellation flag.
func DefaultConfig() Config {
	return Config{}
}
