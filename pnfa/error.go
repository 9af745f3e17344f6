package pnfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for NFA graph construction, mirrored on
// coregx-coregex/nfa/error.go's sentinel-plus-wrapped-error idiom.
var (
	// ErrInvalidState indicates a StateID outside the graph's range.
	ErrInvalidState = errors.New("pnfa: invalid state id")

	// ErrNoStart indicates Build was asked to finalize a graph whose
	// start states were never set via Builder.SetStart.
	ErrNoStart = errors.New("pnfa: start states not set")
)

// BuildError wraps a construction-time error with the state id involved, if
// any.
type BuildError struct {
	StateID StateID
	Err     error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("pnfa: build error at state %d: %v", e.StateID, e.Err)
	}
	return fmt.Sprintf("pnfa: build error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error { return e.Err }
