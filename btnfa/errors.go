// Package btnfa implements the backtracking NFA execution engine: the
// State Dispatcher, Transition Evaluator, Frame Updater, Match Frame,
// Backtrack Stack, and Sub-Matcher Driver. It consumes a pnfa.NFA graph and
// a cursor.Cursor and knows nothing about parsing, lowering, or Unicode
// table construction — those remain the host's job.
package btnfa

import (
	"errors"
	"fmt"

	"github.com/coregx/btregex/pnfa"
)

// Sentinel errors, following coregx-coregex/nfa/error.go's convention of
// plain errors.New values for conditions callers may want to errors.Is
// against.
var (
	// ErrUnreachableState indicates a missing state, or a transition target
	// whose Kind the transition evaluator does not recognize — a corrupt or
	// malformed NFA graph.
	// It is always wrapped in an *InternalError.
	ErrUnreachableState = errors.New("btnfa: unreachable state kind")

	// ErrMissingSubExecutor indicates a lookaround id with no registered
	// sub-executor. Always wrapped in an *InternalError.
	ErrMissingSubExecutor = errors.New("btnfa: missing lookaround sub-executor")

	// ErrCancelled is returned when the host's cancellation flag was
	// observed set at a dispatcher safepoint. It is not a retryable error.
	ErrCancelled = errors.New("btnfa: match cancelled")

	// ErrBacktrackLimitExceeded is returned when Config.MaxBacktrackDepth
	// is set and exceeded. Unlike ErrUnreachableState and
	// ErrMissingSubExecutor this is not a corrupt-NFA condition, so it is
	// never wrapped in an *InternalError.
	ErrBacktrackLimitExceeded = errors.New("btnfa: backtrack stack depth limit exceeded")
)

// InternalError wraps a graph-invariant violation (an unreachable state, a
// missing sub-executor) with the state or lookaround id involved,
// mirroring coregx-coregex's CompileError/BuildError wrapped-error idiom.
type InternalError struct {
	State        pnfa.StateID
	LookaroundID int
	Err          error
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingSubExecutor):
		return fmt.Sprintf("btnfa: internal invariant violated: no sub-executor registered for lookaround id %d", e.LookaroundID)
	case e.State != pnfa.InvalidState:
		return fmt.Sprintf("btnfa: internal invariant violated at state %d: %v", e.State, e.Err)
	default:
		return fmt.Sprintf("btnfa: internal invariant violated: %v", e.Err)
	}
}

// Unwrap returns the underlying sentinel error.
func (e *InternalError) Unwrap() error { return e.Err }
