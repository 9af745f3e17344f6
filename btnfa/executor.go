package btnfa

import (
	"sync/atomic"

	"github.com/coregx/btregex/cursor"
	"github.com/coregx/btregex/pnfa"
)

// Executor runs one pure NFA against one cursor, forward or backward. It
// is also, recursively, what a lookaround state's sub-matcher is: a
// lookahead or lookbehind compiles to its own NFA and is evaluated by its
// own Executor instance, registered in its parent's sub-executor list and
// referenced by lookaround id.
type Executor struct {
	nfa     *pnfa.NFA
	forward bool
	fold    func(a, b rune) bool

	subExecutors []*Executor

	// writesCaptures reports whether this NFA has any capturing group of
	// its own. A parent deciding whether to inline a lookaround, or
	// whether to merge a sub-matcher's captures, reads this on the child.
	writesCaptures bool

	config    Config
	cancelled *atomic.Bool
}

// NewExecutor builds an Executor for nfa. forward selects scan direction
// (false for lookbehind sub-executors); fold is the case-folding predicate
// used by backreference region comparison, or nil to disable
// case-insensitive matching; subExecutors is indexed by lookaround id, and
// may be nil if the NFA has no lookaround states; cancelled, if non-nil,
// is polled at the top of every dispatcher step.
func NewExecutor(nfa *pnfa.NFA, forward bool, fold func(a, b rune) bool, subExecutors []*Executor, cfg Config, cancelled *atomic.Bool) *Executor {
	writesCaptures := nfa.CaptureCount() > 1
	return &Executor{
		nfa:            nfa,
		forward:        forward,
		fold:           fold,
		subExecutors:   subExecutors,
		writesCaptures: writesCaptures,
		config:         cfg,
		cancelled:      cancelled,
	}
}

// NFA returns the NFA this executor runs.
func (e *Executor) NFA() *pnfa.NFA { return e.nfa }

// Forward reports the scan direction this executor runs in.
func (e *Executor) Forward() bool { return e.forward }

// WritesCaptures reports whether this executor's NFA declares more than
// the whole-match capture group.
func (e *Executor) WritesCaptures() bool { return e.writesCaptures }

// CreateFrame allocates a Frame sized to this executor's capture,
// quantifier, and zero-width-witness counts, positioned at fromIndex,
// index, and bounded by maxIndex, with pc at the appropriate initial
// state: the anchored initial state, or — when the NFA loops back and the
// caller is starting a non-sticky search with index past fromIndex — the
// unanchored initial state.
func (e *Executor) CreateFrame(input cursor.Cursor, fromIndex, index, maxIndex int) *Frame {
	captures := make([]int, 2*e.nfa.CaptureCount())
	for i := range captures {
		captures[i] = -1
	}
	pc := e.nfa.AnchoredInitial()
	if index > fromIndex && e.nfa.InitialLoopBack() {
		pc = e.nfa.UnanchoredInitial()
	}
	return &Frame{
		Cursor:      input,
		FromIndex:   fromIndex,
		Index:       index,
		MaxIndex:    maxIndex,
		PC:          pc,
		Captures:    captures,
		QuantCounts: make([]int, e.nfa.NumQuantifiers()),
		ZeroWidth:   make([]int, e.nfa.NumZeroWidthQuantifiers()),
	}
}

// Execute runs f to completion: until a result is produced or the
// backtrack stack is exhausted. It returns (captures, nil) on a match,
// (nil, nil) on no match, and a non-nil error for cancellation or an
// internal invariant violation. compactStringHint is forwarded to every
// Cursor call untouched.
func (e *Executor) Execute(f *Frame, compactStringHint bool) ([]int, error) {
	stack := NewStack(e.config.MaxBacktrackDepth)
	pc := f.PC
	for pc != pnfa.InvalidState {
		if e.cancelled != nil && e.cancelled.Load() {
			return nil, ErrCancelled
		}
		f.PC = pc
		next, err := e.runState(f, stack, compactStringHint)
		if err != nil {
			return nil, err
		}
		if stack.Exceeded() {
			return nil, ErrBacktrackLimitExceeded
		}
		pc = next
	}
	if stack.CanPopResult() {
		return stack.PopResult(), nil
	}
	return nil, nil
}
