package btnfa

import "github.com/coregx/btregex/pnfa"

// savedFrame is the fixed snapshot pushed onto a Stack: everything a
// deferred alternative needs to resume from, minus the fields that never
// change across a single match attempt (Cursor, FromIndex, MaxIndex).
type savedFrame struct {
	pc          pnfa.StateID
	index       int
	captures    []int
	quantCounts []int
	zeroWidth   []int
}

// Stack is the explicit, growable backtrack stack. It is deliberately not
// recursion: a pathological pattern like (a*)*b can push a number of
// frames proportional to input length times quantifier count, and an
// explicit slice-backed stack tolerates that without growing the Go call
// stack, unlike coregx-coregex's nfa.BoundedBacktracker.backtrack, whose
// (state, position) memoization keeps its own recursion shallow but does
// not generalize to an engine with backreferences (which make (state,
// position) an insufficient memoization key: the same state at the same
// position can be reachable with different captured substrings).
type Stack struct {
	frames   []savedFrame
	maxDepth int
	exceeded bool

	resultCaptures []int
	hasResult      bool
}

// NewStack returns an empty Stack. maxDepth bounds how many frames Push
// will accept; zero means unbounded.
func NewStack(maxDepth int) *Stack {
	return &Stack{maxDepth: maxDepth}
}

// Push snapshots f onto the stack. The caller is responsible for having
// already applied whatever deferred transition should be resumed from;
// Push only takes the copy. If maxDepth is set and would be exceeded, the
// push is skipped and Exceeded starts reporting true.
func (s *Stack) Push(f *Frame) {
	if s.maxDepth > 0 && len(s.frames) >= s.maxDepth {
		s.exceeded = true
		return
	}
	s.frames = append(s.frames, savedFrame{
		pc:          f.PC,
		index:       f.Index,
		captures:    append([]int(nil), f.Captures...),
		quantCounts: append([]int(nil), f.QuantCounts...),
		zeroWidth:   append([]int(nil), f.ZeroWidth...),
	})
}

// Exceeded reports whether a Push was ever dropped because maxDepth was
// reached.
func (s *Stack) Exceeded() bool {
	return s.exceeded
}

// CanPop reports whether a saved frame is available.
func (s *Stack) CanPop() bool {
	return len(s.frames) > 0
}

// Pop restores the most recently pushed frame into f and returns its pc.
// The caller must check CanPop first.
func (s *Stack) Pop(f *Frame) pnfa.StateID {
	n := len(s.frames) - 1
	saved := s.frames[n]
	s.frames = s.frames[:n]
	f.PC = saved.pc
	f.Index = saved.index
	f.Captures = saved.captures
	f.QuantCounts = saved.quantCounts
	f.ZeroWidth = saved.zeroWidth
	return saved.pc
}

// PushResult queues captures as the current best candidate result,
// overwriting any previously queued one. Calls are made in increasing
// priority order within a single dispatch step (each superseded
// alternative is deferred before the higher-priority one that replaced
// it), so the last call before a true final-state match — or before the
// dispatcher runs dry — always holds the highest-priority candidate seen
// so far.
func (s *Stack) PushResult(captures []int) {
	s.resultCaptures = append([]int(nil), captures...)
	s.hasResult = true
}

// CanPopResult reports whether a result candidate is queued.
func (s *Stack) CanPopResult() bool {
	return s.hasResult
}

// PopResult consumes and returns the queued result. The caller must check
// CanPopResult first.
func (s *Stack) PopResult() []int {
	s.hasResult = false
	return s.resultCaptures
}

// Backtrack implements the on-backtrack discipline: a queued result always
// wins over any remaining stack frame, since it represents a
// higher-priority alternative than anything still on the stack (the stack
// only ever holds alternatives deferred before the result was queued, or
// deferred at deeper — hence lower-priority — decision points reached
// while pursuing what has since dead-ended). Returns pnfa.InvalidState to
// signal "terminate" in both the success and failure case; the caller
// distinguishes them via CanPopResult.
func (s *Stack) Backtrack(f *Frame) pnfa.StateID {
	if s.CanPopResult() {
		return pnfa.InvalidState
	}
	if s.CanPop() {
		return s.Pop(f)
	}
	return pnfa.InvalidState
}
