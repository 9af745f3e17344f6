package btnfa

import "github.com/coregx/btregex/pnfa"

// canInline reports whether the lookaround state may be evaluated inside
// transitionMatches instead of as its own dispatcher step: it must have
// exactly one predecessor, and must either be negated or have a
// sub-executor that never writes captures. A negated lookaround's captures
// (if any) are always discarded, so inlining it never changes observable
// behavior; a positive lookaround that writes captures must run as a real
// dispatcher step so its results can be merged into the live frame.
func (e *Executor) canInline(state *pnfa.State) bool {
	if state.PredecessorCount() != 1 {
		return false
	}
	id, negated := state.Lookaround()
	if negated {
		return true
	}
	if id < 0 || id >= len(e.subExecutors) || e.subExecutors[id] == nil {
		return true
	}
	return !e.subExecutors[id].writesCaptures
}

// createSubFrame builds the frame a lookaround sub-executor evaluates
// against: it shares the outer cursor and preserves the outer fromIndex
// and maxIndex, seeding index at the outer frame's current position. Each
// sub-executor is anchored (its NFA has no unanchored-initial loop-back of
// its own), so pc starts at its anchored initial state.
func (e *Executor) createSubFrame(outer *Frame) *Frame {
	captures := make([]int, 2*e.nfa.CaptureCount())
	for i := range captures {
		captures[i] = -1
	}
	return &Frame{
		Cursor:      outer.Cursor,
		FromIndex:   outer.FromIndex,
		Index:       outer.Index,
		MaxIndex:    outer.MaxIndex,
		PC:          e.nfa.AnchoredInitial(),
		Captures:    captures,
		QuantCounts: make([]int, e.nfa.NumQuantifiers()),
		ZeroWidth:   make([]int, e.nfa.NumZeroWidthQuantifiers()),
	}
}

// runSubMatcher runs the registered sub-executor for lookaroundID against
// a frame derived from f and reports whether it found a match, along with
// the capture array it produced (nil on failure).
func (e *Executor) runSubMatcher(f *Frame, lookaroundID int, compact bool) (matched bool, captures []int, err error) {
	if lookaroundID < 0 || lookaroundID >= len(e.subExecutors) || e.subExecutors[lookaroundID] == nil {
		return false, nil, &InternalError{LookaroundID: lookaroundID, State: pnfa.InvalidState, Err: ErrMissingSubExecutor}
	}
	sub := e.subExecutors[lookaroundID]
	result, err := sub.Execute(sub.createSubFrame(f), compact)
	if err != nil {
		return false, nil, err
	}
	if result == nil {
		return false, nil, nil
	}
	return true, result, nil
}

// mergeCaptures overwrites dst with every boundary src has set, leaving
// dst's own value wherever src's slot is still -1 (unset).
func mergeCaptures(dst, src []int) {
	for i, v := range src {
		if v >= 0 {
			dst[i] = v
		}
	}
}
