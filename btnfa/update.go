package btnfa

import "github.com/coregx/btregex/pnfa"

// applyBoundaries writes t's GroupBoundaries update/clear bitsets into
// f.Captures using f.Index as the new boundary value. Factored out of
// updateState so the inlined-lookaround path in transitionMatches can
// apply the same boundary writes to a throwaway clone without also running
// guard bookkeeping meant for the transition actually being committed.
func (f *Frame) applyBoundaries(t *pnfa.Transition) {
	for slot := range f.Captures {
		switch {
		case t.Boundaries.IsUpdate(slot):
			f.Captures[slot] = f.Index
		case t.Boundaries.IsClear(slot):
			f.Captures[slot] = -1
		}
	}
}

// applyGuards runs each of t's QuantifierGuards against f in guard order
// (reversed when running backward), per the effect table below.
//
//	enter, enterInc, loop, loopInc   increment counter for q.Index
//	exit, exitReset                  reset counter for q.Index to 0
//	enterZeroWidth                   record f.Index in the witness slot
//	enterEmptyMatch                  jump to q.Min, or increment, depending
//	                                  on whether t carries a caret/dollar guard
//	anything else                    no effect at apply time
func (e *Executor) applyGuards(f *Frame, t *pnfa.Transition) {
	apply := func(g pnfa.QuantifierGuard) {
		q := g.Quantifier
		switch g.EffectiveKind(e.forward) {
		case pnfa.GuardEnter, pnfa.GuardEnterInc, pnfa.GuardLoop, pnfa.GuardLoopInc:
			f.QuantCounts[q.Index]++
		case pnfa.GuardExit, pnfa.GuardExitReset:
			f.QuantCounts[q.Index] = 0
		case pnfa.GuardEnterZeroWidth:
			f.ZeroWidth[q.ZeroWidthIndex] = f.Index
		case pnfa.GuardEnterEmptyMatch:
			if !t.CaretGuard && !t.DollarGuard {
				f.QuantCounts[q.Index] = q.Min
			} else {
				f.QuantCounts[q.Index]++
			}
		}
	}
	if e.forward {
		for _, g := range t.Guards {
			apply(g)
		}
		return
	}
	for i := len(t.Guards) - 1; i >= 0; i-- {
		apply(t.Guards[i])
	}
}

// getNewIndex computes the post-transition index from the target state's
// kind: a CharacterClass or InitialOrFinal state advances by one character
// in the scan direction. For a final-flavored target this is bookkeeping
// with no observable effect, since nothing reads the index of a completed
// match; for the unanchored initial state, landed on via the loop-back
// edge a non-sticky pattern installs, it moves the retry one position past
// the failed anchored attempt. Lookaround and EmptyMatch never advance; a
// BackReference advances by the length of the referenced capture, or not
// at all if that capture is unset or empty.
func (e *Executor) getNewIndex(f *Frame, t *pnfa.Transition) int {
	step := 1
	if !e.forward {
		step = -1
	}
	target := e.nfa.State(t.To(e.forward))
	switch target.Kind() {
	case pnfa.KindCharacterClass, pnfa.KindInitialOrFinal:
		return f.Index + step
	case pnfa.KindLookaround, pnfa.KindEmptyMatch:
		return f.Index
	case pnfa.KindBackReference:
		start, end, ok := e.backRefBoundary(f, t, target.BackReferenceGroup())
		if !ok || start == end {
			return f.Index
		}
		length := end - start
		if length < 0 {
			length = -length
		}
		return f.Index + step*length
	default:
		return f.Index
	}
}

// updateState is the Frame Updater: it applies t's boundary writes, then
// its guard bookkeeping, then advances the index — in that order, so that
// a BackReference guard reading the just-written boundaries via
// backRefBoundary sees this transition's own updates.
func (e *Executor) updateState(f *Frame, t *pnfa.Transition) {
	f.applyBoundaries(t)
	e.applyGuards(f, t)
	f.Index = e.getNewIndex(f, t)
}
