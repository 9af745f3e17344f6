package btnfa

import "github.com/coregx/btregex/pnfa"

// backRefBoundary resolves the [start, end) region a BackReference should
// compare against: t's own GroupBoundaries overlay takes precedence over
// the live capture array, so a group opened or closed by the very
// transition under test is visible to a backreference guarded by that same
// transition. ok is false when the group is unset.
func (e *Executor) backRefBoundary(f *Frame, t *pnfa.Transition, group int) (start, end int, ok bool) {
	resolve := func(slot int) int {
		switch {
		case t.Boundaries.IsUpdate(slot):
			return f.Index
		case t.Boundaries.IsClear(slot):
			return -1
		default:
			return f.Captures[slot]
		}
	}
	start = resolve(2 * group)
	end = resolve(2*group + 1)
	if start < 0 || end < 0 {
		return 0, 0, false
	}
	return start, end, true
}

// transitionMatches is the Transition Evaluator: it decides whether t may
// be taken out of the current state given f and the character just read,
// short-circuiting on the first failing check.
func (e *Executor) transitionMatches(f *Frame, t *pnfa.Transition, c rune, atEnd bool, compact bool) (bool, error) {
	if t.CaretGuard && f.Index != 0 {
		return false, nil
	}
	if t.DollarGuard && f.Index != f.MaxIndex {
		return false, nil
	}

	guardAdmits := func(g pnfa.QuantifierGuard) bool {
		q := g.Quantifier
		switch g.EffectiveKind(e.forward) {
		case pnfa.GuardEnter, pnfa.GuardLoop:
			return f.QuantCounts[q.Index] != q.Max
		case pnfa.GuardExit:
			return f.QuantCounts[q.Index] >= q.Min
		case pnfa.GuardExitZeroWidth:
			return !(f.ZeroWidth[q.ZeroWidthIndex] == f.Index && f.QuantCounts[q.Index] > q.Min)
		case pnfa.GuardEnterEmptyMatch:
			return f.QuantCounts[q.Index] < q.Min
		default:
			return true
		}
	}
	if e.forward {
		for _, g := range t.Guards {
			if !guardAdmits(g) {
				return false, nil
			}
		}
	} else {
		for i := len(t.Guards) - 1; i >= 0; i-- {
			if !guardAdmits(t.Guards[i]) {
				return false, nil
			}
		}
	}

	targetID := t.To(e.forward)
	target := e.nfa.State(targetID)
	if target == nil {
		return false, &InternalError{State: targetID, Err: ErrUnreachableState}
	}

	switch target.Kind() {
	case pnfa.KindInitialOrFinal:
		_, unanchoredInitial, anchoredFinal, _ := target.InitialOrFinalFlags()
		if unanchoredInitial && atEnd {
			return false, nil
		}
		if anchoredFinal && !atEnd {
			return false, nil
		}
		return true, nil

	case pnfa.KindCharacterClass:
		if atEnd || !target.CharSet().Contains(c) {
			return false, nil
		}
		return true, nil

	case pnfa.KindLookaround:
		id, negated := target.Lookaround()
		if !e.canInline(target) {
			// Not inlineable: admit here, the dispatcher runs the
			// sub-matcher once pc actually reaches this state.
			return true, nil
		}
		clone := f.Clone()
		clone.applyBoundaries(t)
		ok, _, err := e.runSubMatcher(clone, id, compact)
		if err != nil {
			return false, err
		}
		return ok != negated, nil

	case pnfa.KindBackReference:
		start, end, ok := e.backRefBoundary(f, t, target.BackReferenceGroup())
		if !ok || start == end {
			return true, nil
		}
		length := end - start
		if length < 0 {
			length = -length
		}
		var regionStart int
		if e.forward {
			if f.Index+length > f.MaxIndex {
				return false, nil
			}
			regionStart = f.Index
		} else {
			if f.Index-length < 0 {
				return false, nil
			}
			regionStart = f.Index - length
		}
		return f.Cursor.RegionMatches(start, regionStart, length, compact, e.fold), nil

	case pnfa.KindEmptyMatch:
		return true, nil

	default:
		return false, &InternalError{State: targetID, Err: ErrUnreachableState}
	}
}
