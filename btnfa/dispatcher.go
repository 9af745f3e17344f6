package btnfa

import "github.com/coregx/btregex/pnfa"

// runState is the State Dispatcher: one step of the run loop, taking
// f.PC's state and either committing to a successor, deferring the rest
// for backtracking, or terminating the run. It returns pnfa.InvalidState
// to mean "stop" — check stack.CanPopResult() to tell success from
// exhaustion.
func (e *Executor) runState(f *Frame, stack *Stack, compact bool) (pnfa.StateID, error) {
	state := e.nfa.State(f.PC)
	if state == nil {
		return pnfa.InvalidState, &InternalError{State: f.PC, Err: ErrUnreachableState}
	}

	if state.IsFinal() {
		stack.PushResult(f.Captures)
		return pnfa.InvalidState, nil
	}

	if state.Kind() == pnfa.KindLookaround && !e.canInline(state) {
		id, negated := state.Lookaround()
		matched, subCaptures, err := e.runSubMatcher(f, id, compact)
		if err != nil {
			return pnfa.InvalidState, err
		}
		if matched == negated {
			return stack.Backtrack(f), nil
		}
		if !negated && subCaptures != nil && e.subExecutors[id].writesCaptures {
			mergeCaptures(f.Captures, subCaptures)
		}
		// Fall through: the lookaround state's own successors are still
		// evaluated below, exactly as for any other state.
	}

	c, atEnd := e.readChar(f, compact)

	successors := state.Successors(e.forward)
	firstMatch := -1
	var firstMatchTransition *pnfa.Transition
	for i := len(successors) - 1; i >= 0; i-- {
		t := &successors[i]
		matches, err := e.transitionMatches(f, t, c, atEnd, compact)
		if err != nil {
			return pnfa.InvalidState, err
		}
		if !matches {
			continue
		}
		if firstMatch >= 0 {
			e.deferAlternative(f, stack, firstMatchTransition)
		}
		firstMatch = i
		firstMatchTransition = t
	}

	if firstMatch < 0 {
		return stack.Backtrack(f), nil
	}
	e.updateState(f, firstMatchTransition)
	return firstMatchTransition.To(e.forward), nil
}

// deferAlternative handles a successor that has just been superseded by a
// higher-priority match found later in the reversed scan: if it leads to
// the unanchored final state it is a complete (if lower-priority) match,
// so it is queued as a result candidate; otherwise a clone of f is
// advanced along it and pushed onto the stack to be resumed later.
func (e *Executor) deferAlternative(f *Frame, stack *Stack, t *pnfa.Transition) {
	targetID := t.To(e.forward)
	target := e.nfa.State(targetID)
	clone := f.Clone()
	e.updateState(clone, t)
	if target != nil && target.IsUnanchoredFinal() {
		stack.PushResult(clone.Captures)
		return
	}
	clone.PC = targetID
	stack.Push(clone)
}

// readChar reads the character the current dispatch step should test
// against character-class successors: input[index] scanning forward,
// input[index-1] scanning backward. atEnd is true past the relevant
// boundary of the scan.
func (e *Executor) readChar(f *Frame, compact bool) (c rune, atEnd bool) {
	if e.forward {
		if f.Index >= f.MaxIndex {
			return 0, true
		}
		return f.Cursor.CharAt(f.Index, compact), false
	}
	if f.Index <= 0 {
		return 0, true
	}
	return f.Cursor.CharAt(f.Index-1, compact), false
}
