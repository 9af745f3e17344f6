package btnfa

import (
	"reflect"
	"testing"

	"github.com/coregx/btregex/cursor"
	"github.com/coregx/btregex/pnfa"
)

// buildBackwardAB builds the backward-only body of a lookbehind asserting
// the two characters immediately preceding the cursor spell "ab". Unlike
// the forward-built graphs elsewhere in this package, its states are laid
// out so that walking Successors(false) from the anchored initial state
// consumes 'b' then 'a' — the same Transition.To(forward) resolution a
// compound pattern's backward sub-executor relies on to share edges with a
// forward successor list, exercised here in isolation.
func buildBackwardAB(t *testing.T) *pnfa.NFA {
	t.Helper()
	b := pnfa.NewBuilder()

	entry := b.AddInitialOrFinal(true, true, false, false)
	scb := b.AddCharacterClass(pnfa.NewSingleRune('b'))
	sca := b.AddCharacterClass(pnfa.NewSingleRune('a'))
	done := b.AddInitialOrFinal(false, false, false, true)

	const n = 2
	// Source/Target are forward-sense; this executor only ever runs
	// backward, so these edges are walked target-to-source.
	b.AddTransition(scb, entry, boundary(n, 1), false, false, nil) // entry --(consume 'b')--> scb, backward
	b.AddTransition(sca, scb, pnfa.GroupBoundaries{}, false, false, nil)
	b.AddTransition(done, sca, boundary(n, 0), false, false, nil)

	b.SetStart(entry, entry)
	return b.MustBuild()
}

func runBackward(t *testing.T, nfa *pnfa.NFA, input string, at int) []int {
	t.Helper()
	e := NewExecutor(nfa, false, cursor.EqualFold, nil, DefaultConfig(), nil)
	cur := cursor.NewBytes(input)
	frame := e.CreateFrame(cur, at, at, len(input))
	got, err := e.Execute(frame, false)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	return got
}

func TestBackwardExecutionMatchesPrecedingText(t *testing.T) {
	nfa := buildBackwardAB(t)
	got := runBackward(t, nfa, "xxab", 4)
	want := []int{2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("captures = %v, want %v", got, want)
	}
}

func TestBackwardExecutionRejectsMismatch(t *testing.T) {
	nfa := buildBackwardAB(t)
	got := runBackward(t, nfa, "xxcb", 4)
	if got != nil {
		t.Fatalf("expected no match, got %v", got)
	}
}
