package btnfa

import (
	"reflect"
	"testing"

	"github.com/coregx/btregex/cursor"
	"github.com/coregx/btregex/pnfa"
)

// buildAnchoredOrLoopBack builds a tiny non-sticky "a" pattern: an anchored
// initial state whose own consuming edge requires the caret guard (so it
// only ever admits at the true start of input), an unanchored initial
// state whose identical edge does not, and the loop-back transition between
// them a compiled non-sticky pattern installs via EnableInitialLoopBack.
func buildAnchoredOrLoopBack(t *testing.T) *pnfa.NFA {
	t.Helper()
	b := pnfa.NewBuilder()

	anchored := b.AddInitialOrFinal(true, false, false, false)
	unanchored := b.AddInitialOrFinal(false, true, false, false)
	sa := b.AddCharacterClass(pnfa.NewSingleRune('a'))
	sf := b.AddInitialOrFinal(false, false, false, true)

	const n = 2
	b.AddTransition(anchored, sa, boundary(n, 0), true, false, nil)
	b.AddTransition(unanchored, sa, boundary(n, 0), false, false, nil)
	b.AddTransition(sa, sf, boundary(n, 1), false, false, nil)

	b.SetStart(anchored, unanchored)
	b.EnableInitialLoopBack()
	return b.MustBuild()
}

func TestCreateFrameStartsAnchoredAtFromIndex(t *testing.T) {
	nfa := buildAnchoredOrLoopBack(t)
	e := NewExecutor(nfa, true, cursor.EqualFold, nil, DefaultConfig(), nil)
	cur := cursor.NewBytes("a")
	frame := e.CreateFrame(cur, 0, 0, cur.Len(false))
	if frame.PC != nfa.AnchoredInitial() {
		t.Fatalf("index == fromIndex should start at the anchored initial state")
	}
	got, err := e.Execute(frame, false)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("captures = %v, want %v", got, want)
	}
}

// TestCreateFrameSkipsCaretGuardOnRetry exercises the host-retry path: a
// scan loop that failed to match starting at index 0 and is now trying
// index 1 must land on the unanchored initial state directly, not on the
// anchored one (whose caret guard would reject any index other than 0, and
// whose only fallback — the loop-back edge — advances the index by one
// before reaching the unanchored state, landing one position too late).
func TestCreateFrameSkipsCaretGuardOnRetry(t *testing.T) {
	nfa := buildAnchoredOrLoopBack(t)
	e := NewExecutor(nfa, true, cursor.EqualFold, nil, DefaultConfig(), nil)
	cur := cursor.NewBytes("ba")
	frame := e.CreateFrame(cur, 0, 1, cur.Len(false))
	if frame.PC != nfa.UnanchoredInitial() {
		t.Fatalf("index > fromIndex with initial loop-back should start at the unanchored initial state")
	}
	got, err := e.Execute(frame, false)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("captures = %v, want %v", got, want)
	}
}
