package btnfa

import (
	"reflect"
	"testing"

	"github.com/coregx/btregex/cursor"
	"github.com/coregx/btregex/pnfa"
)

func wordCharSet() *pnfa.CharSet {
	return pnfa.NewCharSet(
		pnfa.RuneRange{Lo: 'a', Hi: 'z'},
		pnfa.RuneRange{Lo: 'A', Hi: 'Z'},
		pnfa.RuneRange{Lo: '0', Hi: '9'},
		pnfa.RuneRange{Lo: '_', Hi: '_'},
	)
}

// buildWordThenBackref builds (\w+) \1: a greedy word-run capture, a
// literal space, then a backreference to the captured run.
func buildWordThenBackref(t *testing.T) *pnfa.NFA {
	t.Helper()
	b := pnfa.NewBuilder()

	s0 := b.AddInitialOrFinal(true, true, false, false)
	sj1 := b.AddEmptyMatch()
	sw := b.AddCharacterClass(wordCharSet())
	sj2 := b.AddEmptyMatch()
	sspace := b.AddCharacterClass(pnfa.NewSingleRune(' '))
	sbackref := b.AddBackReference(1)
	sf := b.AddInitialOrFinal(false, false, false, true)

	const n = 4
	q1 := b.NewQuantifier(1, pnfa.Unbounded, false)

	b.AddTransition(s0, sj1, boundary(n, 0), false, false, nil)
	b.AddTransition(sj1, sw, boundary(n, 2), false, false, []pnfa.QuantifierGuard{guard(q1, pnfa.GuardEnter)})
	b.AddTransition(sw, sw, pnfa.GroupBoundaries{}, false, false, []pnfa.QuantifierGuard{guard(q1, pnfa.GuardLoop)})
	b.AddTransition(sw, sj2, boundary(n, 3), false, false, []pnfa.QuantifierGuard{guard(q1, pnfa.GuardExit)})
	b.AddTransition(sj2, sspace, pnfa.GroupBoundaries{}, false, false, nil)
	b.AddTransition(sspace, sbackref, pnfa.GroupBoundaries{}, false, false, nil)
	b.AddTransition(sbackref, sf, boundary(n, 1), false, false, nil)

	b.SetStart(s0, s0)
	return b.MustBuild()
}

func TestBackReferenceMatch(t *testing.T) {
	nfa := buildWordThenBackref(t)
	got := runOn(t, nfa, "foo foo")
	want := []int{0, 7, 0, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("captures = %v, want %v", got, want)
	}
}

func TestBackReferenceNoMatch(t *testing.T) {
	nfa := buildWordThenBackref(t)
	got := runOn(t, nfa, "foo bar")
	if got != nil {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestBackReferenceCaseFoldSymmetry(t *testing.T) {
	nfa := buildWordThenBackref(t)
	e := NewExecutor(nfa, true, cursor.EqualFold, nil, DefaultConfig(), nil)
	cur := cursor.NewBytes("FOO foo")
	frame := e.CreateFrame(cur, 0, 0, cur.Len(false))
	got, err := e.Execute(frame, false)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	want := []int{0, 7, 0, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("case-insensitive backreference: captures = %v, want %v", got, want)
	}
}

func TestBackReferenceRespectsCase(t *testing.T) {
	nfa := buildWordThenBackref(t)
	// No fold predicate: region comparison is exact, so differing case
	// must fail to match.
	e := NewExecutor(nfa, true, nil, nil, DefaultConfig(), nil)
	cur := cursor.NewBytes("FOO foo")
	frame := e.CreateFrame(cur, 0, 0, cur.Len(false))
	got, err := e.Execute(frame, false)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no match without case folding, got %v", got)
	}
}
