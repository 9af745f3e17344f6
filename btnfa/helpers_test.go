package btnfa

import "github.com/coregx/btregex/pnfa"

// boundary builds a GroupBoundaries whose Update bitset has length n with
// the given slots set, used throughout the hand-built test graphs to avoid
// repeating the bitset-construction boilerplate.
func boundary(n int, slots ...int) pnfa.GroupBoundaries {
	u := make([]bool, n)
	for _, s := range slots {
		u[s] = true
	}
	return pnfa.GroupBoundaries{Update: u}
}

// guard wraps a single QuantifierGuard whose reverse kind mirrors its
// forward kind — every guarded test graph in this package runs forward (the
// backward graph in direction_test.go carries no guards), so the reverse
// kind is never exercised.
func guard(q *pnfa.Quantifier, kind pnfa.GuardKind) pnfa.QuantifierGuard {
	return pnfa.QuantifierGuard{Quantifier: q, Kind: kind, KindReverse: kind}
}
