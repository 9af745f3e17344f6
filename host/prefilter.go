package host

import "github.com/coregx/ahocorasick"

// LiteralPrefilter narrows candidate match-start positions using an
// Aho-Corasick automaton over a pattern's extracted required literals,
// mirroring how the surrounding compiler's meta engine bypasses its NFA
// for large literal alternations.
type LiteralPrefilter struct {
	automaton *ahocorasick.Automaton
}

// NewLiteralPrefilter builds a prefilter over literals. It returns nil if
// literals is empty or the automaton fails to build, in which case the
// scan loop falls back to trying every position.
func NewLiteralPrefilter(literals [][]byte) *LiteralPrefilter {
	if len(literals) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &LiteralPrefilter{automaton: automaton}
}

// NextCandidate returns the start of the first literal occurrence at or
// after from, or ok=false if none remains. Every position it rules out is
// a position the caller never has to run the full backtracking executor
// against.
func (p *LiteralPrefilter) NextCandidate(haystack []byte, from int) (pos int, ok bool) {
	if p == nil || from >= len(haystack) {
		return 0, false
	}
	m := p.automaton.Find(haystack, from)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}

// MayMatch reports whether any literal occurs anywhere in haystack. A false
// result means the full pattern cannot match at all, since every one of
// its required literals is absent.
func (p *LiteralPrefilter) MayMatch(haystack []byte) bool {
	if p == nil {
		return true
	}
	return p.automaton.IsMatch(haystack)
}
