// Package cursor implements the Input Cursor collaborator the host side of
// the engine is responsible for: character access by index, region
// comparison, and case-fold-aware equality. The backtracking executor in
// package btnfa only depends on the Cursor interface, never on a concrete
// representation, so a host may plug in whatever storage it already has.
package cursor

import "unicode"

// Cursor is the interface the executor uses to read the text being
// matched. Every method takes the compactStringHint the host passed to
// Executor.Execute: true selects the single-byte interpretation of the
// backing text, false the wide (full Unicode) interpretation. A Cursor that
// only ever supports one representation may ignore the flag.
type Cursor interface {
	// CharAt returns the character at index i under the given hint. The
	// caller must ensure 0 <= i < Len(compact).
	CharAt(i int, compact bool) rune

	// Len returns the number of characters under the given hint.
	Len(compact bool) int

	// RegionMatches reports whether the length-length regions starting at a
	// and b compare equal, raw first and then — if fold is non-nil and the
	// raw compare failed — character by character through fold. This
	// mirrors TRegexBacktrackingNFAExecutorNode.regionMatches: a fast exact
	// compare, with a fallback re-walk only on failure and only when
	// case-insensitive matching is on.
	RegionMatches(a, b, length int, compact bool, fold func(a, b rune) bool) bool
}

// Next reads the character a direction-aware dispatch step would consume:
// input[index] scanning forward, input[index-1] scanning backward. ok is
// false at the relevant end of the cursor (the atEnd condition).
func Next(c Cursor, index int, forward, compact bool) (r rune, ok bool) {
	if forward {
		if index >= c.Len(compact) {
			return 0, false
		}
		return c.CharAt(index, compact), true
	}
	if index <= 0 {
		return 0, false
	}
	return c.CharAt(index-1, compact), true
}

// EqualFold is the default case-folding predicate a host may pass when it
// has no pattern-specific fold table of its own. Full per-pattern Unicode
// case folding tables are out of scope for this module; no third-party
// module in the retrieved corpus provides one either, so this follows
// TRegexBacktrackingNFAExecutorNode.equalsIgnoreCase's own fallback
// (Character.toUpperCase(a) == Character.toUpperCase(b)) using the stdlib
// unicode package, the same package auvred-regonaut's canonicalize builds
// its own case folding on top of.
func EqualFold(a, b rune) bool {
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

// Bytes is a Cursor over a string, decoded once at construction into both a
// byte-indexed (Latin-1 / ASCII fast path) and a rune-indexed (full
// Unicode) representation. Hosts that already track whether their input is
// ASCII-only can pass compact=true to Execute to use the
// former; RegionMatches and CharAt then index by byte offset instead of
// rune offset, matching whichever hint was used to compute the frame's
// FromIndex/Index/MaxIndex in the first place.
type Bytes struct {
	raw   []byte
	runes []rune
}

// NewBytes builds a Bytes cursor over s.
func NewBytes(s string) *Bytes {
	return &Bytes{raw: []byte(s), runes: []rune(s)}
}

// CharAt implements Cursor.
func (c *Bytes) CharAt(i int, compact bool) rune {
	if compact {
		return rune(c.raw[i])
	}
	return c.runes[i]
}

// Len implements Cursor.
func (c *Bytes) Len(compact bool) int {
	if compact {
		return len(c.raw)
	}
	return len(c.runes)
}

// RegionMatches implements Cursor.
func (c *Bytes) RegionMatches(a, b, length int, compact bool, fold func(a, b rune) bool) bool {
	rawEqual := true
	for i := 0; i < length; i++ {
		if c.CharAt(a+i, compact) != c.CharAt(b+i, compact) {
			rawEqual = false
			break
		}
	}
	if rawEqual {
		return true
	}
	if fold == nil {
		return false
	}
	for i := 0; i < length; i++ {
		if !fold(c.CharAt(a+i, compact), c.CharAt(b+i, compact)) {
			return false
		}
	}
	return true
}
