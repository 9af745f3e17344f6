// Package host provides the outer search loop a backtracking NFA executor
// needs but does not implement itself: choosing where each match attempt
// starts, literal prefiltering to skip positions that cannot match, and the
// compact-string heuristic passed down to every cursor call.
//
// The core engine in pnfa/cursor/btnfa runs exactly one match attempt from
// exactly one start position and knows nothing about scanning across a
// haystack; everything here is the caller-facing layer that drives it
// across a whole input, one match at a time.
package host

import "sync/atomic"

// Config configures a Scanner. The zero value is usable: no prefilter, no
// cancellation.
type Config struct {
	// Cancelled, if set, is polled by the scan loop between attempts, so a
	// search across a large haystack can be aborted from another
	// goroutine even if no single attempt runs long enough to trip the
	// executor's own MaxBacktrackDepth. Pass the same *atomic.Bool given
	// to the underlying btnfa.Executor to have cancellation take effect
	// both between and during attempts.
	Cancelled *atomic.Bool

	// Literals seeds the Aho-Corasick prefilter with the literal
	// sequences extracted from the pattern (required prefixes, a required
	// substring, whatever the compiler in front of this module produced).
	// A nil or empty slice disables prefiltering: every position is tried.
	Literals [][]byte
}
