package host

import (
	"errors"

	"github.com/coregx/btregex/btnfa"
	"github.com/coregx/btregex/cursor"
)

// ErrCancelled is returned when Config.Cancelled was observed set between
// scan attempts.
var ErrCancelled = errors.New("host: scan cancelled")

// Scanner drives a btnfa.Executor across a whole haystack: the "outer
// find-next-match-start loop" the core executor deliberately does not
// implement. It advances the candidate start position with a literal
// prefilter when one is configured, computes the compact-string hint once
// per FindIndex call, and runs one match attempt per candidate.
type Scanner struct {
	exec      *btnfa.Executor
	prefilter *LiteralPrefilter
	cancelled func() bool
}

// NewScanner builds a Scanner over exec. cfg.Literals, if non-empty, seeds
// an Aho-Corasick prefilter; cfg.Cancelled, if set, is polled between
// attempts.
func NewScanner(exec *btnfa.Executor, cfg Config) *Scanner {
	s := &Scanner{
		exec:      exec,
		prefilter: NewLiteralPrefilter(cfg.Literals),
	}
	if cfg.Cancelled != nil {
		s.cancelled = cfg.Cancelled.Load
	}
	return s
}

// FindIndex returns the capture slots of the first match in haystack at or
// after from, or nil if there is none.
func (s *Scanner) FindIndex(haystack []byte, from int) ([]int, error) {
	if s.prefilter != nil && !s.prefilter.MayMatch(haystack[from:]) {
		return nil, nil
	}
	compact := DetectCompactStringHint(haystack)
	cur := cursor.NewBytes(string(haystack))
	maxIndex := cur.Len(compact)

	// The automaton indexes the raw byte haystack, so its candidate
	// positions only line up with frame positions when compact is true
	// (byte offset == rune offset for an ASCII-only haystack). Non-ASCII
	// input still gets the MayMatch short-circuit above, just not
	// per-position guidance.
	usePrefilterPositions := s.prefilter != nil && compact

	pos := from
	for pos <= maxIndex {
		if s.cancelled != nil && s.cancelled() {
			return nil, ErrCancelled
		}
		if usePrefilterPositions {
			candidate, ok := s.prefilter.NextCandidate(haystack, pos)
			if !ok {
				return nil, nil
			}
			pos = candidate
		}

		frame := s.exec.CreateFrame(cur, from, pos, maxIndex)
		captures, err := s.exec.Execute(frame, compact)
		if err != nil {
			return nil, err
		}
		if captures != nil {
			return captures, nil
		}
		pos++
	}
	return nil, nil
}

// FindAllIndex returns the capture slots of up to n non-overlapping
// matches, scanning left to right and resuming just past each match (or
// one position later, for a zero-width match, to avoid looping forever).
// n <= 0 means unlimited.
func (s *Scanner) FindAllIndex(haystack []byte, n int) ([][]int, error) {
	if n == 0 {
		return nil, nil
	}
	var results [][]int
	pos := 0
	for pos <= len(haystack) {
		captures, err := s.FindIndex(haystack, pos)
		if err != nil {
			return results, err
		}
		if captures == nil {
			break
		}
		results = append(results, captures)

		end := captures[1]
		if end > pos {
			pos = end
		} else {
			pos++
		}
		if n > 0 && len(results) >= n {
			break
		}
	}
	return results, nil
}
