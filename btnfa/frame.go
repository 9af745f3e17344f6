package btnfa

import (
	"github.com/coregx/btregex/cursor"
	"github.com/coregx/btregex/pnfa"
)

// Frame is the mutable per-attempt state a single in-progress match
// carries: the input being scanned, the program counter, and the three
// flat counter vectors the dispatcher, transition evaluator, and frame
// updater read and write. It has no methods of its own beyond Clone and
// applyBoundaries (update.go) —
// everything else lives on Executor, mirroring how
// TRegexBacktrackingNFAExecutorNode's methods all take a locals object as
// an explicit parameter rather than hanging behavior off it.
type Frame struct {
	Cursor    cursor.Cursor
	FromIndex int
	Index     int
	MaxIndex  int

	PC pnfa.StateID

	// Captures has length 2*nfa.CaptureCount(); slot 2k/2k+1 is the
	// start/end of capture group k, -1 meaning unset.
	Captures []int

	// QuantCounts has length nfa.NumQuantifiers().
	QuantCounts []int

	// ZeroWidth has length nfa.NumZeroWidthQuantifiers(); slot
	// q.ZeroWidthIndex records the index at which quantifier q last
	// completed an empty iteration.
	ZeroWidth []int
}

// Clone returns a deep copy of f. The flat-slice layout makes this a
// handful of bulk int-slice copies rather than a tree walk, which is what
// the dispatcher needs: a lower-priority alternative is deferred by
// cloning the live frame, applying the deferred transition to the clone,
// and pushing the clone onto the backtrack stack, leaving the live frame
// free to continue down the higher-priority path.
func (f *Frame) Clone() *Frame {
	return &Frame{
		Cursor:      f.Cursor,
		FromIndex:   f.FromIndex,
		Index:       f.Index,
		MaxIndex:    f.MaxIndex,
		PC:          f.PC,
		Captures:    append([]int(nil), f.Captures...),
		QuantCounts: append([]int(nil), f.QuantCounts...),
		ZeroWidth:   append([]int(nil), f.ZeroWidth...),
	}
}
