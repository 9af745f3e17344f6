package host

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// hasAVX2 gates the wider SWAR stride below. There is no assembly backing
// it in this module (unlike simd.IsASCII's AVX2 path), but the dispatch
// itself is real: a CPU wide enough to benefit from 256-bit vector loads
// almost always has correspondingly fast unaligned 8-byte loads too, so the
// pure-Go 16-byte stride pays for its extra branch only when the CPU can
// actually keep two independent load pipelines busy.
var hasAVX2 = cpu.X86.HasAVX2

// DetectCompactStringHint reports whether b is entirely ASCII, the signal
// TRegex calls a "compact string": every rune in it fits in one byte, so
// per-cursor-call rune decoding can be skipped in favor of a raw byte
// index. The host computes this once per haystack (or once per attempt
// region, if the caller only wants to hint over the slice actually being
// scanned) and passes the result to every cursor.Cursor and Executor.Execute
// call for that attempt.
func DetectCompactStringHint(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	if hasAVX2 {
		return isASCIIWide(b)
	}
	return isASCIINarrow(b)
}

const (
	hiBits8  = uint64(0x8080808080808080)
	loMask16 = uint64(0x8080808080808080)
)

// isASCIINarrow processes 8 bytes per iteration.
func isASCIINarrow(data []byte) bool {
	n := len(data)
	i := 0
	for ; i+8 <= n; i += 8 {
		if binary.LittleEndian.Uint64(data[i:])&hiBits8 != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// isASCIIWide processes two interleaved 8-byte lanes per iteration so the
// CPU can keep both load pipelines busy before either result is needed.
func isASCIIWide(data []byte) bool {
	n := len(data)
	i := 0
	for ; i+16 <= n; i += 16 {
		lo := binary.LittleEndian.Uint64(data[i:])
		hi := binary.LittleEndian.Uint64(data[i+8:])
		if (lo|hi)&loMask16 != 0 {
			return false
		}
	}
	return isASCIINarrow(data[i:])
}
