// Package bitinv flips selected bits of a byte buffer, either on the calling
// goroutine or split across workers.
package bitinv

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bitinv")

// Predicate decides if the bit with the given global index should be
// flipped. Global index 0 is the high bit of the first byte of the buffer.
//
// A Predicate is called from many goroutines at once and in no particular
// order, so it must be pure: the answer for an index may only depend on the
// index.
type Predicate func(bit uint64) bool

// EveryNth flips every bit whose index is a multiple of n. n must be
// positive.
func EveryNth(n uint64) Predicate {
	return func(bit uint64) bool { return bit%n == 0 }
}

// Bit flips only the bit at index i.
func Bit(i uint64) Predicate {
	return func(bit uint64) bool { return bit == i }
}

// All flips every bit.
func All(uint64) bool { return true }

// None flips nothing.
func None(uint64) bool { return false }

// invertBlock flips the bits of block selected by pred, where base is the
// global index of the high bit of block[0].
func invertBlock(block []byte, base uint64, pred Predicate) {
	for i := range block {
		block[i] = flipByte(block[i], base+8*uint64(i), pred)
	}
}

// InvertRange flips the bits of the bytes buf[begin:end] selected by pred.
// Indices passed to pred are global to buf. It is safe to call concurrently
// with other calls on disjoint ranges of the same buffer.
func InvertRange(buf []byte, begin, end int, pred Predicate) {
	p := Partition{Begin: begin, End: end}
	invertBlock(p.Slice(buf), p.FirstBit(), pred)
}

// CheckedInvertRange is InvertRange for callers that cannot vouch for their
// arguments. It reports bad bounds or a nil predicate instead of panicking.
func CheckedInvertRange(buf []byte, begin, end int, pred Predicate) error {
	switch {
	case pred == nil:
		return Error.New("nil predicate")
	case begin < 0 || end > len(buf):
		return Error.New("range [%d, %d) out of bounds for %d bytes", begin, end, len(buf))
	case begin > end:
		return Error.New("range [%d, %d) is inverted", begin, end)
	}
	InvertRange(buf, begin, end, pred)
	return nil
}

// InvertSequential flips the bits of buf selected by pred on the calling
// goroutine.
func InvertSequential(buf []byte, pred Predicate) {
	invertBlock(buf, 0, pred)
}
