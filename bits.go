package bitinv

import (
	"strings"
)

// bits are addressed most significant first: global bit 8*i + j lives in
// byte i under the mask 0x80 >> j.

func byteIndex(bit uint64) uint64 { return bit / 8 }
func bitMask(bit uint64) byte     { return 0x80 >> (bit % 8) }

// GetBit reports whether the global bit is set in buf.
func GetBit(buf []byte, bit uint64) bool {
	return buf[byteIndex(bit)]&bitMask(bit) != 0
}

// FlipBit toggles the global bit in buf.
func FlipBit(buf []byte, bit uint64) {
	buf[byteIndex(bit)] ^= bitMask(bit)
}

// flipByte applies pred to the eight bits of b whose first global index is
// base and returns the result.
func flipByte(b byte, base uint64, pred Predicate) byte {
	for j := uint64(0); j < 8; j++ {
		if pred(base + j) {
			b ^= 0x80 >> j
		}
	}
	return b
}

// FormatBits renders buf as concatenated 8 digit binary bytes, high bit
// first, which is the order the predicate sees them in.
func FormatBits(buf []byte) string {
	const digits = "01"

	var sb strings.Builder
	sb.Grow(8 * len(buf))
	for _, b := range buf {
		for j := uint(0); j < 8; j++ {
			sb.WriteByte(digits[b>>(7-j)&1])
		}
	}
	return sb.String()
}
