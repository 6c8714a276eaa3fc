package bitinv

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestBits(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		buf := make([]byte, 2)

		FlipBit(buf, 0)
		FlipBit(buf, 7)
		FlipBit(buf, 9)

		assert.Equal(t, buf[0], byte(0x81))
		assert.Equal(t, buf[1], byte(0x40))
		assert.That(t, GetBit(buf, 0))
		assert.That(t, !GetBit(buf, 1))
		assert.That(t, GetBit(buf, 9))
	})

	t.Run("Fuzz", func(t *testing.T) {
		buf := make([]byte, 16)
		exp := make([]bool, 8*len(buf))

		for i := 0; i < 1000; i++ {
			bit := uint64(pcg.Uint32n(uint32(len(exp))))
			FlipBit(buf, bit)
			exp[bit] = !exp[bit]

			for j := range exp {
				assert.Equal(t, GetBit(buf, uint64(j)), exp[j])
			}
		}
	})

	t.Run("Format", func(t *testing.T) {
		assert.Equal(t, FormatBits(nil), "")
		assert.Equal(t, FormatBits([]byte{0x80, 0x01, 0xa5}),
			"10000000"+"00000001"+"10100101")
	})

	t.Run("Flip Byte", func(t *testing.T) {
		assert.Equal(t, flipByte(0, 0, All), byte(0xff))
		assert.Equal(t, flipByte(0xff, 0, All), byte(0))
		assert.Equal(t, flipByte(0x0f, 8, None), byte(0x0f))
		assert.Equal(t, flipByte(0, 16, Bit(17)), byte(0x40))
		assert.Equal(t, flipByte(0, 8, Bit(17)), byte(0))
	})
}

func BenchmarkBits(b *testing.B) {
	b.Run("Flip", func(b *testing.B) {
		buf := make([]byte, 4096)
		for i := 0; i < b.N; i++ {
			FlipBit(buf, uint64(pcg.Uint32n(4096*8)))
		}
	})

	b.Run("Format", func(b *testing.B) {
		buf := make([]byte, 4)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			FormatBits(buf)
		}
	})
}
