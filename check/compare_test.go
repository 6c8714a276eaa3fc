package main

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	bitinv "github.com/Prokopiy19/Bit-Inversion"
)

func TestCompare(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		buf := make([]byte, 5000)
		for i := range buf {
			buf[i] = byte(pcg.Uint64())
		}
		orig := append([]byte(nil), buf...)
		sched := bitinv.Scheduler{MaxThreads: 4, MinJobSize: 1}

		assert.NoError(t, compare(sched, buf, orig, bitinv.EveryNth(9)))
		assert.That(t, bytes.Equal(buf, orig))
	})

	t.Run("Impure", func(t *testing.T) {
		buf := make([]byte, 5000)
		orig := append([]byte(nil), buf...)
		sched := bitinv.Scheduler{MaxThreads: 4, MinJobSize: 1}

		// only the first pass sees any bits to flip
		var calls int64
		pred := func(bit uint64) bool {
			return atomic.AddInt64(&calls, 1) <= 8*5000
		}

		err := compare(sched, buf, orig, pred)
		assert.That(t, err != nil)
		assert.That(t, strings.Contains(err.Error(), "did not undo"))
	})
}
