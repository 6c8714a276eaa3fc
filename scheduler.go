package bitinv

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinJobSize is the smallest number of bytes worth handing to a worker.
const MinJobSize = 1000

// MaxThreads returns how many goroutines can run in parallel, never less
// than one.
func MaxThreads() int {
	if n := runtime.GOMAXPROCS(0); n > 1 {
		return n
	}
	return 1
}

// NumThreads returns min(maxThreads, ceil(size / minJobSize)): enough
// workers for the hardware, but none that would get less than minJobSize
// bytes. Non positive maxThreads and minJobSize are treated as one. It
// returns zero for an empty buffer.
func NumThreads(size, maxThreads, minJobSize int) int {
	if size <= 0 {
		return 0
	}
	if maxThreads < 1 {
		maxThreads = 1
	}
	if minJobSize < 1 {
		minJobSize = 1
	}
	if jobs := (size + minJobSize - 1) / minJobSize; jobs < maxThreads {
		return jobs
	}
	return maxThreads
}

// Scheduler splits a buffer into equal blocks and inverts them in parallel.
// The zero value uses MaxThreads() and MinJobSize.
type Scheduler struct {
	MaxThreads int
	MinJobSize int
}

func (s Scheduler) maxThreads() int {
	if s.MaxThreads > 0 {
		return s.MaxThreads
	}
	return MaxThreads()
}

func (s Scheduler) minJobSize() int {
	if s.MinJobSize > 0 {
		return s.MinJobSize
	}
	return MinJobSize
}

// Threads is the number of blocks a buffer of size bytes is split into.
func (s Scheduler) Threads(size int) int {
	return NumThreads(size, s.maxThreads(), s.minJobSize())
}

// Partitions returns the blocks a buffer of size bytes is split into.
func (s Scheduler) Partitions(size int) []Partition {
	return Partitions(size, s.Threads(size))
}

// Invert flips the bits of buf selected by pred. All blocks but the last
// run on their own goroutine, the last one runs on the caller, and Invert
// returns only once every block is done. The result is identical to
// InvertSequential for any pure pred.
//
// An empty buf is a no-op. If pred panics, Invert still waits for every
// worker and then panics with an Error on the calling goroutine.
func (s Scheduler) Invert(buf []byte, pred Predicate) {
	parts := s.Partitions(len(buf))
	if len(parts) == 0 {
		return
	}
	last := parts[len(parts)-1]

	var g errgroup.Group
	for _, p := range parts[:len(parts)-1] {
		p := p
		g.Go(func() (err error) {
			defer recoverInto(&err)
			invertBlock(p.Slice(buf), p.FirstBit(), pred)
			return nil
		})
	}

	err := func() (err error) {
		defer func() {
			if werr := g.Wait(); err == nil {
				err = werr
			}
		}()
		defer recoverInto(&err)
		invertBlock(last.Slice(buf), last.FirstBit(), pred)
		return nil
	}()
	if err != nil {
		panic(err)
	}
}

// InvertParallel is Scheduler{}.Invert.
func InvertParallel(buf []byte, pred Predicate) {
	Scheduler{}.Invert(buf, pred)
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = Error.New("predicate panicked: %v", r)
	}
}
