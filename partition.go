package bitinv

// Partition is the half open byte range [Begin, End) of a buffer that one
// worker owns for the duration of a call.
type Partition struct {
	Begin, End int
}

func (p Partition) Len() int    { return p.End - p.Begin }
func (p Partition) Empty() bool { return p.End <= p.Begin }

// FirstBit is the global index of the high bit of the first byte.
func (p Partition) FirstBit() uint64 { return 8 * uint64(p.Begin) }

// Slice returns the part of buf owned by the partition. It shares memory
// with buf and is capped so that appends cannot reach a neighbor.
func (p Partition) Slice(buf []byte) []byte { return buf[p.Begin:p.End:p.End] }

// Partitions splits [0, size) into threads contiguous blocks of size/threads
// bytes each. The remainder of the division is folded into the last block,
// so the blocks are pairwise disjoint and cover every byte exactly once.
// Threads beyond size are clamped so that no block is empty. It returns nil
// if size or threads is not positive.
func Partitions(size, threads int) []Partition {
	if size <= 0 || threads <= 0 {
		return nil
	}
	if threads > size {
		threads = size
	}

	block := size / threads
	parts := make([]Partition, threads)

	begin := 0
	for i := range parts[:threads-1] {
		parts[i] = Partition{Begin: begin, End: begin + block}
		begin += block
	}
	parts[threads-1] = Partition{Begin: begin, End: size}

	return parts
}
