// Functions and methods are not thread safe.

package malloc

// chunk manages one reserved memory block and its fill offset. Chunks
// are the growth unit of an arena, linked in allocation order. A chunk
// owns its reservation exclusively and is released only when the whole
// arena is released.
type chunk struct {
	base     []byte // reservation, page granular
	capacity int64  // len(base)
	offset   int64  // bytes handed out so far
	next     *chunk // chunk appended after this one filled up
}

// newchunk reserve a chunk with at least `capacity` usable bytes, the
// reservation is rounded up to page granularity.
func newchunk(capacity int64) (*chunk, error) {
	base, err := osreserve(int(pageup(capacity)))
	if err != nil {
		return nil, err
	}
	return &chunk{base: base, capacity: int64(len(base))}, nil
}

// alloc a block of `n` bytes from this chunk, `n` is expected to be
// aligned by the caller. The returned slice has both length and
// capacity `n`.
func (ch *chunk) alloc(n int64) ([]byte, bool) {
	if ch.offset+n > ch.capacity {
		return nil, false
	}
	block := ch.base[ch.offset : ch.offset+n : ch.offset+n]
	ch.offset += n
	return block, true
}

// release the reservation back to the OS.
func (ch *chunk) release() error {
	if err := osrelease(ch.base); err != nil {
		return err
	}
	ch.base, ch.capacity, ch.offset, ch.next = nil, 0, 0, nil
	return nil
}
