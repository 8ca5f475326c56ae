package bosm

// BlockReader provides random access over one decoded block's values,
// adapted from fastpfor-go's Reader: a thin cursor over an already
// unpacked slice. BOS-M blocks carry no sortedness guarantee, so the
// binary-search SkipTo and IsSorted methods of the original accessor do
// not transfer; Get, Next, and Reset do.
type BlockReader struct {
	values []int32
	pos    int
}

// NewBlockReader wraps a decoded block's values for sequential or
// indexed access without re-decoding.
func NewBlockReader(values []int32) *BlockReader {
	return &BlockReader{values: values}
}

// Len returns the number of values in the block.
func (r *BlockReader) Len() int { return len(r.values) }

// Get returns the value at index i. It panics on an out-of-range index,
// matching the teacher's unchecked Get/checked GetSafe split.
func (r *BlockReader) Get(i int) int32 { return r.values[i] }

// GetSafe returns the value at index i, or false if i is out of range.
func (r *BlockReader) GetSafe(i int) (int32, bool) {
	if i < 0 || i >= len(r.values) {
		return 0, false
	}
	return r.values[i], true
}

// Next returns the next value in iteration order and advances the
// cursor, or false once the block is exhausted.
func (r *BlockReader) Next() (int32, bool) {
	if r.pos >= len(r.values) {
		return 0, false
	}
	v := r.values[r.pos]
	r.pos++
	return v, true
}

// Reset rewinds the iteration cursor to the start of the block.
func (r *BlockReader) Reset() { r.pos = 0 }

// Decode copies every value into dst, which must have length Len(),
// mirroring the teacher's bulk Decode(dst) method.
func (r *BlockReader) Decode(dst []int32) {
	copy(dst, r.values)
}
