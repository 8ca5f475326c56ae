package bosm

import (
	"fmt"

	"github.com/nilsor/bosm-go/internal/pool"
)

// maxStreamBlockSize is the largest block size representable by the
// header's 15-bit k1 field (see the design notes' third open question):
// k1 counts left outliers, bounded above by the block's collapsed
// length, itself bounded by B.
const maxStreamBlockSize = (1 << 15) - 1

// StreamCodec frames a sequence of int32 values as a length prefix, a
// block-size prefix, zero or more full BlockCodec blocks, and a tail
// whose encoding depends on its length: three or fewer values are
// written as raw big-endian i32 literals, otherwise as one more
// BlockCodec block.
type StreamCodec struct {
	blockSize int
	codec     blockCodec
}

// NewStreamCodec constructs a StreamCodec for the given block size. B
// must be at least 1 and at most 32767, the limit imposed by the
// header's k1 field width; see DESIGN.md.
func NewStreamCodec(blockSize int) (*StreamCodec, error) {
	if blockSize < 1 || blockSize > maxStreamBlockSize {
		return nil, fmt.Errorf("bosm: new stream codec: block size %d outside 1..%d: %w", blockSize, maxStreamBlockSize, ErrInvalidInput)
	}
	return &StreamCodec{blockSize: blockSize, codec: newBlockCodec(blockSize)}, nil
}

// Encode returns the encoded byte stream for values, growing its own
// scratch buffer. Use EncodeInto when the caller owns a fixed-size
// output buffer and wants ErrInsufficientOutputBuffer on overflow.
func (sc *StreamCodec) Encode(values []int32) ([]byte, error) {
	n := len(values)
	b := sc.blockSize
	fullBlocks := n / b
	tailLen := n - fullBlocks*b

	upper := 8 + fullBlocks*blockUpperBound(b)
	switch {
	case tailLen > 3:
		upper += blockUpperBound(tailLen)
	case tailLen > 0:
		upper += tailLen * 4
	}

	// The worst-case upper bound is generous (see blockUpperBound); borrow
	// scratch space from the shared pool rather than allocating it fresh on
	// every Encode call, then copy down to the actual written length before
	// returning the buffer to the pool.
	scratch := pool.Get()
	defer pool.Put(scratch)
	scratch.Reset()
	scratch.ExtendOrGrow(upper)
	buf := scratch.B
	// Pooled buffers keep the bytes of earlier calls, and the bit writer
	// ORs bits into place, so the scratch space is zeroed before use.
	clear(buf)
	beOrder.PutUint32(buf[0:4], uint32(n))
	beOrder.PutUint32(buf[4:8], uint32(b))
	pos := 8

	for i := 0; i < fullBlocks; i++ {
		written, err := sc.codec.encode(buf[pos:], values[i*b:(i+1)*b])
		if err != nil {
			return nil, fmt.Errorf("bosm: encode block %d: %w", i, err)
		}
		pos += written
	}

	switch {
	case tailLen > 3:
		written, err := sc.codec.encode(buf[pos:], values[fullBlocks*b:])
		if err != nil {
			return nil, fmt.Errorf("bosm: encode tail block: %w", err)
		}
		pos += written
	case tailLen > 0:
		for _, v := range values[fullBlocks*b:] {
			beOrder.PutUint32(buf[pos:pos+4], uint32(v))
			pos += 4
		}
	}

	out := make([]byte, pos)
	copy(out, buf[:pos])
	return out, nil
}

// EncodeInto encodes values into the caller-supplied dst, returning the
// number of bytes written or ErrInsufficientOutputBuffer if dst is too
// small. It encodes through Encode and copies the result into dst, so it
// still allocates internally.
func (sc *StreamCodec) EncodeInto(dst []byte, values []int32) (int, error) {
	encoded, err := sc.Encode(values)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(encoded) {
		return 0, fmt.Errorf("bosm: encode into: need %d bytes, have %d: %w", len(encoded), len(dst), ErrInsufficientOutputBuffer)
	}
	copy(dst, encoded)
	return len(encoded), nil
}

// DecodeBlocks reconstructs an encoded stream one block at a time and
// returns a BlockReader per block (including the tail, whether it was
// encoded as its own sub-block or as raw literals), giving callers
// indexed access within a block without flattening the whole stream into
// one slice up front.
func (sc *StreamCodec) DecodeBlocks(data []byte) ([]*BlockReader, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("bosm: decode stream header: %w", ErrTruncatedInput)
	}
	n := int(beOrder.Uint32(data[0:4]))
	b := int(beOrder.Uint32(data[4:8]))
	if b != sc.blockSize {
		return nil, fmt.Errorf("bosm: decode stream: block size %d does not match codec block size %d: %w", b, sc.blockSize, ErrCorruptHeader)
	}

	pos := 8
	fullBlocks := n / b
	readers := make([]*BlockReader, 0, fullBlocks+1)
	for i := 0; i < fullBlocks; i++ {
		vals, consumed, err := sc.codec.decode(data[pos:], b)
		if err != nil {
			return nil, fmt.Errorf("bosm: decode block %d: %w", i, err)
		}
		readers = append(readers, NewBlockReader(vals))
		pos += consumed
	}

	tailLen := n - fullBlocks*b
	switch {
	case tailLen > 3:
		vals, _, err := sc.codec.decode(data[pos:], tailLen)
		if err != nil {
			return nil, fmt.Errorf("bosm: decode tail block: %w", err)
		}
		readers = append(readers, NewBlockReader(vals))
	case tailLen > 0:
		if pos+tailLen*4 > len(data) {
			return nil, fmt.Errorf("bosm: decode tail literals: %w", ErrTruncatedInput)
		}
		vals := make([]int32, tailLen)
		for i := 0; i < tailLen; i++ {
			vals[i] = int32(beOrder.Uint32(data[pos : pos+4]))
			pos += 4
		}
		readers = append(readers, NewBlockReader(vals))
	}

	return readers, nil
}

// Decode reconstructs the original values from an encoded stream.
func (sc *StreamCodec) Decode(data []byte) ([]int32, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("bosm: decode stream header: %w", ErrTruncatedInput)
	}
	n := int(beOrder.Uint32(data[0:4]))
	b := int(beOrder.Uint32(data[4:8]))
	if b != sc.blockSize {
		return nil, fmt.Errorf("bosm: decode stream: block size %d does not match codec block size %d: %w", b, sc.blockSize, ErrCorruptHeader)
	}

	pos := 8
	fullBlocks := n / b
	out := make([]int32, 0, n)
	for i := 0; i < fullBlocks; i++ {
		vals, consumed, err := sc.codec.decode(data[pos:], b)
		if err != nil {
			return nil, fmt.Errorf("bosm: decode block %d: %w", i, err)
		}
		out = append(out, vals...)
		pos += consumed
	}

	tailLen := n - fullBlocks*b
	switch {
	case tailLen > 3:
		vals, _, err := sc.codec.decode(data[pos:], tailLen)
		if err != nil {
			return nil, fmt.Errorf("bosm: decode tail block: %w", err)
		}
		out = append(out, vals...)
	case tailLen > 0:
		if pos+tailLen*4 > len(data) {
			return nil, fmt.Errorf("bosm: decode tail literals: %w", ErrTruncatedInput)
		}
		for i := 0; i < tailLen; i++ {
			out = append(out, int32(beOrder.Uint32(data[pos:pos+4])))
			pos += 4
		}
	}

	return out, nil
}
