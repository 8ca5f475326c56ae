package bosm

import "encoding/binary"

var beOrder = binary.BigEndian

// accum32 is the MSB-first, 32-bit-word staging accumulator used by both
// P8 and tail-pack. It is the packing-side analogue of fastpfor.go's
// packLane: values are folded into a 32-bit staging word and flushed to
// big-endian 4-byte words whenever 32 bits have accumulated, but here
// bits are placed MSB-first to match the codec's bit order instead of
// fastpfor's little-endian lane layout.
type accum32 struct {
	word   uint32
	filled int
}

// push adds the low width bits of v, flushing full 32-bit words to dst as
// they fill. out tracks the write cursor into dst.
func (a *accum32) push(dst []byte, out *int, v uint32, width int) {
	if width < 32 {
		v &= (1 << uint(width)) - 1
	}
	remaining := width
	for remaining > 0 {
		space := 32 - a.filled
		take := remaining
		if take > space {
			take = space
		}
		shiftOut := remaining - take
		bits := (v >> uint(shiftOut)) & ((1 << uint(take)) - 1)
		a.word |= bits << uint(space-take)
		a.filled += take
		remaining -= take
		if a.filled == 32 {
			beOrder.PutUint32(dst[*out:], a.word)
			*out += 4
			a.word = 0
			a.filled = 0
		}
	}
}

// flushZeroPadded emits any partial word left-aligned and zero-padded to a
// full 4-byte word, used by tail-pack's final flush.
func (a *accum32) flushZeroPadded(dst []byte, out int) int {
	if a.filled == 0 {
		return out
	}
	beOrder.PutUint32(dst[out:], a.word)
	a.word, a.filled = 0, 0
	return out + 4
}

// flushTruncated emits exactly nbytes bytes of the current partial word,
// most-significant byte first, discarding the rest. Used by P8's
// per-group flush, where the group's total bit count is always an exact
// multiple of 8.
func (a *accum32) flushTruncated(dst []byte, out int, nbytes int) int {
	for i := 0; i < nbytes; i++ {
		shift := 24 - i*8
		dst[out+i] = byte(a.word >> uint(shift))
	}
	a.word, a.filled = 0, 0
	return out + nbytes
}

// raccum32 is the unpacking counterpart of accum32.
type raccum32 struct {
	word   uint32
	filled int
}

// pull extracts the next width bits from src, refilling from 4-byte
// big-endian words (or, at the end of src, from whatever bytes remain,
// left-aligned and zero-padded) as needed.
func (a *raccum32) pull(src []byte, pos *int, width int) uint32 {
	var result uint32
	remaining := width
	for remaining > 0 {
		if a.filled == 0 {
			if *pos+4 <= len(src) {
				a.word = beOrder.Uint32(src[*pos:])
				a.filled = 32
				*pos += 4
			} else {
				n := len(src) - *pos
				var w uint32
				for i := 0; i < n; i++ {
					w = (w << 8) | uint32(src[*pos+i])
				}
				w <<= uint((4 - n) * 8)
				a.word = w
				a.filled = n * 8
				*pos += n
			}
		}
		take := remaining
		if take > a.filled {
			take = a.filled
		}
		shift := a.filled - take
		bits := (a.word >> uint(shift)) & ((1 << uint(take)) - 1)
		result = (result << uint(take)) | bits
		a.filled -= take
		remaining -= take
	}
	return result
}

// packP8Group packs exactly 8 values at width bits each into dst, which
// must be exactly width bytes long.
func packP8Group(dst []byte, group []uint32, width int) {
	var acc accum32
	out := 0
	for _, v := range group {
		acc.push(dst, &out, v, width)
	}
	if rem := len(dst) - out; rem > 0 {
		out = acc.flushTruncated(dst, out, rem)
	}
}

// unpackP8Group is the inverse of packP8Group.
func unpackP8Group(dst []uint32, src []byte, width int) {
	var racc raccum32
	pos := 0
	for i := range dst {
		dst[i] = racc.pull(src, &pos, width)
	}
}

// packTail streams the r = len(values) < 8 residual values into dst using
// the tail-pack discipline: every full 32 bits flushes to 4 bytes, and a
// final partial word is zero-padded. Returns the number of bytes written.
func packTail(dst []byte, values []uint32, width int) int {
	var acc accum32
	out := 0
	for _, v := range values {
		acc.push(dst, &out, v, width)
	}
	return acc.flushZeroPadded(dst, out)
}

// unpackTail is the inverse of packTail; src must contain exactly
// tailByteLen(r, width) bytes.
func unpackTail(dst []uint32, src []byte, width int) {
	var racc raccum32
	pos := 0
	for i := range dst {
		dst[i] = racc.pull(src, &pos, width)
	}
}

// tailByteLen returns ceil(r*width/32) * 4, the byte length of a tail-pack
// section for r values at the given width.
func tailByteLen(r, width int) int {
	bitsTotal := r * width
	words := (bitsTotal + 31) / 32
	return words * 4
}

// outliersByteLen returns the total byte length of an encode_outliers
// section (P8 groups plus a tail-pack remainder) for n values at width.
func outliersByteLen(n, width int) int {
	groups := n / 8
	r := n % 8
	return groups*width + tailByteLen(r, width)
}

// encodeOutliers packs values into dst using the combined P8 + tail-pack
// discipline described in the design notes: the first 8*floor(n/8) values
// by P8, aligned groups, then the r = n mod 8 remainder by tail-pack.
// dst must be exactly outliersByteLen(len(values), width) bytes.
func encodeOutliers(dst []byte, values []uint32, width int) int {
	n := len(values)
	groups := n / 8
	out := 0
	for g := 0; g < groups; g++ {
		packP8Group(dst[out:out+width], values[g*8:g*8+8], width)
		out += width
	}
	r := n - groups*8
	if r > 0 {
		tlen := tailByteLen(r, width)
		packTail(dst[out:out+tlen], values[groups*8:], width)
		out += tlen
	}
	return out
}

// decodeOutliers is the inverse of encodeOutliers: it reads n values of
// the given width from src starting at *pos, advancing *pos past the
// section, and returns the decoded values.
func decodeOutliers(src []byte, pos *int, n, width int) ([]uint32, error) {
	groups := n / 8
	r := n - groups*8
	need := outliersByteLen(n, width)
	if *pos+need > len(src) {
		return nil, ErrTruncatedInput
	}
	values := make([]uint32, n)
	off := *pos
	for g := 0; g < groups; g++ {
		unpackP8Group(values[g*8:g*8+8], src[off:off+width], width)
		off += width
	}
	if r > 0 {
		tlen := tailByteLen(r, width)
		unpackTail(values[groups*8:], src[off:off+tlen], width)
		off += tlen
	}
	*pos = off
	return values, nil
}
