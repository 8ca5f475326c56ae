package bosm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackP8Group(t *testing.T) {
	for _, width := range []int{1, 2, 3, 4, 5, 7, 8, 11, 16, 20, 32} {
		width := width
		t.Run("", func(t *testing.T) {
			group := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
			mask := uint32((1 << uint(width)) - 1)
			if width == 32 {
				mask = 0xFFFFFFFF
			}
			for i := range group {
				group[i] = (group[i] * 999983) & mask
			}
			dst := make([]byte, width)
			packP8Group(dst, group, width)
			assert.Len(t, dst, width)

			got := make([]uint32, 8)
			unpackP8Group(got, dst, width)
			assert.Equal(t, group, got)
		})
	}
}

func TestPackUnpackTail(t *testing.T) {
	for r := 1; r < 8; r++ {
		for _, width := range []int{1, 5, 13, 32} {
			r, width := r, width
			t.Run("", func(t *testing.T) {
				values := make([]uint32, r)
				mask := uint32((1 << uint(width)) - 1)
				if width == 32 {
					mask = 0xFFFFFFFF
				}
				for i := range values {
					values[i] = uint32(i*7+3) & mask
				}
				dst := make([]byte, tailByteLen(r, width))
				n := packTail(dst, values, width)
				assert.Equal(t, len(dst), n)

				got := make([]uint32, r)
				unpackTail(got, dst, width)
				assert.Equal(t, values, got)
			})
		}
	}
}

func TestEncodeDecodeOutliers(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7, 8, 9, 15, 16, 23} {
		for _, width := range []int{1, 4, 9, 17, 32} {
			n, width := n, width
			t.Run("", func(t *testing.T) {
				values := make([]uint32, n)
				mask := uint32((1 << uint(width)) - 1)
				if width == 32 {
					mask = 0xFFFFFFFF
				}
				for i := range values {
					values[i] = uint32(i*2654435761) & mask
				}
				dst := make([]byte, outliersByteLen(n, width))
				written := encodeOutliers(dst, values, width)
				assert.Equal(t, len(dst), written)

				pos := 0
				got, err := decodeOutliers(dst, &pos, n, width)
				require.NoError(t, err)
				assert.Equal(t, len(dst), pos)
				assert.Equal(t, values, got)
			})
		}
	}
}

func TestDecodeOutliersTruncated(t *testing.T) {
	dst := make([]byte, outliersByteLen(9, 5))
	encodeOutliers(dst, make([]uint32, 9), 5)
	pos := 0
	_, err := decodeOutliers(dst[:len(dst)-1], &pos, 9, 5)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}
