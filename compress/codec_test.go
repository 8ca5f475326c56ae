package compress

import (
	"math/rand"
	"testing"

	"github.com/nilsor/bosm-go/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodecTags() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionSnappy,
		format.CompressionLZ4,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionLZMA2,
	}
}

func TestCodecRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := make([]byte, 4096)
	rng.Read(data)

	for _, tag := range allCodecTags() {
		tag := tag
		t.Run(tag.String(), func(t *testing.T) {
			codec, err := CreateCodec(tag, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCodecRoundTripEmpty(t *testing.T) {
	for _, tag := range allCodecTags() {
		tag := tag
		t.Run(tag.String(), func(t *testing.T) {
			codec, err := CreateCodec(tag, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, decompressed)
		})
	}
}

func TestCreateCodecUnknownTag(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "test")
	assert.Error(t, err)
}

func TestGetCodecReturnsSharedInstance(t *testing.T) {
	a, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	b, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGetCodecUnknownTag(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	assert.Error(t, err)
}

func TestCompressionStatsRatioAndSavings(t *testing.T) {
	s := CompressionStats{OriginalSize: 1000, CompressedSize: 250}
	assert.InDelta(t, 0.25, s.CompressionRatio(), 1e-9)
	assert.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)
}

func TestCompressionStatsRatioZeroOriginal(t *testing.T) {
	s := CompressionStats{OriginalSize: 0, CompressedSize: 0}
	assert.Zero(t, s.CompressionRatio())
}
