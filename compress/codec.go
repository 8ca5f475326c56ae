// Package compress provides a pluggable general-purpose compression facade
// that BOS-M streams can optionally be layered under.
package compress

import (
	"fmt"

	"github.com/nilsor/bosm-go/format"
)

// Compressor compresses a byte slice, such as a BOS-M-encoded stream or a
// column's raw bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the size and timing outcome of a single
// compress/decompress pass, used by the benchmark harness to compare
// BOS-M against BOS-M-plus-general-purpose-compression.
type CompressionStats struct {
	Algorithm           format.CompressionType
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// CompressionRatio returns CompressedSize / OriginalSize; 0 if OriginalSize is 0.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage; it is negative
// when CompressedSize exceeds OriginalSize.
func (s CompressionStats) SpaceSavings() float64 {
	return (1 - s.CompressionRatio()) * 100
}

// CreateCodec builds a fresh Codec for the named algorithm. target names the
// call site for the error message when the tag is unrecognized.
func CreateCodec(tag format.CompressionType, target string) (Codec, error) {
	switch tag {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionLZMA2:
		return NewLZMA2Compressor(), nil
	default:
		return nil, fmt.Errorf("compress: invalid %s compression: %s", target, tag)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionGzip:   NewGzipCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionLZMA2:  NewLZMA2Compressor(),
}

// GetCodec returns the shared built-in Codec for tag.
func GetCodec(tag format.CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[tag]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("compress: unsupported compression type: %s", tag)
}
