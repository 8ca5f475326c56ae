package compress

import "github.com/golang/snappy"

// SnappyCompressor wraps the canonical github.com/golang/snappy implementation.
type SnappyCompressor struct{}

var _ Codec = SnappyCompressor{}

func NewSnappyCompressor() SnappyCompressor { return SnappyCompressor{} }

func (SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return snappy.Encode(nil, data), nil
}

func (SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return snappy.Decode(nil, data)
}
