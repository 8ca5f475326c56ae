package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// LZMA2Compressor wraps github.com/ulikunitz/xz/lzma, the de facto ecosystem
// LZMA2 implementation, for the cases where BOS-M's residual bit-packed
// output still has enough byte-level redundancy to reward a slow, dense codec.
type LZMA2Compressor struct{}

var _ Codec = LZMA2Compressor{}

func NewLZMA2Compressor() LZMA2Compressor { return LZMA2Compressor{} }

func (LZMA2Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter2(&buf)
	if err != nil {
		return nil, fmt.Errorf("compress: lzma2 writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: lzma2 write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: lzma2 close: %w", err)
	}
	return buf.Bytes(), nil
}

func (LZMA2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	r, err := lzma.NewReader2(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: lzma2 reader: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: lzma2 decompression failed: %w", err)
	}
	return out, nil
}
