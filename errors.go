package bosm

import "errors"

// Sentinel errors returned by the codec. Callers should use errors.Is to
// test for a specific kind; call sites wrap these with additional context
// via fmt.Errorf("bosm: ...: %w", ...).
var (
	// ErrInsufficientOutputBuffer is returned when a caller-supplied fixed
	// output buffer is too small to hold the encoded result.
	ErrInsufficientOutputBuffer = errors.New("bosm: insufficient output buffer")

	// ErrCorruptHeader is returned when a decoded header field is out of
	// range: a bit width outside 1..32, k1+k2 exceeding the collapsed
	// length, or a run table entry referencing a position past the block.
	ErrCorruptHeader = errors.New("bosm: corrupt block header")

	// ErrTruncatedInput is returned when the decoder's cursor would have
	// to advance past the end of the supplied input to satisfy a read.
	ErrTruncatedInput = errors.New("bosm: truncated input")

	// ErrInvalidInput is returned when encoder input violates a
	// precondition, such as a block size exceeding the k1 field width.
	ErrInvalidInput = errors.New("bosm: invalid input")
)
