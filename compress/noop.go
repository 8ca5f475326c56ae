package compress

// NoOpCompressor bypasses compression entirely, used as a baseline and for
// data that is already dense enough that a general-purpose pass would not help.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

func (NoOpCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }
