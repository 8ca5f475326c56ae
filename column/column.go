// Package column supplies the IntegerColumnSource external collaborator
// BOS-M is paired with: a source of raw int32 values to encode.
package column

// IntegerColumnSource yields one column's worth of int32 values to encode.
type IntegerColumnSource interface {
	Read() ([]int32, error)
}

// SliceColumnSource wraps an in-memory slice, used in tests and for
// benchmark synthetic-data generation.
type SliceColumnSource struct {
	values []int32
}

// NewSliceColumnSource wraps values without copying; callers should not
// mutate values after construction.
func NewSliceColumnSource(values []int32) SliceColumnSource {
	return SliceColumnSource{values: values}
}

func (s SliceColumnSource) Read() ([]int32, error) {
	return s.values, nil
}
