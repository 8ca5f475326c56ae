package column

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceColumnSourceRead(t *testing.T) {
	src := NewSliceColumnSource([]int32{1, 2, 3})
	got, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestCSVColumnSourceRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.csv")
	content := "id,value\n1,100\n2,-50\n3,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	src := NewCSVColumnSource(path, 1, true)
	got, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, []int32{100, -50, 0}, got)
}

func TestCSVColumnSourceNoHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.csv")
	require.NoError(t, os.WriteFile(path, []byte("5\n6\n7\n"), 0o644))

	src := NewCSVColumnSource(path, 0, false)
	got, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 6, 7}, got)
}

func TestCSVColumnSourceMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.csv")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0o644))

	src := NewCSVColumnSource(path, 5, false)
	_, err := src.Read()
	assert.Error(t, err)
}
