package column

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVColumnSource reads one column of int32 values from a CSV file. No CSV
// library appears anywhere in the retrieval pack's dependency graph, so this
// uses the standard library's encoding/csv.
type CSVColumnSource struct {
	path      string
	column    int
	hasHeader bool
}

// NewCSVColumnSource builds a source that reads the given zero-based column
// index from path. If hasHeader is true the first row is skipped.
func NewCSVColumnSource(path string, column int, hasHeader bool) CSVColumnSource {
	return CSVColumnSource{path: path, column: column, hasHeader: hasHeader}
}

func (s CSVColumnSource) Read() ([]int32, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("column: open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	if s.hasHeader {
		if _, err := r.Read(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("column: read header from %s: %w", s.path, err)
		}
	}

	values := make([]int32, 0, 1024)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("column: read %s: %w", s.path, err)
		}
		if s.column >= len(record) {
			return nil, fmt.Errorf("column: row has no column %d in %s", s.column, s.path)
		}
		v, err := strconv.ParseInt(record[s.column], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("column: parse %q in %s: %w", record[s.column], s.path, err)
		}
		values = append(values, int32(v))
	}
	return values, nil
}
