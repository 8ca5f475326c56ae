package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nilsor/bosm-go"
	"github.com/nilsor/bosm-go/column"
	"github.com/nilsor/bosm-go/compress"
	"github.com/nilsor/bosm-go/format"
)

// runCompare pits BOS-M directly against every registered general-purpose
// codec over the column's raw bytes, producing the baseline comparison the
// spec frames BOS-M against ("the hard part" next to "trivial glue").
func runCompare(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	blockSize := fs.Int("block", 1024, "BOS-M block size")
	csvColumn := fs.Int("col", 0, "zero-based CSV column index")
	hasHeader := fs.Bool("header", true, "CSV file has a header row")
	synth := fs.Int("synth", 0, "synthesize N values instead of reading a file (0=disabled)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values, err := loadColumn(fs, *synth, *csvColumn, *hasHeader)
	if err != nil {
		return err
	}
	logger.Info("loaded column", "count", len(values))

	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.BigEndian.PutUint32(raw[i*4:], uint32(v))
	}

	fmt.Fprintf(os.Stdout, "%-10s %12s %10s %12s\n", "algorithm", "bytes", "ratio", "time")

	sc, err := bosm.NewStreamCodec(*blockSize)
	if err != nil {
		return fmt.Errorf("bosmbench: %w", err)
	}
	start := time.Now()
	encoded, err := sc.Encode(values)
	if err != nil {
		return fmt.Errorf("bosmbench: bosm encode: %w", err)
	}
	printRow("bosm", len(raw), len(encoded), time.Since(start))

	for _, tag := range []format.CompressionType{
		format.CompressionSnappy,
		format.CompressionLZ4,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionLZMA2,
	} {
		codec, err := compress.CreateCodec(tag, "compare")
		if err != nil {
			return fmt.Errorf("bosmbench: %w", err)
		}
		start = time.Now()
		compressed, err := codec.Compress(raw)
		if err != nil {
			return fmt.Errorf("bosmbench: %s compress: %w", tag, err)
		}
		printRow(tag.String(), len(raw), len(compressed), time.Since(start))
	}

	return nil
}

func printRow(name string, originalSize, compressedSize int, elapsed time.Duration) {
	stats := compress.CompressionStats{
		OriginalSize:   int64(originalSize),
		CompressedSize: int64(compressedSize),
	}
	fmt.Fprintf(os.Stdout, "%-10s %12d %9.2f%% %12s\n", name, compressedSize, 100*stats.CompressionRatio(), elapsed)
}
