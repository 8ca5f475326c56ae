package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/nilsor/bosm-go"
	"github.com/nilsor/bosm-go/column"
	"github.com/nilsor/bosm-go/compress"
	"github.com/nilsor/bosm-go/format"
)

func runRun(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	blockSize := fs.Int("block", 1024, "BOS-M block size")
	csvColumn := fs.Int("col", 0, "zero-based CSV column index")
	hasHeader := fs.Bool("header", true, "CSV file has a header row")
	synth := fs.Int("synth", 0, "synthesize N values instead of reading a file (0=disabled)")
	recompress := fs.String("recompress", "", "re-compress BOS-M output with: none|snappy|lz4|gzip|zstd|lzma2")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values, err := loadColumn(fs, *synth, *csvColumn, *hasHeader)
	if err != nil {
		return err
	}
	logger.Info("loaded column", "count", len(values))

	sc, err := bosm.NewStreamCodec(*blockSize)
	if err != nil {
		return fmt.Errorf("bosmbench: %w", err)
	}

	start := time.Now()
	encoded, err := sc.Encode(values)
	if err != nil {
		return fmt.Errorf("bosmbench: encode: %w", err)
	}
	encodeElapsed := time.Since(start)

	start = time.Now()
	decoded, err := sc.Decode(encoded)
	if err != nil {
		return fmt.Errorf("bosmbench: decode: %w", err)
	}
	decodeElapsed := time.Since(start)

	if len(decoded) != len(values) {
		return fmt.Errorf("bosmbench: round-trip length mismatch: got %d want %d", len(decoded), len(values))
	}

	originalBytes := int64(len(values)) * 4
	fmt.Fprintf(os.Stdout, "values:            %d\n", len(values))
	fmt.Fprintf(os.Stdout, "block size:        %d\n", *blockSize)
	fmt.Fprintf(os.Stdout, "raw bytes:         %d\n", originalBytes)
	fmt.Fprintf(os.Stdout, "bosm bytes:        %d (%.2f%% of raw)\n", len(encoded), 100*float64(len(encoded))/float64(originalBytes))
	fmt.Fprintf(os.Stdout, "encode time:       %s\n", encodeElapsed)
	fmt.Fprintf(os.Stdout, "decode time:       %s\n", decodeElapsed)

	if *recompress != "" {
		tag, err := parseCompressionTag(*recompress)
		if err != nil {
			return fmt.Errorf("bosmbench: %w", err)
		}
		codec, err := compress.CreateCodec(tag, "recompress")
		if err != nil {
			return fmt.Errorf("bosmbench: %w", err)
		}
		start = time.Now()
		recompressed, err := codec.Compress(encoded)
		if err != nil {
			return fmt.Errorf("bosmbench: recompress: %w", err)
		}
		stats := compress.CompressionStats{
			Algorithm:         tag,
			OriginalSize:      int64(len(encoded)),
			CompressedSize:    int64(len(recompressed)),
			CompressionTimeNs: time.Since(start).Nanoseconds(),
		}
		fmt.Fprintf(os.Stdout, "bosm+%-6s bytes:  %d (%.2f%% of bosm, %.2f%% of raw)\n",
			tag, len(recompressed), 100*stats.CompressionRatio(), 100*float64(len(recompressed))/float64(originalBytes))
	}

	return nil
}

func loadColumn(fs *flag.FlagSet, synth, col int, hasHeader bool) ([]int32, error) {
	if synth > 0 {
		rng := rand.New(rand.NewSource(1))
		values := make([]int32, synth)
		for i := range values {
			values[i] = int32(rng.Intn(1 << 20))
		}
		return column.NewSliceColumnSource(values).Read()
	}
	if fs.NArg() < 1 {
		return nil, fmt.Errorf("bosmbench: missing <input.csv> (or pass -synth)")
	}
	return column.NewCSVColumnSource(fs.Arg(0), col, hasHeader).Read()
}

func parseCompressionTag(name string) (format.CompressionType, error) {
	switch name {
	case "none":
		return format.CompressionNone, nil
	case "snappy":
		return format.CompressionSnappy, nil
	case "lz4":
		return format.CompressionLZ4, nil
	case "gzip":
		return format.CompressionGzip, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "lzma2":
		return format.CompressionLZMA2, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
