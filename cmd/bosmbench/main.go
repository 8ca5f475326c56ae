// Command bosmbench benchmarks the BOS-M integer block codec against
// general-purpose compressors over a CSV-sourced or synthetic column.
//
// Usage:
//
//	bosmbench run [options] <input.csv>        Encode a column with BOS-M
//	bosmbench compare [options] <input.csv>    Compare BOS-M vs. general-purpose codecs
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var err error
	switch os.Args[1] {
	case "run":
		err = runRun(os.Args[2:], logger)
	case "compare":
		err = runCompare(os.Args[2:], logger)
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "bosmbench: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  bosmbench run [options] <input.csv>       Encode a CSV column with BOS-M
  bosmbench compare [options] <input.csv>   Compare BOS-M vs. general-purpose codecs

Run "bosmbench <command> -h" for command-specific options.
`)
}
