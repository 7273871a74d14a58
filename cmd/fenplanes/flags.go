// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/pgn-planes-go/internal/config"
)

var (
	planeFile  = flag.String("planes", "", "JSON file selecting which planes to encode")
	workers    = flag.Int("workers", 0, "Number of encoders (0 = number of CPUs)")
	withTensor = flag.Bool("tensor", false, "Include the raw 8x8x31 tensor in the output")
	withDecode = flag.Bool("decode", false, "Include the FEN decoded back from the grid")
	textOutput = flag.Bool("text", false, "Print a plain text summary instead of JSON")

	logLevel = flag.String("loglevel", "warn", "Log level: trace, debug, info, warn, error")
	help     = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration builder.
func applyFlags(b *config.ConfigBuilder) *config.ConfigBuilder {
	n := *workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return b.WithPlaneFile(*planeFile).
		WithGridWorkers(n).
		WithTensorOutput(*withTensor).
		WithLogLevel(*logLevel)
}
