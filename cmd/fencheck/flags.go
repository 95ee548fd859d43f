// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/fenboard-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "fen", "Output format: fen, ascii, json")
	noCounters   = flag.Bool("nocounters", false, "Reset move counters to 0 1 in the output")
	reportErrors = flag.Bool("report", false, "Also write invalid lines to the output")

	// Decoding
	strict = flag.Bool("strict", false, "Reject non-canonical FEN strings")
	lang   = flag.String("lang", "en", "Language of error messages (en, fr)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	checkFile          = flag.String("c", "", "Treat positions in this file as already seen")

	// Position filters
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")
	positionFile       = flag.String("x", "", "File of FENs and placement patterns to match")
	invertPatterns     = flag.Bool("invert", false, "Also match placement patterns with colours swapped")
	negateMatch        = flag.Bool("n", false, "Output positions that do NOT match the filters")

	// Processing
	workers      = flag.Int("j", 0, "Number of decode workers (0 = one per CPU)")
	showProgress = flag.Bool("progress", false, "Show a progress bar on stderr")
	profileDir   = flag.String("profile", "", "Write a CPU profile to this directory")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("s", false, "Silent mode: no summary")
	verbose = flag.Bool("v", false, "Report every duplicate")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.KeepCounters = !*noCounters
	cfg.Output.ReportErrors = *reportErrors

	cfg.Decode.Strict = *strict
	cfg.Decode.Locale = *lang

	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Workers = *workers

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return cfg.Validate()
}
