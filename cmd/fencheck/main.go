// fencheck validates and normalizes FEN strings, one per input line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/matching"
)

const programVersion = "0.1.0"

// Exit statuses.
const (
	exitOK      = 0
	exitInvalid = 1
	exitFailure = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("fencheck version %s\n", programVersion)
		os.Exit(exitOK)
	}

	os.Exit(run(flag.Args()))
}

// run does the work of main and returns the exit status, so deferred
// cleanup such as the profiler still happens.
func run(args []string) int {
	if *profileDir != "" {
		defer profile.Start(profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fencheck: %v\n", err)
		return exitFailure
	}

	closers, err := setupFiles(cfg)
	defer closeAll(closers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencheck: %v\n", err)
		return exitFailure
	}

	inputs, inputClosers, err := openInputs(args)
	defer closeAll(inputClosers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencheck: %v\n", err)
		return exitFailure
	}

	var bar *progressbar.ProgressBar
	if *showProgress {
		bar = progressbar.Default(-1, "checking")
	}

	detector, err := setupDuplicateDetector(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencheck: %v\n", err)
		return exitFailure
	}

	filter, err := setupPositionFilter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencheck: %v\n", err)
		return exitFailure
	}

	ctx := NewProcessingContext(cfg, detector, bar)
	if filter.HasCriteria() {
		ctx.SetFilter(filter)
	}
	err = processAllInputs(ctx, inputs)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fencheck: %v\n", err)
		return exitFailure
	}

	stats := ctx.Stats()
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, ctx.detector != nil, stats)
	}
	if stats.Invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// setupFiles opens the output, log and duplicate files named on the
// command line. The returned closers must be closed even on error.
func setupFiles(cfg *config.Config) ([]io.Closer, error) {
	var closers []io.Closer

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return closers, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		closers = append(closers, file)
		cfg.LogFile = file
	}

	if *outputFile != "" {
		var file *os.File
		var err error
		if *appendOutput {
			file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
		} else {
			file, err = os.Create(*outputFile)
		}
		if err != nil {
			return closers, fmt.Errorf("creating output file %s: %w", *outputFile, err)
		}
		closers = append(closers, file)
		cfg.SetOutput(file)
	}

	if *duplicateFile != "" {
		file, err := os.Create(*duplicateFile)
		if err != nil {
			return closers, fmt.Errorf("creating duplicate file %s: %w", *duplicateFile, err)
		}
		closers = append(closers, file)
		cfg.Duplicate.DuplicateFile = file
	}

	return closers, nil
}

// openInputs opens each named file, or stdin when there are none. A name
// of "-" also means stdin.
func openInputs(names []string) ([]Input, []io.Closer, error) {
	if len(names) == 0 {
		return []Input{{Name: "<stdin>", Reader: os.Stdin}}, nil, nil
	}

	var inputs []Input
	var closers []io.Closer
	for _, name := range names {
		if name == "-" {
			inputs = append(inputs, Input{Name: "<stdin>", Reader: os.Stdin})
			continue
		}
		file, err := os.Open(name)
		if err != nil {
			return nil, closers, fmt.Errorf("opening %s: %w", name, err)
		}
		closers = append(closers, file)
		inputs = append(inputs, Input{Name: name, Reader: file})
	}
	return inputs, closers, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}

// setupDuplicateDetector returns nil unless duplicates are suppressed,
// collected or checked against a file.
func setupDuplicateDetector(cfg *config.Config) (*hashing.DuplicateDetector, error) {
	if !cfg.Duplicate.Suppress && cfg.Duplicate.DuplicateFile == nil && *checkFile == "" {
		return nil, nil
	}

	detector := hashing.NewDuplicateDetector(true, *duplicateCapacity)
	if *checkFile == "" {
		return detector, nil
	}

	file, err := os.Open(*checkFile)
	if err != nil {
		return nil, fmt.Errorf("opening check file %s: %w", *checkFile, err)
	}
	defer file.Close()

	n, err := loadCheckFile(detector, file, cfg.Decode.Strict)
	if err != nil {
		return nil, fmt.Errorf("reading check file %s: %w", *checkFile, err)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Loaded %d position(s) from check file\n", n)
	}
	return detector, nil
}

// setupPositionFilter builds the filter from the -z, -y, -x and -n flags.
func setupPositionFilter() (*matching.PositionFilter, error) {
	filter := matching.NewPositionFilter()
	filter.SetNegate(*negateMatch)

	if *materialMatch != "" {
		mm, err := matching.NewMaterialMatcher(*materialMatch, false)
		if err != nil {
			return nil, err
		}
		filter.AddMaterial(mm)
	}
	if *materialMatchExact != "" {
		mm, err := matching.NewMaterialMatcher(*materialMatchExact, true)
		if err != nil {
			return nil, err
		}
		filter.AddMaterial(mm)
	}

	if *positionFile != "" {
		file, err := os.Open(*positionFile)
		if err != nil {
			return nil, fmt.Errorf("opening position file %s: %w", *positionFile, err)
		}
		defer file.Close()
		if err := filter.Positions().LoadFromReader(file, *invertPatterns); err != nil {
			return nil, fmt.Errorf("loading position file %s: %w", *positionFile, err)
		}
	}

	return filter, nil
}

func reportStatistics(w io.Writer, duplicates bool, stats Stats) {
	if stats.Filtered > 0 {
		fmt.Fprintf(w, "%d position(s) filtered out.\n", stats.Filtered)
	}
	if duplicates {
		fmt.Fprintf(w, "%d valid, %d invalid, %d duplicate(s) out of %d line(s).\n",
			stats.Valid, stats.Invalid, stats.Duplicates, stats.Lines)
	} else {
		fmt.Fprintf(w, "%d valid, %d invalid out of %d line(s).\n", stats.Valid, stats.Invalid, stats.Lines)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fencheck [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Validates FEN strings, one per line, and writes them in canonical form.\n")
	fmt.Fprintf(os.Stderr, "Blank lines and lines starting with '#' are ignored.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  fen    Canonical FEN (default)\n")
	fmt.Fprintf(os.Stderr, "  ascii  Board diagram per position\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON object per line\n")
	fmt.Fprintf(os.Stderr, "\nExit status is 1 when any line fails to decode.\n")
}
