// processor.go - Line reading, parallel decoding and ordered output
package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/i18n"
	"github.com/lgbarn/fenboard-go/internal/logging"
	"github.com/lgbarn/fenboard-go/internal/matching"
	"github.com/lgbarn/fenboard-go/internal/output"
	"github.com/lgbarn/fenboard-go/internal/worker"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

// Input is one named source of FEN lines.
type Input struct {
	Name   string
	Reader io.Reader
}

// Stats summarizes a run.
type Stats struct {
	Lines      int
	Valid      int
	Invalid    int
	Duplicates int
	Filtered   int
}

// ProcessingContext holds everything the consumer needs while writing results.
type ProcessingContext struct {
	cfg      *config.Config
	log      logging.Verbose
	cat      *i18n.Catalogue
	writer   output.PositionWriter
	detector *hashing.DuplicateDetector
	filter   *matching.PositionFilter
	progress *progressbar.ProgressBar
	stats    Stats
}

// NewProcessingContext builds the context for cfg. The detector and the
// progress bar may be nil.
func NewProcessingContext(cfg *config.Config, detector *hashing.DuplicateDetector, progress *progressbar.ProgressBar) *ProcessingContext {
	return &ProcessingContext{
		cfg:      cfg,
		log:      logging.Verbose{Logger: logging.New(cfg.LogFile, "fencheck: "), Verbosity: cfg.Verbosity},
		cat:      i18n.Lookup(cfg.Decode.Locale),
		writer:   output.NewWriter(cfg.OutputFile, cfg),
		detector: detector,
		progress: progress,
	}
}

// SetFilter restricts the output to positions passing f.
func (ctx *ProcessingContext) SetFilter(f *matching.PositionFilter) {
	ctx.filter = f
}

// Stats returns the counts gathered so far.
func (ctx *ProcessingContext) Stats() Stats {
	return ctx.stats
}

// processAllInputs decodes every line of every input on a worker pool and
// hands the results to the consumer in input order.
func processAllInputs(ctx *ProcessingContext, inputs []Input) error {
	numWorkers := ctx.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pool := worker.NewPoolWithOptions(
		worker.DecodeFunc(ctx.cfg.Decode.Strict),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(4*numWorkers),
	)
	pool.Start()

	readErr := make(chan error, 1)
	go func() {
		readErr <- submitLines(pool, inputs)
		pool.Close()
	}()

	// Workers finish out of order; hold results until their turn comes.
	pending := make(map[int]worker.ProcessResult)
	next := 0
	var writeErr error
	for result := range pool.Results() {
		pending[result.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if writeErr == nil {
				writeErr = ctx.handleResult(r)
				if writeErr != nil {
					pool.Stop()
				}
			}
		}
	}

	if err := <-readErr; err != nil {
		return err
	}
	if writeErr != nil {
		return errors.Wrap(writeErr, "writing output")
	}
	if err := ctx.writer.Close(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// submitLines feeds every FEN-bearing line to the pool.
func submitLines(pool *worker.Pool, inputs []Input) error {
	index := 0
	for _, in := range inputs {
		scanner := bufio.NewScanner(in.Reader)
		scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			if pool.IsStopped() {
				return nil
			}
			line := scanner.Text()
			if worker.Skip(line) {
				continue
			}
			pool.Submit(worker.WorkItem{
				Line:   strings.TrimSpace(line),
				Index:  index,
				Source: in.Name,
				LineNo: lineNo,
			})
			index++
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "reading %s", in.Name)
		}
	}
	return nil
}

// loadCheckFile records every valid position of r in detector and returns
// how many were read. Lines that fail to decode are skipped.
func loadCheckFile(detector *hashing.DuplicateDetector, r io.Reader, strict bool) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	decode := worker.DecodeFunc(strict)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if worker.Skip(line) {
			continue
		}
		result := decode(worker.WorkItem{Line: strings.TrimSpace(line)})
		if result.Error != nil {
			continue
		}
		detector.CheckAndAdd(result.Position)
		n++
	}
	return n, scanner.Err()
}

// handleResult writes one decoded line. It runs on the single consumer
// goroutine, so the first occurrence of a duplicate is always the earliest
// line in the input.
func (ctx *ProcessingContext) handleResult(r worker.ProcessResult) error {
	ctx.stats.Lines++
	if ctx.progress != nil {
		_ = ctx.progress.Add(1)
	}

	if r.Error != nil {
		ctx.stats.Invalid++
		ctx.log.V(1, "%s:%d: %s", r.Item.Source, r.Item.LineNo, ctx.cat.Describe(r.Error))
		return ctx.writer.WriteError(r.Item.Source, r.Item.LineNo, r.Error)
	}

	if ctx.filter != nil && !ctx.filter.Match(r.Position) {
		ctx.stats.Filtered++
		return nil
	}

	if ctx.detector != nil && ctx.detector.CheckAndAdd(r.Position) {
		ctx.stats.Duplicates++
		ctx.log.V(2, "%s:%d: duplicate position", r.Item.Source, r.Item.LineNo)
		if dup := ctx.cfg.Duplicate.DuplicateFile; dup != nil {
			if _, err := fmt.Fprintln(dup, r.Item.Line); err != nil {
				return err
			}
		}
		if ctx.cfg.Duplicate.Suppress {
			return nil
		}
	}

	ctx.stats.Valid++
	return ctx.writer.WritePosition(output.Record{
		Position: r.Position,
		Counters: r.Counters,
		Source:   r.Item.Source,
		Line:     r.Item.LineNo,
	})
}
