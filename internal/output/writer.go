// Package output provides position output in the formats fencheck supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/i18n"
)

// Record is one decoded input line.
type Record struct {
	Position *chess.Position
	Counters chess.Counters
	Source   string
	Line     int
}

// PositionWriter is the interface for writing positions to output.
type PositionWriter interface {
	// WritePosition writes a single decoded position.
	WritePosition(r Record) error

	// WriteError reports an input line that failed to decode.
	WriteError(source string, line int, err error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	cat := i18n.Lookup(cfg.Decode.Locale)
	switch cfg.Output.Format {
	case config.ASCII:
		return NewASCIIWriter(w, cfg, cat)
	case config.JSON:
		return NewJSONWriterSingle(w, cfg, cat)
	default:
		return NewFENWriter(w, cfg, cat)
	}
}

func counters(r Record, cfg *config.Config) chess.Counters {
	if cfg.Output.KeepCounters {
		return r.Counters
	}
	return chess.DefaultCounters
}

// FENWriter writes one normalized FEN string per line.
type FENWriter struct {
	w   io.Writer
	cfg *config.Config
	cat *i18n.Catalogue
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer, cfg *config.Config, cat *i18n.Catalogue) *FENWriter {
	return &FENWriter{w: w, cfg: cfg, cat: cat}
}

// WritePosition writes the position as FEN.
func (fw *FENWriter) WritePosition(r Record) error {
	_, err := fmt.Fprintln(fw.w, r.Position.FENWithCounters(counters(r, fw.cfg)))
	return err
}

// WriteError writes a comment line when errors are reported in the output.
func (fw *FENWriter) WriteError(source string, line int, err error) error {
	if !fw.cfg.Output.ReportErrors {
		return nil
	}
	_, werr := fmt.Fprintf(fw.w, "# %s:%d: %s\n", source, line, fw.cat.Describe(err))
	return werr
}

// Flush is a no-op; FEN is written immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// ASCIIWriter writes a text diagram per position.
type ASCIIWriter struct {
	FENWriter
}

// NewASCIIWriter creates a new diagram writer.
func NewASCIIWriter(w io.Writer, cfg *config.Config, cat *i18n.Catalogue) *ASCIIWriter {
	return &ASCIIWriter{FENWriter{w: w, cfg: cfg, cat: cat}}
}

// WritePosition writes the source line, the diagram and a blank line.
func (aw *ASCIIWriter) WritePosition(r Record) error {
	_, err := fmt.Fprintf(aw.w, "%s:%d\n%s\n\n", r.Source, r.Line, r.Position.ASCII())
	return err
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*PositionJSON `json:"positions"`
	Errors    []*ErrorJSON    `json:"errors,omitempty"`
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as one object on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	cat    *i18n.Catalogue
	buf    JSONOutput
	single bool // If true, write one object per line instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config, cat *i18n.Catalogue) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
		cat: cat,
		buf: JSONOutput{Positions: make([]*PositionJSON, 0)},
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config, cat *i18n.Catalogue) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		cat:    cat,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(r Record) error {
	pj := PositionToJSON(r.Position, counters(r, jw.cfg))
	pj.Source = r.Source
	pj.Line = r.Line
	if jw.single {
		return json.NewEncoder(jw.w).Encode(pj)
	}
	jw.buf.Positions = append(jw.buf.Positions, pj)
	return nil
}

// WriteError records a decode failure when errors are reported in the output.
func (jw *JSONWriter) WriteError(source string, line int, err error) error {
	if !jw.cfg.Output.ReportErrors {
		return nil
	}
	ej := ErrorToJSON(err, jw.cat)
	ej.Source = source
	ej.Line = line
	if jw.single {
		return json.NewEncoder(jw.w).Encode(ej)
	}
	jw.buf.Errors = append(jw.buf.Errors, ej)
	return nil
}

// Flush writes all buffered records as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.buf.Positions) == 0 && len(jw.buf.Errors) == 0) {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&jw.buf)

	// Clear buffer after writing
	jw.buf.Positions = jw.buf.Positions[:0]
	jw.buf.Errors = nil

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
