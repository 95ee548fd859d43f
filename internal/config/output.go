package config

import (
	"fmt"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// OutputFormat represents the ways a decoded position can be written.
type OutputFormat int

const (
	FEN   OutputFormat = iota // Normalized FEN
	ASCII                     // Text diagram
	JSON                      // One JSON object per line
)

var outputFormatNames = [...]string{
	FEN:   "fen",
	ASCII: "ascii",
	JSON:  "json",
}

func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat maps a format name to its OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range outputFormatNames {
		if n == name {
			return OutputFormat(f), nil
		}
	}
	return FEN, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects the representation of each position.
	Format OutputFormat

	// KeepCounters writes the half-move clock and move number parsed from
	// the input instead of the defaults 0 and 1.
	KeepCounters bool

	// ReportErrors writes invalid lines to the output as well as the log.
	ReportErrors bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:       FEN,
		KeepCounters: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < 0 || int(o.Format) >= len(outputFormatNames) {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
