// Package config provides configuration for the fenboard tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-line commentary

	// Workers is the number of decode workers; 0 means one per CPU.
	Workers int

	Decode    *DecodeConfig
	Widget    *WidgetConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Server    *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Decode:     NewDecodeConfig(),
		Widget:     NewWidgetConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the main output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count (%d): %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Widget.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// DecodeConfig holds settings for FEN decoding.
type DecodeConfig struct {
	// Strict rejects castle rights out of KQkq order, an en-passant row
	// that does not match the side to move and leading zeros in counters.
	Strict bool

	// Locale selects the message catalogue for decode errors.
	Locale string
}

// NewDecodeConfig creates a DecodeConfig with default values.
func NewDecodeConfig() *DecodeConfig {
	return &DecodeConfig{Locale: "en"}
}
