package config

import (
	"fmt"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// WidgetConfig holds the bounds and defaults used for chessboard widgets.
type WidgetConfig struct {
	MinSquareSize     int
	MaxSquareSize     int
	DefaultSquareSize int

	DefaultShowCoordinates bool
}

// NewWidgetConfig creates a WidgetConfig with default values.
func NewWidgetConfig() *WidgetConfig {
	return &WidgetConfig{
		MinSquareSize:          12,
		MaxSquareSize:          64,
		DefaultSquareSize:      32,
		DefaultShowCoordinates: true,
	}
}

// Validate checks that the widget configuration is valid.
func (w *WidgetConfig) Validate() error {
	if w.MinSquareSize < 1 {
		return fmt.Errorf("minimum square size (%d) < 1: %w", w.MinSquareSize, errors.ErrInvalidConfig)
	}
	if w.MinSquareSize > w.MaxSquareSize {
		return fmt.Errorf("minimum square size (%d) > maximum square size (%d): %w",
			w.MinSquareSize, w.MaxSquareSize, errors.ErrInvalidConfig)
	}
	if w.DefaultSquareSize < w.MinSquareSize || w.DefaultSquareSize > w.MaxSquareSize {
		return fmt.Errorf("default square size (%d) outside [%d, %d]: %w",
			w.DefaultSquareSize, w.MinSquareSize, w.MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
