package config

import "io"

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops positions already seen in the input
	Suppress bool

	// DuplicateFile receives the suppressed lines when not nil
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
