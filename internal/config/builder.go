package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStrict enables strict FEN decoding.
func (b *ConfigBuilder) WithStrict(strict bool) *ConfigBuilder {
	b.cfg.Decode.Strict = strict
	return b
}

// WithLocale sets the language of error messages.
func (b *ConfigBuilder) WithLocale(lang string) *ConfigBuilder {
	b.cfg.Decode.Locale = lang
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithSquareSizeBounds sets the accepted widget square sizes.
func (b *ConfigBuilder) WithSquareSizeBounds(lo, hi, def int) *ConfigBuilder {
	b.cfg.Widget.MinSquareSize = lo
	b.cfg.Widget.MaxSquareSize = hi
	b.cfg.Widget.DefaultSquareSize = def
	return b
}

// WithShowCoordinates sets the default for widget coordinates.
func (b *ConfigBuilder) WithShowCoordinates(show bool) *ConfigBuilder {
	b.cfg.Widget.DefaultShowCoordinates = show
	return b
}

// WithWorkers sets the number of decode workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithListenAddr sets the server address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithPresetDir sets the preset database directory.
func (b *ConfigBuilder) WithPresetDir(dir string) *ConfigBuilder {
	b.cfg.Server.PresetDir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
