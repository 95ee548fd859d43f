package config

import (
	"bytes"
	"errors"
	"testing"

	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
)

// TestDecodeConfig_Defaults verifies DecodeConfig has sensible defaults
func TestDecodeConfig_Defaults(t *testing.T) {
	cfg := NewDecodeConfig()

	if cfg.Strict {
		t.Error("Strict should be false by default")
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
}

// TestWidgetConfig_Defaults verifies WidgetConfig has sensible defaults
func TestWidgetConfig_Defaults(t *testing.T) {
	cfg := NewWidgetConfig()

	if cfg.MinSquareSize != 12 || cfg.MaxSquareSize != 64 || cfg.DefaultSquareSize != 32 {
		t.Errorf("square sizes = %d/%d/%d, want 12/64/32",
			cfg.MinSquareSize, cfg.MaxSquareSize, cfg.DefaultSquareSize)
	}
	if !cfg.DefaultShowCoordinates {
		t.Error("DefaultShowCoordinates should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// TestWidgetConfig_Validate verifies widget config validation
func TestWidgetConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     WidgetConfig
		wantErr bool
	}{
		{
			name:    "valid bounds",
			cfg:     WidgetConfig{MinSquareSize: 10, MaxSquareSize: 50, DefaultSquareSize: 20},
			wantErr: false,
		},
		{
			name:    "single size",
			cfg:     WidgetConfig{MinSquareSize: 30, MaxSquareSize: 30, DefaultSquareSize: 30},
			wantErr: false,
		},
		{
			name:    "zero minimum",
			cfg:     WidgetConfig{MinSquareSize: 0, MaxSquareSize: 50, DefaultSquareSize: 20},
			wantErr: true,
		},
		{
			name:    "min > max",
			cfg:     WidgetConfig{MinSquareSize: 50, MaxSquareSize: 10, DefaultSquareSize: 20},
			wantErr: true,
		},
		{
			name:    "default out of range",
			cfg:     WidgetConfig{MinSquareSize: 10, MaxSquareSize: 50, DefaultSquareSize: 60},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, fenerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestOutputFormat_Parse verifies format names round-trip
func TestOutputFormat_Parse(t *testing.T) {
	for _, f := range []OutputFormat{FEN, ASCII, JSON} {
		got, err := ParseOutputFormat(f.String())
		if err != nil {
			t.Fatalf("ParseOutputFormat(%q) error = %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}

	if _, err := ParseOutputFormat("pgn"); !errors.Is(err, fenerrors.ErrInvalidConfig) {
		t.Errorf("ParseOutputFormat(pgn) error = %v, want ErrInvalidConfig", err)
	}
	if OutputFormat(9).String() != "unknown" {
		t.Errorf("OutputFormat(9).String() = %q", OutputFormat(9).String())
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig has sensible defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if cfg.DuplicateFile != nil {
		t.Error("DuplicateFile should be nil by default")
	}
}

// TestConfig_EmbeddedStructs verifies that Config wires every sub-config
func TestConfig_EmbeddedStructs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != FEN {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, FEN)
	}
	if !cfg.Output.KeepCounters {
		t.Error("Output.KeepCounters should be true")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false")
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Server.ListenAddr = %q, want :8080", cfg.Server.ListenAddr)
	}
	if cfg.Server.PresetDir != "" {
		t.Errorf("Server.PresetDir = %q, want empty", cfg.Server.PresetDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

// TestConfig_Validate verifies errors surface from the sections
func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	cfg.Workers = -1
	if err := cfg.Validate(); !errors.Is(err, fenerrors.ErrInvalidConfig) {
		t.Errorf("negative workers: error = %v", err)
	}

	cfg = NewConfig()
	cfg.Widget.DefaultSquareSize = 100
	if err := cfg.Validate(); !errors.Is(err, fenerrors.ErrInvalidConfig) {
		t.Errorf("bad widget: error = %v", err)
	}

	cfg = NewConfig()
	cfg.Output.Format = OutputFormat(7)
	if err := cfg.Validate(); !errors.Is(err, fenerrors.ErrInvalidConfig) {
		t.Errorf("bad format: error = %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStrict(true).
		WithLocale("fr").
		WithOutputFormat(JSON).
		WithDuplicateSuppression(true).
		WithSquareSizeBounds(16, 48, 24).
		WithShowCoordinates(false).
		WithWorkers(3).
		WithListenAddr("127.0.0.1:0").
		WithPresetDir("/tmp/presets").
		WithOutput(out).
		WithLog(logs).
		WithVerbosity(2).
		Build()

	if !cfg.Decode.Strict {
		t.Error("Decode.Strict should be true")
	}
	if cfg.Decode.Locale != "fr" {
		t.Errorf("Locale = %q, want fr", cfg.Decode.Locale)
	}
	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Widget.MinSquareSize != 16 || cfg.Widget.MaxSquareSize != 48 || cfg.Widget.DefaultSquareSize != 24 {
		t.Errorf("square sizes = %+v", cfg.Widget)
	}
	if cfg.Widget.DefaultShowCoordinates {
		t.Error("DefaultShowCoordinates should be false")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:0" || cfg.Server.PresetDir != "/tmp/presets" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.OutputFile != out || cfg.LogFile != logs {
		t.Error("writers not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
