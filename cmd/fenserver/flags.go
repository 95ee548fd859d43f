// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/fenboard-go/internal/config"
)

var (
	addr       = flag.String("addr", ":8080", "Listen address")
	presetDir  = flag.String("presets", "", "Directory of the preset store (default: in memory)")
	debug      = flag.Bool("debug", false, "Enable /debug routes")
	strict     = flag.Bool("strict", false, "Decode in strict mode unless a request asks otherwise")
	lang       = flag.String("lang", "en", "Default language of error messages (en, fr)")
	profileDir = flag.String("profile", "", "Write a CPU profile to this directory")
	logFile    = flag.String("l", "", "Write the request log to this file (default: stderr)")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Server.ListenAddr = *addr
	cfg.Server.PresetDir = *presetDir
	cfg.Server.Debug = *debug
	cfg.Decode.Strict = *strict
	cfg.Decode.Locale = *lang
	return cfg.Validate()
}
