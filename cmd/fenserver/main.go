// fenserver serves FEN decoding, shortcode rendering and a preset store
// over HTTP and WebSocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/logging"
	"github.com/lgbarn/fenboard-go/internal/server"
	"github.com/lgbarn/fenboard-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenserver version %s\n", programVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fenserver: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *profileDir != "" {
		defer profile.Start(profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		return err
	}

	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", *logFile, err)
		}
		defer file.Close()
		cfg.LogFile = file
	}
	log := logging.NewTimestamped(cfg.LogFile, "fenserver: ")

	presets, err := store.Open(cfg.Server.PresetDir)
	if err != nil {
		return fmt.Errorf("opening preset store: %w", err)
	}
	defer presets.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, presets, server.WithLogger(log))
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("stopped")
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenserver [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serves the FEN decoder and the position preset store.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRoutes:\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/position?fen=...&strict=...&lang=...\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/position/start, /api/position/empty\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/shortcode\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/presets\n")
	fmt.Fprintf(os.Stderr, "  GET, PUT, DELETE /api/presets/{name}\n")
	fmt.Fprintf(os.Stderr, "  GET    /ws  (interactive editing session)\n")
}
