// Package server exposes the position model over HTTP and websockets.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/i18n"
	"github.com/lgbarn/fenboard-go/internal/logging"
	"github.com/lgbarn/fenboard-go/internal/store"
)

// Server serves the REST API and the live editing websocket.
type Server struct {
	cfg      *config.Config
	presets  *store.Store
	log      logging.Logger
	router   *mux.Router
	upgrader websocket.Upgrader

	// seen counts the distinct positions decoded by /api/position, preset
	// positions included.
	seen *hashing.ThreadSafeDuplicateDetector
}

// seenCapacity bounds the memory held by Server.seen.
const seenCapacity = 1 << 16

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a server. presets may be nil, in which case the preset
// routes answer 503.
func New(cfg *config.Config, presets *store.Store, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		presets: presets,
		log:     logging.Discard,
		router:  mux.NewRouter(),
		seen:    hashing.NewThreadSafeDuplicateDetector(true, seenCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadPresetPositions()
	s.routes()
	return s
}

// loadPresetPositions records every stored preset as already seen.
func (s *Server) loadPresetPositions() {
	if s.presets == nil {
		return
	}
	list, err := s.presets.List()
	if err != nil {
		s.log.Printf("listing presets: %v", err)
		return
	}

	detector := hashing.NewDuplicateDetector(true, seenCapacity)
	for _, preset := range list {
		p, _, err := chess.NewPositionFromFEN(preset.FEN)
		if err != nil {
			s.log.Printf("preset %s: %v", preset.Name, err)
			continue
		}
		detector.CheckAndAdd(p)
	}
	s.seen.LoadFromDetector(detector)
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/position", s.handlePosition).Methods(http.MethodGet)
	api.HandleFunc("/position/start", s.handleStart).Methods(http.MethodGet)
	api.HandleFunc("/position/empty", s.handleEmpty).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/shortcode", s.handleShortcode).Methods(http.MethodPost)
	api.HandleFunc("/presets", s.handleListPresets).Methods(http.MethodGet)
	api.HandleFunc("/presets/{name}", s.handleGetPreset).Methods(http.MethodGet)
	api.HandleFunc("/presets/{name}", s.handlePutPreset).Methods(http.MethodPut)
	api.HandleFunc("/presets/{name}", s.handleDeletePreset).Methods(http.MethodDelete)

	s.router.HandleFunc("/ws", s.handleSession)

	if s.cfg.Server.Debug {
		s.router.HandleFunc("/debug/position", s.handleDebugPosition).Methods(http.MethodGet)
	}

	s.router.Use(s.logRequests)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on cfg.Server.ListenAddr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Printf("listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

// catalogue picks the message language: ?lang=, then Accept-Language, then
// the configured locale.
func (s *Server) catalogue(r *http.Request) *i18n.Catalogue {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.Lookup(lang)
	}
	if lang := r.Header.Get("Accept-Language"); lang != "" {
		if i := strings.IndexAny(lang, ",;"); i >= 0 {
			lang = lang[:i]
		}
		return i18n.Lookup(lang)
	}
	return i18n.Lookup(s.cfg.Decode.Locale)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type messageJSON struct {
	Error string `json:"error"`
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageJSON{Error: msg})
}
