package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/output"
	"github.com/lgbarn/fenboard-go/internal/shortcode"
)

// strict reads ?strict=, defaulting to the configured mode.
func (s *Server) strict(r *http.Request) bool {
	if v := r.URL.Query().Get("strict"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return s.cfg.Decode.Strict
}

func decode(fen string, strict bool) (*chess.Position, chess.Counters, error) {
	if strict {
		return chess.NewPositionFromFENStrict(fen)
	}
	return chess.NewPositionFromFEN(fen)
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		writeMessage(w, http.StatusBadRequest, "missing fen parameter")
		return
	}

	p, counters, err := decode(fen, s.strict(r))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, output.ErrorToJSON(err, s.catalogue(r)))
		return
	}
	s.seen.CheckAndAdd(p)
	writeJSON(w, http.StatusOK, output.PositionToJSON(p, counters))
}

// StatsJSON is the body of GET /api/stats.
type StatsJSON struct {
	Unique     int  `json:"unique"`
	Duplicates int  `json:"duplicates"`
	Full       bool `json:"full"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsJSON{
		Unique:     s.seen.UniqueCount(),
		Duplicates: s.seen.DuplicateCount(),
		Full:       s.seen.IsFull(),
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, output.PositionToJSON(chess.NewPosition(), chess.DefaultCounters))
}

func (s *Server) handleEmpty(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, output.PositionToJSON(chess.NewEmptyPosition(), chess.DefaultCounters))
}

// ShortcodeRequest is the body of POST /api/shortcode.
type ShortcodeRequest struct {
	Content    string               `json:"content"`
	Attributes shortcode.Attributes `json:"attributes"`
}

// ShortcodeResponse carries the widget arguments and either the decoded
// position or the reason it could not be decoded.
type ShortcodeResponse struct {
	Widget   shortcode.WidgetArgs `json:"widget"`
	Position *output.PositionJSON `json:"position,omitempty"`
	Error    *output.ErrorJSON    `json:"error,omitempty"`
}

func (s *Server) handleShortcode(w http.ResponseWriter, r *http.Request) {
	var req ShortcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sc := shortcode.New(req.Attributes, req.Content,
		shortcode.WithWidgetConfig(s.cfg.Widget),
		shortcode.WithStrict(s.strict(r)))

	resp := ShortcodeResponse{Widget: sc.WidgetArgs()}
	p, counters, err := sc.Position()
	if err != nil {
		resp.Error = output.ErrorToJSON(err, s.catalogue(r))
	} else {
		resp.Position = output.PositionToJSON(p, counters)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) presetsAvailable(w http.ResponseWriter) bool {
	if s.presets == nil {
		writeMessage(w, http.StatusServiceUnavailable, "preset store disabled")
		return false
	}
	return true
}

// presetError maps store errors to HTTP statuses.
func (s *Server) presetError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errors.ErrInvalidPresetName):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errors.ErrPresetNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errors.ErrInvalidFEN):
		writeJSON(w, http.StatusUnprocessableEntity, output.ErrorToJSON(err, s.catalogue(r)))
	default:
		s.log.Printf("preset store: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	if !s.presetsAvailable(w) {
		return
	}
	presets, err := s.presets.List()
	if err != nil {
		s.presetError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	if !s.presetsAvailable(w) {
		return
	}
	preset, err := s.presets.Load(mux.Vars(r)["name"])
	if err != nil {
		s.presetError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

// PresetRequest is the body of PUT /api/presets/{name}.
type PresetRequest struct {
	FEN string `json:"fen"`
}

func (s *Server) handlePutPreset(w http.ResponseWriter, r *http.Request) {
	if !s.presetsAvailable(w) {
		return
	}
	var req PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	preset, err := s.presets.Save(mux.Vars(r)["name"], req.FEN, s.strict(r))
	if err != nil {
		s.presetError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if !s.presetsAvailable(w) {
		return
	}
	if err := s.presets.Delete(mux.Vars(r)["name"]); err != nil {
		s.presetError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
