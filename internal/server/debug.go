package server

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/fenboard-go/internal/chess"
)

var dumpConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

// handleDebugPosition dumps the internal state of a decoded position.
func (s *Server) handleDebugPosition(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		fen = chess.InitialFEN
	}

	p, counters, err := decode(fen, s.strict(r))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		dumpConfig.Fdump(w, err)
		return
	}
	dumpConfig.Fdump(w, p, counters)
}
