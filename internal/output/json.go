package output

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/i18n"
)

// PositionJSON represents a decoded position in JSON format.
type PositionJSON struct {
	FEN            string   `json:"fen"`
	Board          []string `json:"board"` // ranks 8 to 1, '.' for empty squares
	Turn           string   `json:"turn"`  // "w" or "b"
	CastleRights   string   `json:"castleRights"`
	EnPassant      string   `json:"enPassant"` // column letter or "-"
	Legality       string   `json:"legality"`
	WhiteKing      string   `json:"whiteKing,omitempty"`
	BlackKing      string   `json:"blackKing,omitempty"`
	HalfMoveClock  int      `json:"halfMoveClock"`
	FullMoveNumber int      `json:"fullMoveNumber"`
	Source         string   `json:"source,omitempty"`
	Line           int      `json:"line,omitempty"`
}

// ErrorJSON represents a rejected input in JSON format.
type ErrorJSON struct {
	Error   string `json:"error"`            // localized message
	Reason  string `json:"reason,omitempty"` // stable tag for FEN errors
	FEN     string `json:"fen,omitempty"`
	Char    string `json:"char,omitempty"`
	Ordinal int    `json:"ordinal,omitempty"`
	Source  string `json:"source,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// PositionToJSON converts a position and its counters to JSON format.
func PositionToJSON(p *chess.Position, counters chess.Counters) *PositionJSON {
	pj := &PositionJSON{
		FEN:            p.FENWithCounters(counters),
		Board:          boardRanks(p),
		Turn:           string(p.Turn().Letter()),
		CastleRights:   p.CastleRights().String(),
		EnPassant:      p.EnPassantString(),
		Legality:       p.Legality().String(),
		HalfMoveClock:  counters.HalfMoveClock,
		FullMoveNumber: counters.FullMoveNumber,
	}
	if idx, ok := p.KingSquare(chess.White); ok {
		pj.WhiteKing = squareName(idx)
	}
	if idx, ok := p.KingSquare(chess.Black); ok {
		pj.BlackKing = squareName(idx)
	}
	return pj
}

// ErrorToJSON converts an error to JSON format, localized with cat.
func ErrorToJSON(err error, cat *i18n.Catalogue) *ErrorJSON {
	ej := &ErrorJSON{Error: cat.Describe(err)}

	var fenErr *errors.FENError
	if errors.As(err, &fenErr) {
		ej.Reason = fenErr.Reason.String()
		ej.FEN = fenErr.FEN
		if fenErr.Reason == errors.UnexpectedCharacter {
			ej.Char = string(fenErr.Char)
		}
		ej.Ordinal = fenErr.Ordinal
	}
	return ej
}

func boardRanks(p *chess.Position) []string {
	board := p.Board()
	ranks := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			if cp, ok := board.Get(row, col).Piece(); ok {
				sb.WriteByte(cp.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		ranks = append(ranks, sb.String())
	}
	return ranks
}

func squareName(index int) string {
	row, col := chess.RowColumn(index)
	return chess.SquareName(row, col)
}
