package chess

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EmptyFEN is the FEN string for the empty board.
const EmptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// Counters holds the two move-counting fields of a FEN string. They are
// passed through the codec, not stored in a Position.
type Counters struct {
	HalfMoveClock  int `json:"halfMoveClock"`
	FullMoveNumber int `json:"fullMoveNumber"`
}

// DefaultCounters are used when encoding without explicit counters.
var DefaultCounters = Counters{HalfMoveClock: 0, FullMoveNumber: 1}

// NewPositionFromFEN creates a position from a FEN string in lenient mode.
func NewPositionFromFEN(fen string) (*Position, Counters, error) {
	p := &Position{}
	counters, err := p.decodeFEN(fen, false)
	if err != nil {
		return nil, Counters{}, err
	}
	return p, counters, nil
}

// NewPositionFromFENStrict creates a position from a FEN string in strict mode.
func NewPositionFromFENStrict(fen string) (*Position, Counters, error) {
	p := &Position{}
	counters, err := p.decodeFEN(fen, true)
	if err != nil {
		return nil, Counters{}, err
	}
	return p, counters, nil
}

// FEN returns the FEN string of the position with default counters.
func (p *Position) FEN() string {
	return p.FENWithCounters(DefaultCounters)
}

// SetFEN parses fen in lenient mode and, on success, replaces the position.
func (p *Position) SetFEN(fen string) (Counters, error) {
	return p.decodeFEN(fen, false)
}

// SetFENStrict parses fen in strict mode and, on success, replaces the position.
func (p *Position) SetFENStrict(fen string) (Counters, error) {
	return p.decodeFEN(fen, true)
}

// ParseFEN parses fen with the given strictness.
func (p *Position) ParseFEN(fen string, strict bool) (Counters, error) {
	return p.decodeFEN(fen, strict)
}

// decodeFEN parses into a scratch position and commits only on success,
// so a failed decode never leaves p half-written. Legality becomes Unknown
// and the king cache is recomputed from the decoded board.
func (p *Position) decodeFEN(fen string, strict bool) (Counters, error) {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Counters{}, &errors.FENError{FEN: fen, Reason: errors.WrongFieldCount}
	}

	var next Position
	next.Clear()
	next.legality = LegalityUnknown

	if err := parsePiecePlacement(&next.board, fields[0]); err != nil {
		err.FEN = fen
		return Counters{}, err
	}

	turn, ok := parseTurn(fields[1])
	if !ok {
		return Counters{}, &errors.FENError{FEN: fen, Reason: errors.InvalidTurn}
	}
	next.turn = turn

	rights, ok := ParseCastleRights(fields[2], strict)
	if !ok {
		return Counters{}, &errors.FENError{FEN: fen, Reason: errors.InvalidCastleRights}
	}
	next.castleRights = rights

	ep, reason, ok := parseEnPassant(fields[3], turn, strict)
	if !ok {
		return Counters{}, &errors.FENError{FEN: fen, Reason: reason}
	}
	next.enPassant = ep

	counters, ordinal, ok := parseCounters(fields[4], fields[5], strict)
	if !ok {
		return Counters{}, &errors.FENError{FEN: fen, Reason: errors.InvalidMoveCounter, Ordinal: ordinal}
	}

	next.refreshKings()
	*p = next
	return counters, nil
}

// parsePiecePlacement parses field 1 into board, first sub-field = rank 8.
func parsePiecePlacement(board *Board, placement string) *errors.FENError {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return &errors.FENError{Reason: errors.WrongRankCount}
	}

	for i, rankField := range ranks {
		row := BoardSize - 1 - i
		col := 0
		pos := 0
		for pos < len(rankField) && col < BoardSize {
			c := rankField[pos]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				cp, ok := ColoredPieceFromLetter(c)
				if !ok {
					r, _ := utf8.DecodeRuneInString(rankField[pos:])
					return &errors.FENError{Reason: errors.UnexpectedCharacter, Char: r}
				}
				board.Set(row, col, PieceContent(cp))
				col++
			}
			pos++
		}
		if pos != len(rankField) || col != BoardSize {
			return &errors.FENError{Reason: errors.BadRankLength, Ordinal: i + 1}
		}
	}
	return nil
}

// parseTurn parses field 2.
func parseTurn(field string) (Color, bool) {
	switch field {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return White, false
}

// parseEnPassant parses field 4: "-" or [a-h][36]. In strict mode rank 6
// requires White to move and rank 3 requires Black to move.
func parseEnPassant(field string, turn Color, strict bool) (int, errors.FENReason, bool) {
	if field == "-" {
		return noEnPassant, 0, true
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || (field[1] != '3' && field[1] != '6') {
		return noEnPassant, errors.InvalidEnPassant, false
	}
	if strict && field[1] != enPassantRank(turn) {
		return noEnPassant, errors.InconsistentEnPassantRow, false
	}
	return int(field[0] - 'a'), 0, true
}

// enPassantRank is the rank digit of the en-passant target square.
func enPassantRank(turn Color) byte {
	if turn == White {
		return '6'
	}
	return '3'
}

// parseCounters parses fields 5 and 6. Strict mode forbids leading zeros
// other than the literal "0". On failure the 1-based field number is returned.
func parseCounters(halfMove, fullMove string, strict bool) (Counters, int, bool) {
	h, ok := parseCounter(halfMove, strict)
	if !ok {
		return Counters{}, 5, false
	}
	f, ok := parseCounter(fullMove, strict)
	if !ok {
		return Counters{}, 6, false
	}
	return Counters{HalfMoveClock: h, FullMoveNumber: f}, 0, true
}

func parseCounter(field string, strict bool) (int, bool) {
	if field == "" {
		return 0, false
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}
	if strict && len(field) > 1 && field[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		// Digit runs too long for an int still match the grammar.
		return int(^uint(0) >> 1), true
	}
	return n, true
}

// FENWithCounters returns the FEN string of the position using counters
// for the last two fields.
func (p *Position) FENWithCounters(counters Counters) string {
	var sb strings.Builder

	writePiecePlacement(&sb, &p.board)
	sb.WriteByte(' ')
	sb.WriteByte(p.turn.Letter())
	sb.WriteByte(' ')
	sb.WriteString(p.castleRights.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, p)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(counters.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(counters.FullMoveNumber))

	return sb.String()
}

// writePiecePlacement writes field 1, ranks 8 down to 1.
func writePiecePlacement(sb *strings.Builder, board *Board) {
	for row := BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < BoardSize; col++ {
			cp, ok := board.Get(row, col).Piece()
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cp.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes field 4: the file letter plus the rank implied by
// the side to move, or "-".
func writeEnPassant(sb *strings.Builder, p *Position) {
	if p.enPassant == noEnPassant {
		sb.WriteByte('-')
		return
	}
	sb.WriteByte(ColumnLetter(p.enPassant))
	sb.WriteByte(enPassantRank(p.turn))
}
