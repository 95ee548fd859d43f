package chess

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// noEnPassant marks the absence of an en-passant file.
const noEnPassant = -1

// Position represents a chess position: the 64 squares plus who is about to
// play, castle rights and en-passant rights. It owns its board exclusively;
// accessors return values, never references into the grid.
//
// A Position is not safe for concurrent mutation.
type Position struct {
	board        Board
	turn         Color
	castleRights CastleRights
	enPassant    int // file index, or noEnPassant

	// Derived state. legality is reset to LegalityUnknown by every mutation
	// and never recomputed here; king caches the index of each king and is
	// only refreshed by Reset, Clear and FEN decoding.
	legality Legality
	king     [2]int
}

// NewPosition creates a position with the standard starting arrangement.
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// NewEmptyPosition creates a position with an empty board.
func NewEmptyPosition() *Position {
	p := &Position{}
	p.Clear()
	return p
}

// Reset sets the starting arrangement, all castle rights, no en-passant.
// The starting position is known to be legal.
func (p *Position) Reset() {
	p.board.Reset()
	p.turn = White
	p.castleRights = allCastleRights
	p.enPassant = noEnPassant
	p.legality = Valid
	p.king = [2]int{Index(0, 4), Index(7, 4)}
}

// Clear empties the board and drops every right. An empty board counts as
// Valid under this model's narrow definition: king presence is not checked.
func (p *Position) Clear() {
	p.board.Clear()
	p.turn = White
	p.castleRights = CastleRights{}
	p.enPassant = noEnPassant
	p.legality = Valid
	p.king = [2]int{-1, -1}
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// Board returns a copy of the board.
func (p *Position) Board() Board {
	return p.board
}

// Square returns the content of the named square, e.g. "e4".
func (p *Position) Square(name string) (Content, error) {
	row, col, err := ParseSquare(name)
	if err != nil {
		return Empty, errors.IllegalArgument("Position.Square", name)
	}
	return p.board.Get(row, col), nil
}

// SetSquare sets the content of the named square. content must be Empty or
// a valid coloured piece.
func (p *Position) SetSquare(name string, content Content) error {
	row, col, err := ParseSquare(name)
	if err != nil {
		return errors.IllegalArgument("Position.SetSquare", name)
	}
	if !content.valid() {
		return errors.IllegalArgument("Position.SetSquare", content.String())
	}
	p.board.Set(row, col, content)
	p.legality = LegalityUnknown
	return nil
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.turn
}

// SetTurn sets the side to move.
func (p *Position) SetTurn(color Color) error {
	if !color.Valid() {
		return errors.IllegalArgument("Position.SetTurn", "")
	}
	p.turn = color
	p.legality = LegalityUnknown
	return nil
}

// CastleRight reports whether color may castle on side.
func (p *Position) CastleRight(color Color, side CastleSide) (bool, error) {
	if !color.Valid() || !side.Valid() {
		return false, errors.IllegalArgument("Position.CastleRight", "")
	}
	return p.castleRights.Has(color, side.Column()), nil
}

// SetCastleRight grants or revokes the right of color to castle on side.
func (p *Position) SetCastleRight(color Color, side CastleSide, value bool) error {
	if !color.Valid() || !side.Valid() {
		return errors.IllegalArgument("Position.SetCastleRight", "")
	}
	p.castleRights.Set(color, side.Column(), value)
	p.legality = LegalityUnknown
	return nil
}

// CastleRights returns a copy of the castle-rights masks.
func (p *Position) CastleRights() CastleRights {
	return p.castleRights
}

// EnPassant returns the file (0-7) on which an en-passant capture is
// allowed, and false if there is none. The rank is implied by the turn.
func (p *Position) EnPassant() (int, bool) {
	if p.enPassant == noEnPassant {
		return 0, false
	}
	return p.enPassant, true
}

// EnPassantString returns the en-passant file letter, or "-".
func (p *Position) EnPassantString() string {
	if p.enPassant == noEnPassant {
		return "-"
	}
	return string(ColumnLetter(p.enPassant))
}

// SetEnPassant sets the en-passant file, in [0,7].
func (p *Position) SetEnPassant(column int) error {
	if column < 0 || column >= BoardSize {
		return errors.IllegalArgument("Position.SetEnPassant", "")
	}
	p.enPassant = column
	p.legality = LegalityUnknown
	return nil
}

// ClearEnPassant removes the en-passant right.
func (p *Position) ClearEnPassant() {
	p.enPassant = noEnPassant
	p.legality = LegalityUnknown
}

// SetEnPassantString accepts a file letter or "-".
func (p *Position) SetEnPassantString(value string) error {
	if value == "-" {
		p.ClearEnPassant()
		return nil
	}
	col, err := ParseColumn(value)
	if err != nil {
		return errors.IllegalArgument("Position.SetEnPassant", value)
	}
	return p.SetEnPassant(col)
}

// Legality returns the cached legality status.
func (p *Position) Legality() Legality {
	return p.legality
}

// SetLegality stores a legality status computed by an external checker.
func (p *Position) SetLegality(l Legality) {
	p.legality = l
}

// KingSquare returns the cached cell index of color's king. The cache is
// accurate as of the last Reset, Clear or FEN decode; SetSquare does not
// maintain it.
func (p *Position) KingSquare(color Color) (int, bool) {
	if !color.Valid() || p.king[color] < 0 {
		return -1, false
	}
	return p.king[color], true
}

// refreshKings recomputes the king cache from the board.
func (p *Position) refreshKings() {
	for _, c := range []Color{White, Black} {
		p.king[c], _ = p.board.Find(MakeColoredPiece(King, c))
	}
}

const diagramBorder = "+---+---+---+---+---+---+---+---+\n"

// ASCII returns a multi-line, fixed-width drawing of the position followed
// by a line with the turn letter, castle rights and en-passant file.
func (p *Position) ASCII() string {
	var sb strings.Builder
	sb.WriteString(diagramBorder)
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			sb.WriteString("| ")
			if cp, ok := p.board.Get(row, col).Piece(); ok {
				sb.WriteByte(cp.Letter())
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		sb.WriteString(diagramBorder)
	}
	sb.WriteByte(p.turn.Letter())
	sb.WriteByte(' ')
	sb.WriteString(p.castleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantString())
	return sb.String()
}
