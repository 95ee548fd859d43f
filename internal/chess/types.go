// Package chess provides the position model and its FEN codec.
package chess

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// Color represents the colour of a piece or of the side to move.
// Its value doubles as an array index.
type Color int

const (
	White Color = iota
	Black
)

// Symbol strings; the index into each is the corresponding enum value.
const (
	colorSymbols        = "wb"
	pieceSymbols        = "kqrbnp"
	coloredPieceSymbols = "KkQqRrBbNnPp"
	rowSymbols          = "12345678"
	columnSymbols       = "abcdefgh"
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Letter returns the FEN letter of the colour, 'w' or 'b'.
func (c Color) Letter() byte {
	return colorSymbols[c]
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is White or Black.
func (c Color) Valid() bool {
	return c == White || c == Black
}

// ParseColor converts "w" or "b" to a Color.
func ParseColor(s string) (Color, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(colorSymbols, s[0]); i >= 0 {
			return Color(i), nil
		}
	}
	return White, errors.IllegalArgument("ParseColor", s)
}

// PieceType represents a chess piece regardless of colour.
type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the name of the piece type.
func (p PieceType) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if p.Valid() {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the lowercase FEN letter of the piece type.
func (p PieceType) Letter() byte {
	if p.Valid() {
		return pieceSymbols[p]
	}
	return '?'
}

// Valid reports whether p is one of the six piece types.
func (p PieceType) Valid() bool {
	return p >= King && p <= Pawn
}

// ParsePieceType converts a lowercase piece letter to a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(pieceSymbols, s[0]); i >= 0 {
			return PieceType(i), nil
		}
	}
	return King, errors.IllegalArgument("ParsePieceType", s)
}

// ColoredPiece combines a piece type and a colour into a single code in [0,11]:
// code = pieceType*2 + color.
type ColoredPiece int

// MakeColoredPiece creates a coloured piece code.
func MakeColoredPiece(piece PieceType, color Color) ColoredPiece {
	return ColoredPiece(int(piece)*2 + int(color))
}

// W creates a white piece.
func W(piece PieceType) ColoredPiece {
	return MakeColoredPiece(piece, White)
}

// B creates a black piece.
func B(piece PieceType) ColoredPiece {
	return MakeColoredPiece(piece, Black)
}

// Type extracts the piece type.
func (cp ColoredPiece) Type() PieceType {
	return PieceType(cp / 2)
}

// Color extracts the colour.
func (cp ColoredPiece) Color() Color {
	return Color(cp % 2)
}

// Letter returns the FEN letter: uppercase for white, lowercase for black.
func (cp ColoredPiece) Letter() byte {
	return coloredPieceSymbols[cp]
}

// Valid reports whether cp is in [0,11].
func (cp ColoredPiece) Valid() bool {
	return cp >= 0 && int(cp) < len(coloredPieceSymbols)
}

// ColoredPieceFromLetter converts a FEN piece letter to a coloured piece.
func ColoredPieceFromLetter(c byte) (ColoredPiece, bool) {
	i := strings.IndexByte(coloredPieceSymbols, c)
	if i < 0 {
		return 0, false
	}
	return ColoredPiece(i), true
}

// Content is the content of one board cell: OffBoard, Empty, or a
// ColoredPiece code. OffBoard only ever appears in the board border.
type Content int8

const (
	OffBoard Content = -2 // Border cell, never produced by a public mutation
	Empty    Content = -1
)

// PieceContent wraps a coloured piece as cell content.
func PieceContent(cp ColoredPiece) Content {
	return Content(cp)
}

// IsEmpty reports whether the cell holds no piece.
func (c Content) IsEmpty() bool {
	return c == Empty
}

// Piece returns the coloured piece in the cell, if any.
func (c Content) Piece() (ColoredPiece, bool) {
	if c < 0 || !ColoredPiece(c).Valid() {
		return 0, false
	}
	return ColoredPiece(c), true
}

// String returns "-" for an empty cell, the FEN letter for a piece.
func (c Content) String() string {
	if cp, ok := c.Piece(); ok {
		return string(cp.Letter())
	}
	if c == OffBoard {
		return "off"
	}
	return "-"
}

// valid reports whether c may be written to an interior cell.
func (c Content) valid() bool {
	_, ok := c.Piece()
	return c == Empty || ok
}

// ContentFromLetters builds cell content from its external shape: piece "-"
// (with any colour) means empty, otherwise a lowercase piece letter and a
// colour letter, e.g. ("p", "b").
func ContentFromLetters(piece, color string) (Content, error) {
	if piece == "-" {
		return Empty, nil
	}
	pt, err := ParsePieceType(piece)
	if err != nil {
		return Empty, errors.IllegalArgument("ContentFromLetters", piece)
	}
	c, err := ParseColor(color)
	if err != nil {
		return Empty, errors.IllegalArgument("ContentFromLetters", color)
	}
	return PieceContent(MakeColoredPiece(pt, c)), nil
}

// Legality is the cached legality status of a position.
type Legality int

const (
	LegalityUnknown Legality = iota
	Valid
	Invalid
)

// String returns the name of the legality status.
func (l Legality) String() string {
	switch l {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// CastleSide selects the wing toward which a king castles.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// Column returns the board column the side refers to: 7 (h) or 0 (a).
func (s CastleSide) Column() int {
	if s == Queenside {
		return 0
	}
	return 7
}

// Valid reports whether s is Kingside or Queenside.
func (s CastleSide) Valid() bool {
	return s == Kingside || s == Queenside
}

// ParseCastleSide converts "k" or "q" to a CastleSide.
func ParseCastleSide(s string) (CastleSide, error) {
	switch s {
	case "k":
		return Kingside, nil
	case "q":
		return Queenside, nil
	}
	return Kingside, errors.IllegalArgument("ParseCastleSide", s)
}
