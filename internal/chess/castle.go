package chess

import (
	"strings"
)

// CastleRights holds, per colour, a bitmask over board columns: bit c set
// for a colour means that colour may in principle castle toward column c.
// The codec only uses columns 0 and 7; other bits are representable for
// non-standard rook files.
type CastleRights [2]uint8

// Has reports whether color may castle toward column.
func (r CastleRights) Has(color Color, column int) bool {
	return r[color]&(1<<uint(column)) != 0
}

// Set grants or revokes the right of color to castle toward column.
func (r *CastleRights) Set(color Color, column int, value bool) {
	if value {
		r[color] |= 1 << uint(column)
	} else {
		r[color] &^= 1 << uint(column)
	}
}

// allCastleRights is the starting-position value: columns a and h for both.
var allCastleRights = CastleRights{1<<0 | 1<<7, 1<<0 | 1<<7}

// String returns the FEN encoding, e.g. "KQkq", or "-" when nothing is set.
func (r CastleRights) String() string {
	var sb strings.Builder
	if r.Has(White, 7) {
		sb.WriteByte('K')
	}
	if r.Has(White, 0) {
		sb.WriteByte('Q')
	}
	if r.Has(Black, 7) {
		sb.WriteByte('k')
	}
	if r.Has(Black, 0) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseCastleRights decodes a FEN castle-rights field. "-" means no rights.
// In strict mode the text must be K?Q?k?q? in that order; otherwise any
// non-empty run of the letters KQkq is accepted, repeats included.
func ParseCastleRights(text string, strict bool) (CastleRights, bool) {
	var r CastleRights
	if text == "-" {
		return r, true
	}
	if text == "" {
		return r, false
	}
	if strict {
		return parseStrictCastleRights(text)
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'K':
			r.Set(White, 7, true)
		case 'Q':
			r.Set(White, 0, true)
		case 'k':
			r.Set(Black, 7, true)
		case 'q':
			r.Set(Black, 0, true)
		default:
			return CastleRights{}, false
		}
	}
	return r, true
}

// parseStrictCastleRights matches K?Q?k?q? by walking the letters in order.
func parseStrictCastleRights(text string) (CastleRights, bool) {
	var r CastleRights
	order := []struct {
		letter byte
		color  Color
		column int
	}{
		{'K', White, 7},
		{'Q', White, 0},
		{'k', Black, 7},
		{'q', Black, 0},
	}
	i := 0
	for _, o := range order {
		if i < len(text) && text[i] == o.letter {
			r.Set(o.color, o.column, true)
			i++
		}
	}
	if i != len(text) {
		return CastleRights{}, false
	}
	return r, true
}
