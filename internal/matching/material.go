// Package matching provides position filtering by material and by board
// patterns.
package matching

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// pieceCounts is indexed by chess.ColoredPiece.
type pieceCounts [12]int

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       pieceCounts
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
//
// With exact set, pieces not named in the pattern must be absent.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	white, black, _ := strings.Cut(pattern, ":")
	if err := mm.parseSide(white, chess.White, pattern); err != nil {
		return err
	}
	return mm.parseSide(black, chess.Black, pattern)
}

func (mm *MaterialMatcher) parseSide(s string, color chess.Color, pattern string) error {
	for i := 0; i < len(s); i++ {
		cp, ok := chess.ColoredPieceFromLetter(s[i])
		if !ok || cp.Color() != color {
			return errors.IllegalArgument("NewMaterialMatcher", pattern)
		}
		mm.want[cp]++
	}
	return nil
}

// Match reports whether p carries the material of the pattern.
func (mm *MaterialMatcher) Match(p *chess.Position) bool {
	have := countPieces(p)
	for cp := range mm.want {
		switch {
		case mm.exactMatch && have[cp] != mm.want[cp]:
			return false
		case have[cp] < mm.want[cp]:
			return false
		}
	}
	return true
}

func countPieces(p *chess.Position) pieceCounts {
	var counts pieceCounts
	board := p.Board()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if cp, ok := board.Get(row, col).Piece(); ok {
				counts[cp]++
			}
		}
	}
	return counts
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
