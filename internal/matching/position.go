package matching

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/hashing"
)

// FENPattern represents a FEN pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	IsExact bool   // true for a complete FEN compared by hash
	Hash    uint64 // position hash for exact FEN matches
	fen     string // canonical FEN for exact matches
	ranks   []string
}

// PositionMatcher matches positions against exact FENs and placement
// patterns.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64][]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64][]*FENPattern),
	}
}

// AddFEN adds an exact FEN position to match. Move counters are ignored.
func (pm *PositionMatcher) AddFEN(fen string) error {
	p, _, err := chess.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	pattern := &FENPattern{
		Pattern: fen,
		IsExact: true,
		Hash:    hashing.GenerateZobristHash(p),
		fen:     p.FEN(),
	}
	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[pattern.Hash] = append(pm.exactHashes[pattern.Hash], pattern)
	return nil
}

// AddPattern adds a piece placement pattern with wildcards, rank 8 first.
// With includeInvert the colour-swapped, vertically mirrored pattern is
// added too.
func (pm *PositionMatcher) AddPattern(pattern string, includeInvert bool) error {
	ranks := strings.Split(pattern, "/")
	if len(ranks) == 0 || len(ranks) > chess.BoardSize {
		return errors.IllegalArgument("PositionMatcher.AddPattern", pattern)
	}
	pm.patterns = append(pm.patterns, &FENPattern{Pattern: pattern, ranks: ranks})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			ranks:   strings.Split(inverted, "/"),
		})
	}
	return nil
}

// LoadFromReader adds one entry per line of r. A line with six fields is an
// exact FEN; anything else is a placement pattern. Blank lines and lines
// starting with '#' are skipped.
func (pm *PositionMatcher) LoadFromReader(r io.Reader, includeInvert bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		if len(strings.Fields(line)) == 6 {
			err = pm.AddFEN(line)
		} else {
			err = pm.AddPattern(strings.Fields(line)[0], includeInvert)
		}
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}
	return scanner.Err()
}

// Match returns the first pattern p matches, or nil.
func (pm *PositionMatcher) Match(p *chess.Position) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	// First check exact hash matches (fast)
	if candidates, ok := pm.exactHashes[hashing.GenerateZobristHash(p)]; ok {
		fen := p.FEN()
		for _, pattern := range candidates {
			if pattern.fen == fen {
				return pattern
			}
		}
	}

	// Then check pattern matches
	ranks := boardToRanks(p)
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchPattern(ranks, pattern) {
			return pattern
		}
	}
	return nil
}

// matchPattern checks if board ranks match a FEN pattern with wildcards.
func matchPattern(boardRanks [chess.BoardSize]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}
	for i, patternRank := range pattern.ranks {
		if !matchRank(boardRanks[i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a position to rank strings (rank 8 first), '_'
// standing for an empty square.
func boardToRanks(p *chess.Position) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string
	board := p.Board()

	for i := 0; i < chess.BoardSize; i++ {
		row := chess.BoardSize - 1 - i
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			if cp, ok := board.Get(row, col).Piece(); ok {
				sb.WriteByte(cp.Letter())
			} else {
				sb.WriteByte('_')
			}
		}
		ranks[i] = sb.String()
	}

	return ranks
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match, '_' included
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours and reverses the rank order of a pattern.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
