package matching

import (
	"github.com/lgbarn/fenboard-go/internal/chess"
)

// PositionFilter combines material and position criteria. A position passes
// when it satisfies every material matcher and, if patterns were given, at
// least one of them.
type PositionFilter struct {
	material  []*MaterialMatcher
	positions *PositionMatcher
	negate    bool
}

// NewPositionFilter creates a filter that lets everything through.
func NewPositionFilter() *PositionFilter {
	return &PositionFilter{positions: NewPositionMatcher()}
}

// AddMaterial adds a material criterion.
func (f *PositionFilter) AddMaterial(mm *MaterialMatcher) {
	if mm.HasCriteria() {
		f.material = append(f.material, mm)
	}
}

// Positions returns the position matcher so patterns can be added to it.
func (f *PositionFilter) Positions() *PositionMatcher {
	return f.positions
}

// SetNegate inverts the result of Match.
func (f *PositionFilter) SetNegate(negate bool) {
	f.negate = negate
}

// HasCriteria reports whether any criterion was added.
func (f *PositionFilter) HasCriteria() bool {
	return len(f.material) > 0 || f.positions.PatternCount() > 0
}

// Match reports whether p passes the filter.
func (f *PositionFilter) Match(p *chess.Position) bool {
	return f.matchAll(p) != f.negate
}

func (f *PositionFilter) matchAll(p *chess.Position) bool {
	for _, mm := range f.material {
		if !mm.Match(p) {
			return false
		}
	}
	if f.positions.PatternCount() > 0 && f.positions.Match(p) == nil {
		return false
	}
	return true
}
