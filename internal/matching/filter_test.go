package matching

import (
	"testing"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/testutil"
)

func TestPositionFilter(t *testing.T) {
	initial := mustPosition(t, chess.InitialFEN)
	ending := mustPosition(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")

	f := NewPositionFilter()
	testutil.AssertFalse(t, f.HasCriteria())
	testutil.AssertTrue(t, f.Match(initial), "an empty filter lets everything through")

	mm, err := NewMaterialMatcher("KR:kr", true)
	testutil.AssertNoError(t, err)
	f.AddMaterial(mm)
	testutil.AssertTrue(t, f.HasCriteria())
	testutil.AssertTrue(t, f.Match(ending))
	testutil.AssertFalse(t, f.Match(initial))

	testutil.AssertNoError(t, f.Positions().AddPattern("4k3", false))
	testutil.AssertTrue(t, f.Match(ending))

	f.SetNegate(true)
	testutil.AssertFalse(t, f.Match(ending))
	testutil.AssertTrue(t, f.Match(initial))
}

func TestPositionFilter_PatternsAreAlternatives(t *testing.T) {
	f := NewPositionFilter()
	testutil.AssertNoError(t, f.Positions().AddPattern("4k3", false))
	testutil.AssertNoError(t, f.Positions().AddFEN(chess.InitialFEN))

	testutil.AssertTrue(t, f.Match(mustPosition(t, chess.InitialFEN)))
	testutil.AssertTrue(t, f.Match(mustPosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")))
	testutil.AssertFalse(t, f.Match(mustPosition(t, "3k4/8/8/8/8/8/8/4K3 w - - 0 1")))
}

func TestPositionFilter_IgnoresEmptyMaterial(t *testing.T) {
	mm, err := NewMaterialMatcher("", false)
	testutil.AssertNoError(t, err)

	f := NewPositionFilter()
	f.AddMaterial(mm)
	testutil.AssertFalse(t, f.HasCriteria())
}
