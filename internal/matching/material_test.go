package matching

import (
	"testing"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/testutil"
)

func mustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	p, _, err := chess.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return p
}

func TestNewMaterialMatcher(t *testing.T) {
	mm, err := NewMaterialMatcher("QRR:qr", false)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, mm.want[chess.W(chess.Queen)], 1)
	testutil.AssertEqual(t, mm.want[chess.W(chess.Rook)], 2)
	testutil.AssertEqual(t, mm.want[chess.B(chess.Queen)], 1)
	testutil.AssertEqual(t, mm.want[chess.B(chess.Rook)], 1)
	testutil.AssertEqual(t, mm.Pattern(), "QRR:qr")
	testutil.AssertTrue(t, mm.HasCriteria())
}

func TestNewMaterialMatcher_Invalid(t *testing.T) {
	for _, pattern := range []string{"Qx:q", "q:q", "Q:Q", "Q:q:k"} {
		_, err := NewMaterialMatcher(pattern, false)
		testutil.AssertErrorIs(t, err, errors.ErrIllegalArgument, "pattern %q", pattern)
	}
}

func TestMaterialMatcher_Match(t *testing.T) {
	const rookEnding = "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1"

	tests := []struct {
		name    string
		pattern string
		exact   bool
		fen     string
		want    bool
	}{
		{"initial minimal", "KQ:kq", false, chess.InitialFEN, true},
		{"initial full exact", "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp", true, chess.InitialFEN, true},
		{"initial exact missing pawns", "KQRRBBNN:kqrrbbnn", true, chess.InitialFEN, false},
		{"rook ending minimal", "KR:kr", false, rookEnding, true},
		{"rook ending exact", "KR:kr", true, rookEnding, true},
		{"rook ending wants queen", "KQ:k", false, rookEnding, false},
		{"white only", "KR", false, rookEnding, true},
		{"empty pattern exact on empty board", "", true, "8/8/8/8/8/8/8/8 w - - 0 1", true},
		{"empty pattern exact with pieces", "", true, rookEnding, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mm.Match(mustPosition(t, tt.fen)), tt.want)
		})
	}
}
