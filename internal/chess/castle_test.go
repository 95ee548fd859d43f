package chess

import (
	"testing"

	"github.com/lgbarn/fenboard-go/internal/testutil"
)

func TestCastleRightsString(t *testing.T) {
	tests := []struct {
		name   string
		rights CastleRights
		want   string
	}{
		{"none", CastleRights{}, "-"},
		{"all", allCastleRights, "KQkq"},
		{"white kingside", CastleRights{1 << 7, 0}, "K"},
		{"black queenside", CastleRights{0, 1 << 0}, "q"},
		{"mixed", CastleRights{1 << 0, 1 << 7}, "Qk"},
		{"non-standard column ignored", CastleRights{1 << 3, 0}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.rights.String(), tt.want)
		})
	}
}

func TestParseCastleRights(t *testing.T) {
	tests := []struct {
		text   string
		strict bool
		want   string
		ok     bool
	}{
		{"-", true, "-", true},
		{"-", false, "-", true},
		{"KQkq", true, "KQkq", true},
		{"Kq", true, "Kq", true},
		{"k", true, "k", true},
		{"qk", true, "", false},
		{"qk", false, "kq", true},
		{"KK", true, "", false},
		{"KKqq", false, "Kq", true},
		{"kqKQ", false, "KQkq", true},
		{"KQx", false, "", false},
		{"KQx", true, "", false},
		{"-K", false, "", false},
		{"A", false, "", false},
		{"", false, "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCastleRights(tt.text, tt.strict)
		testutil.AssertEqual(t, ok, tt.ok, "ParseCastleRights(%q, %v) ok", tt.text, tt.strict)
		if ok {
			testutil.AssertEqual(t, got.String(), tt.want, "ParseCastleRights(%q, %v)", tt.text, tt.strict)
		}
	}
}

func TestCastleRightsSetHas(t *testing.T) {
	var r CastleRights
	for _, c := range []Color{White, Black} {
		for col := 0; col < BoardSize; col++ {
			r.Set(c, col, true)
			testutil.AssertTrue(t, r.Has(c, col))
			r.Set(c, col, true)
			testutil.AssertTrue(t, r.Has(c, col), "set is idempotent")
			r.Set(c, col, false)
			testutil.AssertFalse(t, r.Has(c, col))
		}
	}
	testutil.AssertEqual(t, r, CastleRights{})
}
