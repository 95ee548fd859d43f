package chess

import (
	"testing"

	"github.com/lgbarn/fenboard-go/internal/testutil"
)

func TestColoredPieceEncoding(t *testing.T) {
	letters := "KkQqRrBbNnPp"
	for code := 0; code < 12; code++ {
		cp := ColoredPiece(code)
		testutil.AssertEqual(t, cp.Type(), PieceType(code/2), "code %d type", code)
		testutil.AssertEqual(t, cp.Color(), Color(code%2), "code %d color", code)
		testutil.AssertEqual(t, MakeColoredPiece(cp.Type(), cp.Color()), cp, "code %d roundtrip", code)
		testutil.AssertEqual(t, cp.Letter(), letters[code], "code %d letter", code)

		back, ok := ColoredPieceFromLetter(letters[code])
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, back, cp)
	}

	if _, ok := ColoredPieceFromLetter('x'); ok {
		t.Error("ColoredPieceFromLetter('x') should fail")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("w")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c, White)

	c, err = ParseColor("b")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, c, Black)

	for _, bad := range []string{"", "W", "white", "x"} {
		_, err := ParseColor(bad)
		testutil.AssertIllegalArgument(t, err, "ParseColor", "ParseColor(%q)", bad)
	}
}

func TestParsePieceType(t *testing.T) {
	for i, s := range []string{"k", "q", "r", "b", "n", "p"} {
		pt, err := ParsePieceType(s)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, pt, PieceType(i))
		testutil.AssertEqual(t, pt.Letter(), s[0])
	}
	_, err := ParsePieceType("K")
	testutil.AssertIllegalArgument(t, err, "ParsePieceType")
}

func TestContentFromLetters(t *testing.T) {
	tests := []struct {
		piece, color string
		want         Content
		wantErr      bool
	}{
		{"-", "", Empty, false},
		{"p", "b", PieceContent(B(Pawn)), false},
		{"k", "w", PieceContent(W(King)), false},
		{"x", "w", Empty, true},
		{"p", "x", Empty, true},
		{"P", "w", Empty, true},
	}
	for _, tt := range tests {
		got, err := ContentFromLetters(tt.piece, tt.color)
		if tt.wantErr {
			testutil.AssertIllegalArgument(t, err, "ContentFromLetters", "(%q, %q)", tt.piece, tt.color)
			continue
		}
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want, "(%q, %q)", tt.piece, tt.color)
	}
}

func TestContent(t *testing.T) {
	testutil.AssertTrue(t, Empty.IsEmpty())
	testutil.AssertEqual(t, Empty.String(), "-")
	testutil.AssertEqual(t, OffBoard.String(), "off")

	_, ok := OffBoard.Piece()
	testutil.AssertFalse(t, ok)
	_, ok = Content(12).Piece()
	testutil.AssertFalse(t, ok)

	cp, ok := PieceContent(B(Knight)).Piece()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, cp, B(Knight))
	testutil.AssertEqual(t, PieceContent(B(Knight)).String(), "n")
}

func TestCastleSide(t *testing.T) {
	testutil.AssertEqual(t, Kingside.Column(), 7)
	testutil.AssertEqual(t, Queenside.Column(), 0)

	s, err := ParseCastleSide("q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s, Queenside)

	_, err = ParseCastleSide("K")
	testutil.AssertIllegalArgument(t, err, "ParseCastleSide")
}

func TestLegalityString(t *testing.T) {
	testutil.AssertEqual(t, LegalityUnknown.String(), "unknown")
	testutil.AssertEqual(t, Valid.String(), "valid")
	testutil.AssertEqual(t, Invalid.String(), "invalid")
}
