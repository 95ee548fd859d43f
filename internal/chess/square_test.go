package chess

import (
	"testing"

	"github.com/lgbarn/fenboard-go/internal/testutil"
)

func TestParseSquare(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			name := SquareName(row, col)
			r, c, err := ParseSquare(name)
			testutil.AssertNoError(t, err, name)
			testutil.AssertEqual(t, [2]int{r, c}, [2]int{row, col}, name)
		}
	}

	r, c, err := ParseSquare("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, [2]int{r, c}, [2]int{3, 4})
}

func TestParseSquareRejects(t *testing.T) {
	for _, bad := range []string{"", "e", "e44", "E4", "i1", "a0", "a9", " e4", "e4 ", "4e"} {
		_, _, err := ParseSquare(bad)
		testutil.AssertIllegalArgument(t, err, "ParseSquare", "ParseSquare(%q)", bad)
	}
}

func TestParseColumn(t *testing.T) {
	col, err := ParseColumn("h")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, col, 7)
	testutil.AssertEqual(t, ColumnLetter(col), byte('h'))

	_, err = ParseColumn("i")
	testutil.AssertIllegalArgument(t, err, "ParseColumn")
}
