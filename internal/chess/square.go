package chess

import (
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// BoardSize is the number of rows and columns of the playing area.
const BoardSize = 8

// ParseSquare converts an algebraic square name such as "e4" to a (row,
// column) pair, row 0 being rank 1 and column 0 being file a. Anything but
// exactly one of a-h followed by one of 1-8 is an illegal argument; no case
// or whitespace normalization is done.
func ParseSquare(name string) (row, column int, err error) {
	if len(name) != 2 ||
		name[0] < 'a' || name[0] > 'h' ||
		name[1] < '1' || name[1] > '8' {
		return 0, 0, errors.IllegalArgument("ParseSquare", name)
	}
	return int(name[1] - '1'), int(name[0] - 'a'), nil
}

// SquareName converts a (row, column) pair back to its algebraic name.
func SquareName(row, column int) string {
	return string([]byte{columnSymbols[column], rowSymbols[row]})
}

// ColumnLetter returns the file letter of column, 'a' to 'h'.
func ColumnLetter(column int) byte {
	return columnSymbols[column]
}

// ParseColumn converts a file letter to a column index.
func ParseColumn(s string) (int, error) {
	if len(s) != 1 || s[0] < 'a' || s[0] > 'h' {
		return 0, errors.IllegalArgument("ParseColumn", s)
	}
	return int(s[0] - 'a'), nil
}
