package chess

// Board dimensions. The 8x8 playing area is surrounded by a border of
// OffBoard cells: one column on each side and two rows above and below, so
// that every knight or sliding-piece offset from an interior cell lands
// inside the array and off-board detection is a single sentinel check.
const (
	BoardWidth  = 10
	BoardHeight = 12
	NumCells    = BoardWidth * BoardHeight

	firstIndex = 2*BoardWidth + 1 // a1
)

// Index returns the flat cell index of (row, column), both in [0,7].
func Index(row, column int) int {
	return firstIndex + BoardWidth*row + column
}

// RowColumn is the inverse of Index for interior cells.
func RowColumn(index int) (row, column int) {
	return (index - firstIndex) / BoardWidth, (index - firstIndex) % BoardWidth
}

// Board is a bordered grid of cells. It is a value type: assigning it copies
// the whole grid, so no caller can alias the cells of a Position.
type Board struct {
	cells [NumCells]Content
}

var (
	emptyBoard    Board
	startingBoard Board
)

func init() {
	for i := range emptyBoard.cells {
		emptyBoard.cells[i] = OffBoard
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			emptyBoard.cells[Index(row, col)] = Empty
		}
	}

	startingBoard = emptyBoard
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		startingBoard.cells[Index(0, col)] = PieceContent(W(backRank[col]))
		startingBoard.cells[Index(1, col)] = PieceContent(W(Pawn))
		startingBoard.cells[Index(6, col)] = PieceContent(B(Pawn))
		startingBoard.cells[Index(7, col)] = PieceContent(B(backRank[col]))
	}
}

// NewBoard creates an empty board.
func NewBoard() Board {
	return emptyBoard
}

// Get returns the content at (row, column).
func (b *Board) Get(row, column int) Content {
	return b.cells[Index(row, column)]
}

// Set places content at (row, column). Coordinates are validated by the
// caller; OffBoard is never written.
func (b *Board) Set(row, column int, c Content) {
	if c == OffBoard {
		return
	}
	b.cells[Index(row, column)] = c
}

// At returns the content of a flat cell index, border included. Use it to
// walk the grid by offsets; an OffBoard result means the walk left the board.
func (b *Board) At(index int) Content {
	if index < 0 || index >= NumCells {
		return OffBoard
	}
	return b.cells[index]
}

// Clear empties every interior cell.
func (b *Board) Clear() {
	*b = emptyBoard
}

// Reset sets up the standard starting arrangement.
func (b *Board) Reset() {
	*b = startingBoard
}

// Find returns the index of the first cell, scanning from a1 to h8, that
// holds cp.
func (b *Board) Find(cp ColoredPiece) (int, bool) {
	target := PieceContent(cp)
	for i := firstIndex; i < firstIndex+BoardWidth*BoardSize; i++ {
		if b.cells[i] == target {
			return i, true
		}
	}
	return -1, false
}
