package entity

import "iter"

// Size is the number of rows and columns on the board.
const Size = 3

type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Cell - the cell value a player leaves on the board.
func (that Player) Cell() Cell {
	if that == PlayerO {
		return CellO
	}
	return CellX
}

// Opponent - the player who moves after this one.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Cell().String()
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Line [3]Position

// WinLines - the 8 canonical lines: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InBounds reports whether (row, col) addresses a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Board holds the 3x3 grid and the number of marked cells.
// Cells change only through Mark, which expects an empty cell.
type Board struct {
	cells  [Size][Size]Cell
	marked int
}

func NewBoard() *Board {
	return &Board{}
}

// IsAvailable - true if the cell is empty. Coordinates outside the board panic.
func (that *Board) IsAvailable(row, col int) bool {
	return that.cells[row][col] == EmptyCell
}

// Mark - puts the player's mark on an empty cell.
func (that *Board) Mark(row, col int, player Player) {
	that.cells[row][col] = player.Cell()
	that.marked++
}

func (that *Board) IsFull() bool {
	return that.marked == Size*Size
}

func (that *Board) IsEmpty() bool {
	return that.marked == 0
}

func (that *Board) MarkedCount() int {
	return that.marked
}

func (that *Board) Cell(row, col int) Cell {
	return that.cells[row][col]
}

// Cells - a copy of the grid.
func (that *Board) Cells() [Size][Size]Cell {
	return that.cells
}

// EmptyCells - yields the empty cells in row-major order.
func (that *Board) EmptyCells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := range Size {
			for col := range Size {
				if !that.IsAvailable(row, col) {
					continue
				}
				if !yield(Position{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// CheckWin - true if the player occupies every cell of at least one line.
func (that *Board) CheckWin(player Player) bool {
	_, ok := that.WinningLine(player)
	return ok
}

// WinningLine - the first line fully occupied by the player.
func (that *Board) WinningLine(player Player) (Line, bool) {
	mark := player.Cell()

	for _, line := range WinLines {
		a, b, c := line[0], line[1], line[2]
		if that.cells[a.Row][a.Col] == mark && that.cells[b.Row][b.Col] == mark && that.cells[c.Row][c.Col] == mark {
			return line, true
		}
	}

	return Line{}, false
}
