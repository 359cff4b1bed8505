package entity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(t *testing.T, moves map[Position]Player) *Board {
	t.Helper()

	board := NewBoard()
	for pos, player := range moves {
		require.True(t, board.IsAvailable(pos.Row, pos.Col))
		board.Mark(pos.Row, pos.Col, player)
	}

	return board
}

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: every cell is empty and nothing is counted
	assert.True(t, board.IsEmpty())
	assert.False(t, board.IsFull())
	assert.Equal(t, 0, board.MarkedCount())
	assert.Equal(t, [Size][Size]Cell{}, board.Cells())
}

func TestBoard_Mark(t *testing.T) {
	t.Run("Marks the cell and counts it", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X marks the centre
		board.Mark(1, 1, PlayerX)

		// Then: the centre holds X and is no longer available
		assert.Equal(t, CellX, board.Cell(1, 1))
		assert.False(t, board.IsAvailable(1, 1))
		assert.True(t, board.IsAvailable(0, 0))
		assert.Equal(t, 1, board.MarkedCount())
		assert.False(t, board.IsEmpty())
	})

	t.Run("Full after nine marks", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		player := PlayerX

		// When: every cell is marked
		for row := range Size {
			for col := range Size {
				board.Mark(row, col, player)
				player = player.Opponent()
			}
		}

		// Then: the board is full
		assert.True(t, board.IsFull())
		assert.Equal(t, Size*Size, board.MarkedCount())
	})

	t.Run("Out of range panics", func(t *testing.T) {
		board := NewBoard()

		assert.Panics(t, func() { board.IsAvailable(3, 0) })
		assert.Panics(t, func() { board.IsAvailable(0, -1) })
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Row-major order", func(t *testing.T) {
		// Given: a board with the corners taken
		board := boardFrom(t, map[Position]Player{
			{0, 0}: PlayerX,
			{0, 2}: PlayerO,
			{2, 0}: PlayerX,
			{2, 2}: PlayerO,
		})

		// When: collecting the empty cells
		cells := slices.Collect(board.EmptyCells())

		// Then: the remaining cells come back row by row
		expected := []Position{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}
		require.Equal(t, expected, cells)
	})

	t.Run("Fresh sequence on every call", func(t *testing.T) {
		// Given: an empty board and a sequence taken before any move
		board := NewBoard()
		before := board.EmptyCells()

		// When: a cell is marked after the sequence was created
		board.Mark(0, 0, PlayerX)

		// Then: a new call reflects the move
		assert.Len(t, slices.Collect(board.EmptyCells()), 8)
		assert.Len(t, slices.Collect(before), 8)
	})

	t.Run("Stops early", func(t *testing.T) {
		board := NewBoard()

		var seen []Position
		for pos := range board.EmptyCells() {
			seen = append(seen, pos)
			if len(seen) == 2 {
				break
			}
		}

		assert.Equal(t, []Position{{0, 0}, {0, 1}}, seen)
	})

	t.Run("Nothing on a full board", func(t *testing.T) {
		board := NewBoard()
		for row := range Size {
			for col := range Size {
				board.Mark(row, col, PlayerO)
			}
		}

		assert.Empty(t, slices.Collect(board.EmptyCells()))
	})
}

func TestBoard_CheckWin(t *testing.T) {
	for i, line := range WinLines {
		// Given: a board where X occupies exactly one canonical line
		board := NewBoard()
		for _, pos := range line {
			board.Mark(pos.Row, pos.Col, PlayerX)
		}

		// Then: X wins on that line and O does not
		assert.True(t, board.CheckWin(PlayerX), "line %d", i)
		assert.False(t, board.CheckWin(PlayerO), "line %d", i)

		winning, ok := board.WinningLine(PlayerX)
		require.True(t, ok)
		assert.Equal(t, line, winning)
	}

	t.Run("Empty board has no winner", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.CheckWin(PlayerX))
		assert.False(t, board.CheckWin(PlayerO))
	})

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: a top row split between the players
		board := boardFrom(t, map[Position]Player{
			{0, 0}: PlayerX,
			{0, 1}: PlayerO,
			{0, 2}: PlayerX,
		})

		// Then: nobody wins
		assert.False(t, board.CheckWin(PlayerX))
		assert.False(t, board.CheckWin(PlayerO))
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a full board where no line is complete
		board := boardFrom(t, map[Position]Player{
			{0, 0}: PlayerX, {0, 1}: PlayerO, {0, 2}: PlayerX,
			{1, 0}: PlayerX, {1, 1}: PlayerO, {1, 2}: PlayerO,
			{2, 0}: PlayerO, {2, 1}: PlayerX, {2, 2}: PlayerX,
		})

		// Then: it is full and nobody wins
		assert.True(t, board.IsFull())
		assert.False(t, board.CheckWin(PlayerX))
		assert.False(t, board.CheckWin(PlayerO))
	})

	t.Run("Full board completed on the anti-diagonal", func(t *testing.T) {
		// Given: a full board where X holds (0,2), (1,1) and (2,0)
		board := boardFrom(t, map[Position]Player{
			{0, 0}: PlayerX, {0, 1}: PlayerO, {0, 2}: PlayerX,
			{1, 0}: PlayerO, {1, 1}: PlayerX, {1, 2}: PlayerX,
			{2, 0}: PlayerX, {2, 1}: PlayerO, {2, 2}: PlayerO,
		})

		// Then: the full board still counts as a win for X
		assert.True(t, board.IsFull())
		assert.True(t, board.CheckWin(PlayerX))

		line, ok := board.WinningLine(PlayerX)
		require.True(t, ok)
		assert.Equal(t, WinLines[7], line)
	})
}

func TestBoard_CheckWin_AllBoards(t *testing.T) {
	const boards = 19683 // 3^9

	for code := range boards {
		// Given: the board encoded in base 3, one digit per cell
		board := NewBoard()
		var cells [Size][Size]Cell

		n := code
		for i := range Size * Size {
			row, col := i/Size, i%Size
			switch n % 3 {
			case 1:
				board.Mark(row, col, PlayerX)
			case 2:
				board.Mark(row, col, PlayerO)
			}
			cells[row][col] = board.Cell(row, col)
			n /= 3
		}

		// Then: CheckWin agrees with scanning rows, columns and diagonals
		for _, player := range []Player{PlayerX, PlayerO} {
			require.Equal(t, hasLine(cells, player.Cell()), board.CheckWin(player), "board %d, player %s", code, player)
		}
	}
}

func hasLine(cells [Size][Size]Cell, mark Cell) bool {
	diag, anti := true, true

	for i := range Size {
		row, col := true, true
		for j := range Size {
			row = row && cells[i][j] == mark
			col = col && cells[j][i] == mark
		}
		if row || col {
			return true
		}

		diag = diag && cells[i][i] == mark
		anti = anti && cells[i][Size-1-i] == mark
	}

	return diag || anti
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, CellX, PlayerX.Cell())
	assert.Equal(t, CellO, PlayerO.Cell())
	assert.Equal(t, "X", PlayerX.String())
	assert.Equal(t, "O", PlayerO.String())
	assert.Equal(t, " ", EmptyCell.String())
}
