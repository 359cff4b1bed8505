package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_CellAt(t *testing.T) {
	grid := NewGrid(600, 600)

	tests := []struct {
		name     string
		x, y     float64
		row, col int
		ok       bool
	}{
		{name: "Top-left corner", x: 0, y: 0, row: 0, col: 0, ok: true},
		{name: "Click in the middle of the bottom row", x: 250, y: 450, row: 2, col: 1, ok: true},
		{name: "Last pixel", x: 599, y: 599, row: 2, col: 2, ok: true},
		{name: "Cell border belongs to the next cell", x: 200, y: 399.9, row: 1, col: 1, ok: true},
		{name: "Right edge is outside", x: 600, y: 10, ok: false},
		{name: "Bottom edge is outside", x: 10, y: 600, ok: false},
		{name: "Negative is outside", x: -0.5, y: 10, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := grid.CellAt(tt.x, tt.y)

			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestGrid_Cells(t *testing.T) {
	grid := NewGrid(600, 300)

	assert.InDelta(t, 200.0, grid.CellWidth(), 1e-9)
	assert.InDelta(t, 100.0, grid.CellHeight(), 1e-9)

	x, y := grid.CellOrigin(2, 1)
	assert.InDelta(t, 200.0, x, 1e-9)
	assert.InDelta(t, 200.0, y, 1e-9)

	x, y = grid.CellCenter(0, 2)
	assert.InDelta(t, 500.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
}

func TestFit(t *testing.T) {
	t.Run("Wide surface", func(t *testing.T) {
		// Given: an 80x46 surface (an 80x23 terminal area of half-blocks)
		viewport := Fit(80, 46)

		// Then: the square is centred horizontally
		assert.Equal(t, Viewport{X: 17, Y: 0, Size: 46}, viewport)
	})

	t.Run("Tall surface keeps an even offset", func(t *testing.T) {
		viewport := Fit(20, 27)

		assert.Equal(t, 20, viewport.Size)
		assert.Equal(t, 0, viewport.X)
		assert.Equal(t, 2, viewport.Y)
	})

	t.Run("Degenerate surface", func(t *testing.T) {
		assert.True(t, Fit(0, 10).Empty())
		assert.True(t, Fit(10, -1).Empty())
	})
}

func TestViewport_ToLogical(t *testing.T) {
	grid := NewGrid(600, 600)
	viewport := Viewport{X: 10, Y: 4, Size: 60}

	t.Run("Contains", func(t *testing.T) {
		assert.True(t, viewport.Contains(10, 4))
		assert.True(t, viewport.Contains(69, 63))
		assert.False(t, viewport.Contains(9, 4))
		assert.False(t, viewport.Contains(70, 4))
		assert.False(t, viewport.Contains(10, 64))
	})

	t.Run("Corners map onto the logical surface", func(t *testing.T) {
		x, y := viewport.ToLogical(10, 4, grid)
		assert.InDelta(t, 5.0, x, 1e-9)
		assert.InDelta(t, 5.0, y, 1e-9)

		x, y = viewport.ToLogical(69, 63, grid)
		assert.InDelta(t, 595.0, x, 1e-9)
		assert.InDelta(t, 595.0, y, 1e-9)
	})

	t.Run("Surface pixel to cell", func(t *testing.T) {
		// 20 surface pixels per cell: pixel 35 is the second column, pixel 50 the third row
		row, col, ok := grid.CellAt(viewport.ToLogical(35, 50, grid))

		require.True(t, ok)
		assert.Equal(t, 2, row)
		assert.Equal(t, 1, col)
	})
}
