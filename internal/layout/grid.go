// Package layout maps pixels to board cells and fits the board into a drawing surface.
package layout

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Grid splits a logical surface of Width x Height pixels into entity.Size x entity.Size cells.
type Grid struct {
	Width  float64
	Height float64
}

func NewGrid(width, height int) Grid {
	return Grid{Width: float64(width), Height: float64(height)}
}

func (that Grid) CellWidth() float64 {
	return that.Width / entity.Size
}

func (that Grid) CellHeight() float64 {
	return that.Height / entity.Size
}

// CellAt - the cell under a logical pixel: floor(pixel / cell size).
// ok is false when the pixel is outside the surface.
func (that Grid) CellAt(x, y float64) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= that.Width || y >= that.Height {
		return 0, 0, false
	}

	row = int(math.Floor(y / that.CellHeight()))
	col = int(math.Floor(x / that.CellWidth()))

	return row, col, entity.InBounds(row, col)
}

// CellOrigin - the top-left pixel of a cell.
func (that Grid) CellOrigin(row, col int) (x, y float64) {
	return float64(col) * that.CellWidth(), float64(row) * that.CellHeight()
}

func (that Grid) CellCenter(row, col int) (x, y float64) {
	x, y = that.CellOrigin(row, col)
	return x + that.CellWidth()/2, y + that.CellHeight()/2
}
