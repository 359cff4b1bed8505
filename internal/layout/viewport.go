package layout

// Viewport is the square area of a surface the board is drawn into, in surface pixels.
type Viewport struct {
	X    int
	Y    int
	Size int
}

// Fit - the largest square centred in a width x height surface.
// Y is kept even so that a terminal row always covers two whole pixel rows.
func Fit(width, height int) Viewport {
	size := min(width, height)
	if size <= 0 {
		return Viewport{}
	}

	return Viewport{
		X:    (width - size) / 2,
		Y:    ((height - size) / 2) &^ 1,
		Size: size,
	}
}

func (that Viewport) Empty() bool {
	return that.Size <= 0
}

func (that Viewport) Contains(px, py int) bool {
	return px >= that.X && py >= that.Y && px < that.X+that.Size && py < that.Y+that.Size
}

// Scale - surface pixels per logical pixel along each axis.
func (that Viewport) Scale(grid Grid) (sx, sy float64) {
	return float64(that.Size) / grid.Width, float64(that.Size) / grid.Height
}

// ToLogical - converts the centre of a surface pixel into grid coordinates.
func (that Viewport) ToLogical(px, py int, grid Grid) (x, y float64) {
	sx, sy := that.Scale(grid)
	return (float64(px-that.X) + 0.5) / sx, (float64(py-that.Y) + 0.5) / sy
}
