// Package render paints the game onto a gg drawing context.
//
// Drawing is a pure read of the game state: callers own the context, choose its
// size and transform, and decide where the pixels go (terminal, PNG file, ...).
package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
)

// View is the read-only part of the game the renderer needs.
type View interface {
	Cells() [entity.Size][entity.Size]entity.Cell
	WinningLine() (entity.Line, bool)
}

type Theme struct {
	Background gg.RGBA
	Line       gg.RGBA
	PlayerX    gg.RGBA
	PlayerO    gg.RGBA
	Highlight  gg.RGBA

	LineWidth     float64
	FigureWidth   float64
	FigurePadding float64
}

// DefaultTheme - the classic teal board.
func DefaultTheme() Theme {
	return Theme{
		Background:    gg.Hex("#1CAA9C"),
		Line:          gg.Hex("#179187"),
		PlayerX:       gg.Hex("#545454"),
		PlayerO:       gg.Hex("#F2EBD3"),
		Highlight:     gg.Hex("#FFFFFF"),
		LineWidth:     15,
		FigureWidth:   15,
		FigurePadding: 30,
	}
}

// Draw - paints background, grid, figures and the winning strike in grid coordinates.
func Draw(dc *gg.Context, game View, grid layout.Grid, theme Theme) error {
	dc.ClearWithColor(theme.Background)
	dc.SetLineCap(gg.LineCapRound)

	if err := drawGridLines(dc, grid, theme); err != nil {
		return fmt.Errorf("failed to draw grid: %w", err)
	}

	cells := game.Cells()
	for row := range entity.Size {
		for col := range entity.Size {
			if err := drawFigure(dc, cells[row][col], row, col, grid, theme); err != nil {
				return fmt.Errorf("failed to draw cell %d,%d: %w", row, col, err)
			}
		}
	}

	if line, ok := game.WinningLine(); ok {
		if err := drawStrike(dc, line, grid, theme); err != nil {
			return fmt.Errorf("failed to draw winning line: %w", err)
		}
	}

	return nil
}

func drawGridLines(dc *gg.Context, grid layout.Grid, theme Theme) error {
	dc.SetColor(theme.Line.Color())
	dc.SetLineWidth(theme.LineWidth)

	for i := 1; i < entity.Size; i++ {
		y := float64(i) * grid.CellHeight()
		dc.DrawLine(0, y, grid.Width, y)

		x := float64(i) * grid.CellWidth()
		dc.DrawLine(x, 0, x, grid.Height)
	}

	return dc.Stroke()
}

func drawFigure(dc *gg.Context, cell entity.Cell, row, col int, grid layout.Grid, theme Theme) error {
	switch cell {
	case entity.CellX:
		x, y := grid.CellOrigin(row, col)
		pad := theme.FigurePadding
		w, h := grid.CellWidth(), grid.CellHeight()

		dc.SetColor(theme.PlayerX.Color())
		dc.SetLineWidth(theme.FigureWidth)
		dc.DrawLine(x+pad, y+pad, x+w-pad, y+h-pad)
		dc.DrawLine(x+pad, y+h-pad, x+w-pad, y+pad)

		return dc.Stroke()
	case entity.CellO:
		cx, cy := grid.CellCenter(row, col)
		radius := min(grid.CellWidth(), grid.CellHeight())/2 - theme.FigurePadding

		dc.SetColor(theme.PlayerO.Color())
		dc.SetLineWidth(theme.FigureWidth)
		dc.DrawCircle(cx, cy, radius)

		return dc.Stroke()
	default:
		return nil
	}
}

func drawStrike(dc *gg.Context, line entity.Line, grid layout.Grid, theme Theme) error {
	first, last := line[0], line[len(line)-1]
	x1, y1 := grid.CellCenter(first.Row, first.Col)
	x2, y2 := grid.CellCenter(last.Row, last.Col)

	dc.SetColor(theme.Highlight.Color())
	dc.SetLineWidth(theme.LineWidth)
	dc.DrawLine(x1, y1, x2, y2)

	return dc.Stroke()
}
