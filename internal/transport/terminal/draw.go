package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/rocketscienceinc/tictactoe-local/internal/render"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const upperHalfBlock = '▀'

// Draw - renders the board and the status line and shows the frame.
func (that *Frontend) Draw() error {
	that.screen.Clear()

	if !that.viewport.Empty() {
		if err := that.drawBoard(); err != nil {
			return err
		}
	}

	that.drawStatus()
	that.screen.Show()

	return nil
}

func (that *Frontend) redraw() {
	if err := that.Draw(); err != nil {
		that.logger.Error("Failed to draw the board", "error", err)
	}
}

// drawBoard - renders the game at viewport resolution and maps every two pixel
// rows onto one terminal row: foreground is the upper pixel, background the lower.
func (that *Frontend) drawBoard() error {
	size := that.viewport.Size

	dc := gg.NewContext(size, size)
	defer dc.Close()

	dc.Scale(that.viewport.Scale(that.grid))

	if err := render.Draw(dc, that.game, that.grid, that.theme); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	img := dc.Image()
	for y := 0; y < size; y += 2 {
		for x := range size {
			top := toColor(img.At(x, y))
			bottom := top
			if y+1 < size {
				bottom = toColor(img.At(x, y+1))
			}

			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			that.screen.SetContent(that.viewport.X+x, (that.viewport.Y+y)/2, upperHalfBlock, nil, style)
		}
	}

	return nil
}

func (that *Frontend) drawStatus() {
	width, height := that.screen.Size()
	if height < 1 {
		return
	}

	x := 0
	for _, r := range that.statusText() {
		if x >= width {
			break
		}
		that.screen.SetContent(x, height-1, r, nil, tcell.StyleDefault)
		x++
	}
}

func (that *Frontend) statusText() string {
	state := that.game.State()

	switch state.Status {
	case tictactoe.StatusWon:
		return fmt.Sprintf("%s wins! Press %c to restart, %c to quit", state.Winner, that.keys.Restart, that.keys.Quit)
	case tictactoe.StatusDraw:
		return fmt.Sprintf("It's a draw! Press %c to restart, %c to quit", that.keys.Restart, that.keys.Quit)
	default:
		return fmt.Sprintf("%s to move. Click a cell, %c restarts, %c saves a snapshot, %c quits",
			that.game.CurrentPlayer(), that.keys.Restart, that.keys.Snapshot, that.keys.Quit)
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
