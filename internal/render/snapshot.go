package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
)

// Snapshotter writes full-size PNG images of the board.
type Snapshotter struct {
	dir   string
	grid  layout.Grid
	theme Theme
}

func NewSnapshotter(dir string, grid layout.Grid, theme Theme) *Snapshotter {
	return &Snapshotter{
		dir:   dir,
		grid:  grid,
		theme: theme,
	}
}

// Save - renders the game into <dir>/<name>.png and returns the file path.
func (that *Snapshotter) Save(game View, name string) (string, error) {
	if err := os.MkdirAll(that.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	dc, err := that.draw(game)
	if err != nil {
		return "", err
	}
	defer dc.Close()

	path := filepath.Join(that.dir, name+".png")
	if err = dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}

	return path, nil
}

// Encode - renders the game and writes it to w as PNG.
func (that *Snapshotter) Encode(w io.Writer, game View) error {
	dc, err := that.draw(game)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return nil
}

func (that *Snapshotter) draw(game View) (*gg.Context, error) {
	dc := gg.NewContext(int(that.grid.Width), int(that.grid.Height))

	if err := Draw(dc, game, that.grid, that.theme); err != nil {
		_ = dc.Close()
		return nil, err
	}

	return dc, nil
}
