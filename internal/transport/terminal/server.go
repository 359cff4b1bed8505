// Package terminal runs the game in a terminal: the board is rendered with gg,
// blitted as half-block characters, and driven by mouse clicks and keys.
package terminal

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/render"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type game interface {
	render.View
	AttemptMove(row, col int) (tictactoe.MoveResult, error)
	Restart()
	IsFinished() bool
	CurrentPlayer() entity.Player
	State() tictactoe.State
}

type sounds interface {
	PlayMove(player entity.Player)
	PlayWin()
	PlayDraw()
	PlayReject()
}

type Keys struct {
	Restart  rune
	Quit     rune
	Snapshot rune
}

func DefaultKeys() Keys {
	return Keys{Restart: 'r', Quit: 'q', Snapshot: 's'}
}

type Options struct {
	Grid      layout.Grid
	Theme     render.Theme
	Keys      Keys
	Snapshots *render.Snapshotter
}

// Frontend owns the screen and feeds input events into the game one at a time.
type Frontend struct {
	logger    *slog.Logger
	screen    tcell.Screen
	game      game
	sound     sounds
	grid      layout.Grid
	theme     render.Theme
	keys      Keys
	snapshots *render.Snapshotter

	viewport layout.Viewport
	round    string
	pressed  bool
	shots    int
}

func New(logger *slog.Logger, screen tcell.Screen, game game, sound sounds, opts Options) *Frontend {
	frontend := &Frontend{
		logger:    logger.With("component", "terminal"),
		screen:    screen,
		game:      game,
		sound:     sound,
		grid:      opts.Grid,
		theme:     opts.Theme,
		snapshots: opts.Snapshots,
		keys: Keys{
			Restart:  unicode.ToLower(opts.Keys.Restart),
			Quit:     unicode.ToLower(opts.Keys.Quit),
			Snapshot: unicode.ToLower(opts.Keys.Snapshot),
		},
		round: uuid.NewString(),
	}
	frontend.relayout()

	return frontend
}

// Run - processes terminal events until the quit key or ctx is done.
func (that *Frontend) Run(ctx context.Context) error {
	that.redraw()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			// nil once the screen is finalized
			ev := that.screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	that.logger.Info("Game started", "round", that.round)

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("Context canceled, closing the game")
			return nil
		case ev := <-events:
			if !that.HandleEvent(ev) {
				that.logger.Info("Close requested")
				return nil
			}
		}
	}
}

func (that *Frontend) relayout() {
	width, height := that.screen.Size()

	// the last row is the status line, each board row holds two pixel rows
	boardRows := height - 1
	if boardRows < 1 {
		that.viewport = layout.Viewport{}
		return
	}

	that.viewport = layout.Fit(width, boardRows*2)
}
