package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/rocketscienceinc/tictactoe-local/internal/audio"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/render"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sound := audio.NewSoundManager(logger)
	if conf.Sound.Mute {
		log.Info("Sound is muted")
	} else if err := sound.Initialize(); err != nil {
		// the game is playable without sound
		log.Warn("Could not initialize audio", "error", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	gameController := tictactoe.NewGameController()
	frontend := terminal.New(logger, screen, gameController, sound, FrontendOptions(conf))

	log.Info("Starting game", "log_level", conf.LogLevel, "snapshot_dir", conf.SnapshotDir)

	if err = frontend.Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Game closed")

	return nil
}

// FrontendOptions - maps the config onto the terminal front end settings.
func FrontendOptions(conf *config.Config) terminal.Options {
	grid := layout.NewGrid(conf.Window.Width, conf.Window.Height)
	theme := Theme(conf.Theme)

	return terminal.Options{
		Grid:      grid,
		Theme:     theme,
		Keys:      Keys(conf.Keys),
		Snapshots: render.NewSnapshotter(conf.SnapshotDir, grid, theme),
	}
}

func Theme(conf config.Theme) render.Theme {
	return render.Theme{
		Background:    gg.Hex(conf.Background),
		Line:          gg.Hex(conf.Line),
		PlayerX:       gg.Hex(conf.PlayerX),
		PlayerO:       gg.Hex(conf.PlayerO),
		Highlight:     gg.Hex(conf.Highlight),
		LineWidth:     conf.LineWidth,
		FigureWidth:   conf.FigureWidth,
		FigurePadding: conf.FigurePadding,
	}
}

// Keys - takes the first rune of every binding, empty bindings keep the default.
func Keys(conf config.Keys) terminal.Keys {
	keys := terminal.DefaultKeys()

	if r, ok := firstRune(conf.Restart); ok {
		keys.Restart = r
	}
	if r, ok := firstRune(conf.Quit); ok {
		keys.Quit = r
	}
	if r, ok := firstRune(conf.Snapshot); ok {
		keys.Snapshot = r
	}

	return keys
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}

	return 0, false
}
