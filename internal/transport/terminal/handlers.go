package terminal

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// HandleEvent - applies one terminal event. Returns false when the game should close.
func (that *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return that.handleKey(ev)
	case *tcell.EventMouse:
		that.handleMouse(ev)
	case *tcell.EventResize:
		that.relayout()
		that.screen.Sync()
		that.redraw()
	}

	return true
}

func (that *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch unicode.ToLower(ev.Rune()) {
	case that.keys.Quit:
		return false
	case that.keys.Restart:
		that.restart()
	case that.keys.Snapshot:
		that.snapshot()
	}

	return true
}

// handleMouse - reacts to the press of the primary button only; holding or dragging does nothing.
func (that *Frontend) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if !pressed || that.pressed {
		that.pressed = pressed
		return
	}
	that.pressed = true

	x, y := ev.Position()
	that.click(x, y)
}

func (that *Frontend) click(x, y int) {
	if that.game.IsFinished() {
		return
	}

	// a terminal cell covers two pixel rows, take the upper one
	px, py := x, y*2
	if !that.viewport.Contains(px, py) {
		return
	}

	row, col, ok := that.grid.CellAt(that.viewport.ToLogical(px, py, that.grid))
	if !ok {
		return
	}

	log := that.logger.With("round", that.round, "row", row, "col", col)

	result, err := that.game.AttemptMove(row, col)
	if err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("Move rejected", "error", err)
			that.sound.PlayReject()
			return
		}

		log.Warn("Move failed", "error", err)
		return
	}

	log.Info("Move", "player", result.Player.String())

	switch result.State.Status {
	case tictactoe.StatusWon:
		log.Info("Game won", "winner", result.State.Winner.String())
		that.sound.PlayWin()
	case tictactoe.StatusDraw:
		log.Info("It's a draw")
		that.sound.PlayDraw()
	default:
		that.sound.PlayMove(result.Player)
	}

	that.redraw()
}

func (that *Frontend) restart() {
	that.logger.Info("Restarting game", "round", that.round)

	that.game.Restart()
	that.round = uuid.NewString()
	that.redraw()
}

func (that *Frontend) snapshot() {
	if that.snapshots == nil {
		return
	}

	that.shots++
	name := fmt.Sprintf("tictactoe-%s-%d", that.round[:8], that.shots)

	path, err := that.snapshots.Save(that.game, name)
	if err != nil {
		that.logger.Error("Snapshot failed", "round", that.round, "error", err)
		return
	}

	that.logger.Info("Snapshot saved", "round", that.round, "path", path)
}
