package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// State - the controller's phase. Winner is set only when Status is StatusWon.
type State struct {
	Status Status
	Winner entity.Player
}

func (that State) IsFinished() bool {
	return that.Status != StatusInProgress
}

// MoveResult - an accepted move and the state it left the game in.
type MoveResult struct {
	Position entity.Position
	Player   entity.Player
	State    State
}

// GameController owns the board and the turn. It is not safe for concurrent use.
type GameController struct {
	board   *entity.Board
	current entity.Player
	state   State
}

func NewGameController() *GameController {
	return &GameController{
		board:   entity.NewBoard(),
		current: entity.PlayerX,
	}
}

// AttemptMove - marks the cell for the current player and advances the game.
// Rejected moves leave the controller untouched.
func (that *GameController) AttemptMove(row, col int) (MoveResult, error) {
	if that.state.IsFinished() {
		return MoveResult{}, apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return MoveResult{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if !that.board.IsAvailable(row, col) {
		return MoveResult{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	player := that.current
	that.board.Mark(row, col, player)

	switch {
	case that.board.CheckWin(player):
		that.state = State{Status: StatusWon, Winner: player}
	case that.board.IsFull():
		that.state = State{Status: StatusDraw}
	default:
		that.current = player.Opponent()
	}

	return MoveResult{
		Position: entity.Position{Row: row, Col: col},
		Player:   player,
		State:    that.state,
	}, nil
}

// Restart - drops the board and starts a new game with X to move.
func (that *GameController) Restart() {
	that.board = entity.NewBoard()
	that.current = entity.PlayerX
	that.state = State{}
}

func (that *GameController) CurrentPlayer() entity.Player {
	return that.current
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) IsFinished() bool {
	return that.state.IsFinished()
}

func (that *GameController) Cells() [entity.Size][entity.Size]entity.Cell {
	return that.board.Cells()
}

func (that *GameController) Cell(row, col int) entity.Cell {
	return that.board.Cell(row, col)
}

// IsAvailable - false for occupied cells and for coordinates outside the board.
func (that *GameController) IsAvailable(row, col int) bool {
	return entity.InBounds(row, col) && that.board.IsAvailable(row, col)
}

func (that *GameController) MoveCount() int {
	return that.board.MarkedCount()
}

func (that *GameController) IsEmpty() bool {
	return that.board.IsEmpty()
}

func (that *GameController) IsFull() bool {
	return that.board.IsFull()
}

// WinningLine - the completed line when the game was won.
func (that *GameController) WinningLine() (entity.Line, bool) {
	if that.state.Status != StatusWon {
		return entity.Line{}, false
	}
	return that.board.WinningLine(that.state.Winner)
}
