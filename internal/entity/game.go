package entity

import (
	"errors"
	"fmt"

	"github.com/playgridlabs/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - one console session: the board plus whose turn it is and how it ended.
type Game struct {
	Board  Board
	Status string
	Turn   string
	Winner string

	firstTurn string
}

// NewGame - returns a fresh waiting game; firstTurn moves first once the
// session starts.
func NewGame(firstTurn string) *Game {
	return &Game{
		Status:    StatusWaiting,
		Turn:      firstTurn,
		firstTurn: firstTurn,
	}
}

// Start - moves the session from waiting to ongoing.
func (that *Game) Start() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	that.Status = StatusOngoing

	return nil
}

// MakeTurn - applies a move for the player whose turn it is, then
// re-evaluates the session: a win or a full board is terminal, otherwise the
// turn passes to the other player. A rejected move changes nothing.
func (that *Game) MakeTurn(row, col int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := that.Board.ApplyMove(row, col, that.Turn); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.updateState()

	return nil
}

// Reset - back to an empty ongoing board, from any state.
func (that *Game) Reset() {
	that.Board.Reset()
	that.Winner = EmptyCell
	that.Turn = that.firstTurn
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// IsDraw - reports whether the session finished with a full board and no winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// ConfirmOngoingState - guards operations that need a running session.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// updateState - terminal-condition check after an accepted move.
func (that *Game) updateState() {
	switch {
	case that.Board.IsWinner(that.Turn):
		that.Winner = that.Turn
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case that.Board.IsFull():
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Turn = toggleMark(that.Turn)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
