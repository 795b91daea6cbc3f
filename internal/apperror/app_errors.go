package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("coordinates are out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
)
