package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrOutOfRange         = errors.New("coordinates out of range")
	ErrInvalidMark        = errors.New("invalid mark")
	ErrInvalidInput       = errors.New("invalid move input")
	ErrInvariantViolation = errors.New("internal invariant violated")
)
