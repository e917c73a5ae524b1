package errors

import "errors"

var (
	ErrUnknownTier        = errors.New("unknown stone tier")
	ErrNoSnapshot         = errors.New("no board snapshot was saved")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrOutOfBoard         = errors.New("cell is outside the board")
	ErrInvalidCell        = errors.New("invalid cell notation")
	ErrNotPlaying         = errors.New("game is not accepting moves")
	ErrNotGameOver        = errors.New("game is not over yet")
	ErrNoObservationsLeft = errors.New("no observations left")
	ErrSessionNotFound    = errors.New("session was not found")
	ErrUnknownAction      = errors.New("unknown action")
)
