package apperror

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInvalidSlot       = errors.New("invalid player slot")
	ErrInvalidName       = errors.New("invalid player name")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidSelector   = errors.New("invalid selector call")
	ErrInvalidDifficulty = errors.New("difficulty must be within [0, 1]")
)
