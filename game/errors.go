package game

import "errors"

var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrInvalidMovement  = errors.New("invalid movement")
	ErrNoLegalMove      = errors.New("no legal move")
	ErrSameColor        = errors.New("players must have distinct colors")
	ErrGameOver         = errors.New("game is over")
	ErrNotStarted       = errors.New("game is not started")
)

var (
	ErrMissingPlayer = errors.New("game needs two players")
	ErrNotInGame     = errors.New("player is not in this game")
)
