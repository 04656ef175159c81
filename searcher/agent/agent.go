package agent

import (
	"morris/experiments/metrics"
	"morris/game"
)

type Agent interface {
	// FindTurn returns the barriers and the piece action for the current player and search metrics (if collected).
	// The game is left unchanged.
	FindTurn(g *game.Game) (game.Turn, metrics.SearchMetric, error)
}
