package engine

import (
	"context"

	"morris/experiments/metrics"
)

const MaxTurns = 200

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
