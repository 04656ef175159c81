package agent

import (
	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
	depth   int
	metrics metrics.Collector
}

// NewMinimaxAgent returns an agent that walls off threats with barriers and
// then places or moves a piece by minimax search.
func NewMinimaxAgent(depth int, options ...searcher.Option) Agent {
	if depth < 1 {
		depth = searcher.DefaultDepth
	}
	collector := metrics.NewCollector()
	options = append(options, searcher.WithMetrics(collector))
	return &minimaxAgent{
		minimax: searcher.NewMinimax(options...),
		depth:   depth,
		metrics: collector,
	}
}

func (a *minimaxAgent) FindTurn(g *game.Game) (game.Turn, metrics.SearchMetric, error) {
	if g.CurrentPlayer() == nil {
		return game.Turn{}, metrics.SearchMetric{}, game.ErrNotStarted
	}

	a.metrics.Start(a.depth, a.minimax.Pruning())
	trial := g.Copy()
	me := trial.CurrentPlayer()
	opponent := trial.Opponent(me)

	var turn game.Turn
	for me.HasBarriers() {
		pos, ok := a.minimax.BestBarrierPlacement(trial, opponent)
		if !ok {
			break
		}
		if err := trial.Apply(game.NewBarrier(pos)); err != nil {
			return game.Turn{}, a.metrics.Complete(), err
		}
		log.Debug().Msgf("%s places a barrier at %s", me.Name, pos)
		turn.Barriers = append(turn.Barriers, pos)
	}

	if me.HasPieces() {
		pos, err := a.minimax.BestPiecePlace(trial, a.depth, me)
		if err != nil {
			return game.Turn{}, a.metrics.Complete(), err
		}
		turn.Action = game.NewPlacement(pos)
	} else {
		move, err := a.minimax.BestPieceMove(trial, a.depth, me)
		if err != nil {
			return game.Turn{}, a.metrics.Complete(), err
		}
		turn.Action = move
	}

	return turn, a.metrics.Complete(), nil
}
