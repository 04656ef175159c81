package agent

import (
	"fmt"
	"time"

	"morris/experiments/metrics"
	"morris/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns a baseline agent that samples uniformly among the
// legal moves, barriers included, until it has picked a piece action.
func NewRandomAgent(r *rand.Rand) Agent {
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return randomAgent{rand: r}
}

func (a randomAgent) FindTurn(g *game.Game) (game.Turn, metrics.SearchMetric, error) {
	if g.CurrentPlayer() == nil {
		return game.Turn{}, metrics.SearchMetric{}, game.ErrNotStarted
	}

	trial := g.Copy()
	me := trial.CurrentPlayer()

	var turn game.Turn
	for {
		moves := trial.GetLegalMoves(me)
		if len(moves) == 0 {
			return game.Turn{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s", game.ErrNoLegalMove, me)
		}
		move := moves[a.rand.Intn(len(moves))]
		if err := trial.Apply(move); err != nil {
			return game.Turn{}, metrics.SearchMetric{}, err
		}
		if move.SwitchesTurn() {
			turn.Action = move
			return turn, metrics.SearchMetric{}, nil
		}
		turn.Barriers = append(turn.Barriers, move.To)
	}
}
