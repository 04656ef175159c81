package searcher

import (
	"time"

	"morris/experiments/metrics"
	"morris/game"

	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search with optional alpha-beta
// pruning. Every trial move is undone by restoring a snapshot, so the game
// handed in is unchanged when a search returns.
type Minimax struct {
	pruning  bool
	evaluate game.Evaluate
	rand     *rand.Rand
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithRand sets the generator used to shuffle candidates.
func WithRand(r *rand.Rand) Option {
	return func(m *Minimax) {
		if r != nil {
			m.rand = r
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs. Scores are unchanged, only
// more positions are visited.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		pruning:  true,
		evaluate: game.EvaluateState,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *Minimax) Pruning() bool {
	return m.pruning
}

// Search scores the position for perspective looking depth plies ahead.
// On a maximizing ply perspective moves, otherwise its opponent does. The
// returned move is the best one found at this ply; ok is false at a leaf.
// A perspective that does not play in g has no moves and is scored as is.
func (m *Minimax) Search(g *game.Game, depth int, alpha, beta float64, maximizing bool, perspective *game.Player) (score float64, best game.Move, ok bool) {
	m.metrics.AddNode()
	if !inGame(g, perspective) {
		return m.evaluate(g, perspective), game.Move{}, false
	}

	if depth <= 0 || g.IsOver() {
		return m.evaluate(g, perspective), game.Move{}, false
	}

	mover := perspective
	if !maximizing {
		mover = g.Opponent(perspective)
	}
	moves := g.GetLegalMoves(mover)
	if len(moves) == 0 {
		return m.evaluate(g, perspective), game.Move{}, false
	}

	if maximizing {
		score = LOSS
	} else {
		score = WIN
	}

	for _, move := range moves {
		snapshot := g.Snapshot()
		if !g.SetCurrentPlayer(mover) {
			break
		}
		if err := g.Apply(move); err != nil {
			g.Restore(snapshot)
			continue
		}
		eval, _, _ := m.Search(g, depth-1, alpha, beta, !maximizing, perspective)
		g.Restore(snapshot)

		if maximizing {
			if !ok || eval > score {
				score, best, ok = eval, move, true
			}
			alpha = max(alpha, eval)
		} else {
			if !ok || eval < score {
				score, best, ok = eval, move, true
			}
			beta = min(beta, eval)
		}

		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}

	if !ok {
		return m.evaluate(g, perspective), game.Move{}, false
	}
	return score, best, true
}
