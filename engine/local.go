package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"morris/experiments/metrics"
	"morris/game"
	"morris/gamemaster"
	"morris/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Observer is called after every completed or passed turn.
type Observer func(step int, player *game.Player, turn game.Turn, g *game.Game)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

// Local runs a game in process. Agents[0] plays Player1 and Agents[1]
// plays Player2.
type Local struct {
	Game     *game.Game
	Agents   [2]agent.Agent
	maxTurns int
	observer Observer
}

func LocalEngine(g *game.Game, agents [2]agent.Agent, options ...Option) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for each player")
	}

	e := &Local{ // Default values
		Game:     g,
		Agents:   agents,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) agentFor(p *game.Player) agent.Agent {
	if p.Color == e.Game.Player1().Color {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the game loop until a winner is found. A player without a
// legal piece action passes.
func (e *Local) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	session := gamemaster.NewSession(g)
	_, nextUpdate := session.Init()

	starting := g.CurrentPlayer()
	log.Info().Msgf("%s is starting", starting)
	gameMetric := metrics.GameMetric{
		StartingPlayer: starting.Name,
		StartTime:      time.Now(),
	}

	var moveMetrics []metrics.MoveMetric
	for !session.Over() && session.Step() < e.maxTurns {
		if err := ctx.Err(); err != nil {
			return "", gameMetric, moveMetrics, err
		}
		step := session.Step() + 1
		player := g.CurrentPlayer()

		turn, searchMetric, err := e.agentFor(player).FindTurn(g)
		switch {
		case errors.Is(err, game.ErrNoLegalMove):
			if err := session.Pass(); err != nil {
				return "", gameMetric, moveMetrics, err
			}
		case err != nil:
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d of %s: %w", step, player.Name, err)
		default:
			if err := session.PlayTurn(turn); err != nil {
				return "", gameMetric, moveMetrics, fmt.Errorf("turn %d of %s: %w", step, player.Name, err)
			}
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Player:       player.Name,
				Barriers:     len(turn.Barriers),
				Action:       turn.Action.String(),
				SearchMetric: searchMetric,
			})
		}

		for u, ok := nextUpdate(); ok; u, ok = nextUpdate() {
			log.Debug().Msgf("turn %d: %s", step, u)
			for _, pos := range u.Expired {
				log.Debug().Msgf("barrier at %s expired", pos)
			}
		}
		if e.observer != nil {
			e.observer(step, player, turn, g)
		}
	}

	winner := g.CheckWinner()
	if winner != "" {
		log.Info().Msgf("%s wins after %d turns", winner, session.Step())
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", session.Step())
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = session.Step()
	return winner, gameMetric, moveMetrics, nil
}
