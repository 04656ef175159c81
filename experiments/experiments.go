package experiments

import (
	"context"
	"fmt"
	"time"

	"morris/engine"
	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher"
	"morris/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Settings shared by every game of an experiment.
type Settings struct {
	NumGames     int // Per match up
	Parallel     int // Games played at once
	MaxTurns     int
	BarrierTurns int
	Seed         uint64
	OutputDir    string
}

type Result struct {
	Dir         string
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.MinimaxKind, Depth: 1, Pruning: true},
	{ID: 2, Kind: metrics.MinimaxKind, Depth: 2, Pruning: true},
	{ID: 3, Kind: metrics.MinimaxKind, Depth: 3, Pruning: true},
	{ID: 4, Kind: metrics.MinimaxKind, Depth: 4, Pruning: true},
}

// RunDepthExperiment pairs minimax agents of growing depth against the
// random baseline.
func RunDepthExperiment(ctx context.Context, settings Settings) (Result, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomKind}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run(ctx, "depth", append(depthConfigs, baseline), matchUps, settings)
}

// Run plays NumGames games per match up, at most Parallel at once, and
// stores the configs, game records and move records as CSV.
func Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) (Result, error) {
	if settings.NumGames < 1 {
		return Result{}, fmt.Errorf("experiment %s needs at least one game per match up", name)
	}
	if settings.Parallel < 1 {
		settings.Parallel = 1
	}

	log.Info().Msgf("starting %s experiment...", name)
	start := time.Now()

	total := len(matchUps) * settings.NumGames
	gameRecords := make([]metrics.GameRecord, total)
	moveRecords := make([][]metrics.MoveRecord, total)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(settings.Parallel)
	for mi, matchup := range matchUps {
		mi, matchup := mi, matchup
		for i := 0; i < settings.NumGames; i++ {
			i := i
			id := mi*settings.NumGames + i + 1
			group.Go(func() error {
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, settings.NumGames)

				winner, gameMetric, moveMetrics, err := runGame(ctx, settings, settings.Seed+uint64(id), matchup)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}

				gameRecords[id-1] = metrics.GameRecord{
					ID:         id,
					Agent1:     matchup[0].ID,
					Agent2:     matchup[1].ID,
					GameMetric: gameMetric,
				}
				for _, mm := range moveMetrics {
					moveRecords[id-1] = append(moveRecords[id-1], metrics.MoveRecord{
						Game:       id,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	log.Info().Msgf("completed %s experiment", name)

	result := Result{GameRecords: gameRecords}
	for _, records := range moveRecords {
		result.MoveRecords = append(result.MoveRecords, records...)
	}

	writer, err := metrics.NewWriter(settings.OutputDir, name)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	err = writer.WriteSetup(metrics.Setup{
		Name:      name,
		Matchups:  matchUps,
		NumGames:  settings.NumGames,
		Seed:      settings.Seed,
		StartTime: start,
		EndTime:   time.Now(),
	})
	if err != nil {
		return result, err
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return result, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return result, nil
}

// runGame plays one seeded game between two configured agents.
func runGame(ctx context.Context, settings Settings, seed uint64, matchup [2]metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	r := rand.New(rand.NewSource(seed))
	color1, color2 := game.RandomColors(r)
	player1 := game.NewPlayer(fmt.Sprintf("Player 1 (agent %d)", matchup[0].ID), color1)
	player2 := game.NewPlayer(fmt.Sprintf("Player 2 (agent %d)", matchup[1].ID), color2)

	g, err := game.NewGame(player1, player2,
		game.WithRand(r),
		game.WithRules(game.NewRulesWithBarrierLifetime(settings.BarrierTurns)))
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	agents := [2]agent.Agent{
		createAgent(matchup[0], rand.New(rand.NewSource(seed*2+1))),
		createAgent(matchup[1], rand.New(rand.NewSource(seed*2+2))),
	}
	e := engine.LocalEngine(g, agents, engine.WithMaxTurns(settings.MaxTurns))

	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, r *rand.Rand) agent.Agent {
	if config.Kind == metrics.RandomKind {
		return agent.NewRandomAgent(r)
	}

	options := []searcher.Option{searcher.WithRand(r)}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewMinimaxAgent(config.Depth, options...)
}
