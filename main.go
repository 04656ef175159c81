package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"morris/config"
	"morris/engine"
	"morris/experiments"
	"morris/game"
	"morris/meta"
	"morris/player"
	"morris/searcher"
	"morris/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", meta.MODE_PLAY, "play, selfplay or experiment")
	configPath := flag.String("config", "", "YAML config file (default "+meta.CONFIG_PATH+" when present)")
	depth := flag.Int("depth", 0, "Search depth, overrides the config")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config")
	experiment := flag.String("experiment", meta.EXPERIMENT_DEPTH, "depth or pruning")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags]\n", meta.NAME)
		flag.PrintDefaults()
	}
	flag.Parse()

	path := *configPath
	if path == "" {
		if _, err := os.Stat(meta.CONFIG_PATH); err == nil {
			path = meta.CONFIG_PATH
		}
	}
	cfg := config.MustLoad(path)
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case meta.MODE_PLAY:
		err = play(ctx, cfg, os.Stdin, os.Stdout)
	case meta.MODE_SELFPLAY:
		err = selfPlay(ctx, cfg, os.Stdout)
	case meta.MODE_EXPERIMENT:
		err = runExperiment(ctx, cfg, *experiment)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if errors.Is(err, player.ErrQuit) || errors.Is(err, io.EOF) {
		fmt.Println("bye")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("morris stopped")
	}
}

func setupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

func newGame(cfg *config.Config, r *rand.Rand, name1, name2 string) (*game.Game, error) {
	color1, color2 := game.RandomColors(r)
	return game.NewGame(game.NewPlayer(name1, color1), game.NewPlayer(name2, color2),
		game.WithRand(r),
		game.WithRules(game.NewRulesWithBarrierLifetime(cfg.BarrierTurns)))
}

func play(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	r := rand.New(rand.NewSource(cfg.Seed))
	g, err := newGame(cfg, r, cfg.PlayerName, cfg.BotName)
	if err != nil {
		return err
	}

	agents := [2]agent.Agent{
		player.NewConsole(in, out),
		agent.NewMinimaxAgent(cfg.Depth, searcher.WithRand(rand.New(rand.NewSource(cfg.Seed+1)))),
	}
	human := g.Player1()
	fmt.Fprintf(out, "You are %s. Three in a row wins. Type help for commands.\n", human)

	observer := func(step int, p *game.Player, turn game.Turn, g *game.Game) {
		if p.Color == human.Color {
			return
		}
		if len(turn.Barriers) == 0 && turn.Action == (game.Move{}) {
			fmt.Fprintf(out, "%s passes\n", p.Name)
			return
		}
		for _, pos := range turn.Barriers {
			fmt.Fprintf(out, "%s places a barrier at %s\n", p.Name, pos)
		}
		fmt.Fprintf(out, "%s plays %s\n", p.Name, turn.Action)
	}

	e := engine.LocalEngine(g, agents, engine.WithMaxTurns(cfg.MaxTurns), engine.WithObserver(observer))
	winner, _, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	announce(out, g, winner)
	return nil
}

func selfPlay(ctx context.Context, cfg *config.Config, out io.Writer) error {
	r := rand.New(rand.NewSource(cfg.Seed))
	g, err := newGame(cfg, r, cfg.BotName+" 1", cfg.BotName+" 2")
	if err != nil {
		return err
	}

	agents := [2]agent.Agent{
		agent.NewMinimaxAgent(cfg.Depth, searcher.WithRand(rand.New(rand.NewSource(cfg.Seed+1)))),
		agent.NewMinimaxAgent(cfg.Depth, searcher.WithRand(rand.New(rand.NewSource(cfg.Seed+2)))),
	}
	observer := func(step int, p *game.Player, turn game.Turn, g *game.Game) {
		fmt.Fprintf(out, "turn %d: %s barriers %v then %s\n%s", step, p, turn.Barriers, turn.Action, g.Board())
	}

	e := engine.LocalEngine(g, agents, engine.WithMaxTurns(cfg.MaxTurns), engine.WithObserver(observer))
	winner, _, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	announce(out, g, winner)
	return nil
}

func runExperiment(ctx context.Context, cfg *config.Config, name string) error {
	settings := experiments.Settings{
		NumGames:     cfg.Experiment.Games,
		Parallel:     cfg.Experiment.Parallel,
		MaxTurns:     cfg.MaxTurns,
		BarrierTurns: cfg.BarrierTurns,
		Seed:         cfg.Seed,
		OutputDir:    cfg.Experiment.OutputDir,
	}

	var result experiments.Result
	var err error
	switch name {
	case meta.EXPERIMENT_DEPTH:
		result, err = experiments.RunDepthExperiment(ctx, settings)
	case meta.EXPERIMENT_PRUNING:
		result, err = experiments.RunPruningExperiment(ctx, settings)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", result.Dir)
	return nil
}

func announce(out io.Writer, g *game.Game, winner string) {
	fmt.Fprint(out, g.Board().String())
	if winner == "" {
		fmt.Fprintln(out, "No winner.")
		return
	}
	fmt.Fprintf(out, "%s wins!\n", winner)
}
