package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string     `yaml:"log-level" env:"MORRIS_LOG_LEVEL" env-default:"info"`
	Depth        int        `yaml:"depth" env:"MORRIS_DEPTH" env-default:"5"`
	BarrierTurns int        `yaml:"barrier-turns" env:"MORRIS_BARRIER_TURNS" env-default:"2"`
	Seed         uint64     `yaml:"seed" env:"MORRIS_SEED" env-default:"0"` // 0 seeds from the clock
	MaxTurns     int        `yaml:"max-turns" env:"MORRIS_MAX_TURNS" env-default:"200"`
	PlayerName   string     `yaml:"player-name" env:"MORRIS_PLAYER_NAME" env-default:"Player 1"`
	BotName      string     `yaml:"bot-name" env:"MORRIS_BOT_NAME" env-default:"Morris BI"`
	Experiment   Experiment `yaml:"experiment"`
}

type Experiment struct {
	Games     int    `yaml:"games" env:"MORRIS_EXPERIMENT_GAMES" env-default:"10"`
	Parallel  int    `yaml:"parallel" env:"MORRIS_EXPERIMENT_PARALLEL" env-default:"4"`
	OutputDir string `yaml:"output-dir" env:"MORRIS_EXPERIMENT_OUTPUT_DIR" env-default:"experiments/results"`
}

// Load reads the YAML file at path, or only the environment when path is
// empty. Environment variables override the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if c.BarrierTurns < 1 {
		return fmt.Errorf("barrier-turns must be positive, got %d", c.BarrierTurns)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max-turns must be positive, got %d", c.MaxTurns)
	}
	return nil
}
