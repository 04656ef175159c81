package experiments

import (
	"context"

	"morris/experiments/metrics"
)

// RunPruningExperiment plays each depth with and without alpha-beta
// pruning against itself. Both sides reach the same decisions, so the
// move records compare the positions visited per move.
func RunPruningExperiment(ctx context.Context, settings Settings, depths ...int) (Result, error) {
	if len(depths) == 0 {
		depths = []int{2, 3, 4}
	}

	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for _, depth := range depths {
		pruned := metrics.AgentConfig{ID: len(configs) + 1, Kind: metrics.MinimaxKind, Depth: depth, Pruning: true}
		full := metrics.AgentConfig{ID: len(configs) + 2, Kind: metrics.MinimaxKind, Depth: depth}
		configs = append(configs, pruned, full)
		matchUps = append(matchUps, [2]metrics.AgentConfig{pruned, full})
	}

	return Run(ctx, "pruning", configs, matchUps, settings)
}
