// meta/meta.go
package meta

// NAME is the program name used in usage output.
const NAME = "morris"

// Run modes
const (
	MODE_PLAY       = "play"       // Human at the console against the bot
	MODE_SELFPLAY   = "selfplay"   // Bot against bot
	MODE_EXPERIMENT = "experiment" // Batches of games written to CSV
)

// Experiments selectable with -experiment
const (
	EXPERIMENT_DEPTH   = "depth"
	EXPERIMENT_PRUNING = "pruning"
)

// CONFIG_PATH is read when present and no -config flag is given.
const CONFIG_PATH = "config.yml"
