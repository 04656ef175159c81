package searcher

import "math"

// Hyperparameters for minimax

const DefaultDepth = 5

// Scores of a decided game
var (
	WIN  = math.Inf(1)
	LOSS = math.Inf(-1)
)
