package game

// Size is the side length of the square board.
const Size = 4

// LineLength is the number of aligned same-coloured pieces that wins.
const LineLength = 3

const (
	MAX_PIECES   = 3 // Pieces each player places before the movement phase
	MAX_BARRIERS = 2 // Barriers each player may place over a game
)

type StateHash uint64

// Evaluate scores a position for the perspective player. Positive scores
// favour perspective; +Inf and -Inf mark a decided game.
type Evaluate func(g *Game, perspective *Player) float64
