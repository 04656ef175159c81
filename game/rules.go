package game

// Rules holds the parameters of a match that may vary between games.
type Rules interface {
	BarrierTurns() int
}
