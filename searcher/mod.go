package searcher

import "morris/game"

// Searcher chooses moves for one player. Implementations must leave the
// game they are given exactly as they found it.
type Searcher interface {
	BestPiecePlace(g *game.Game, depth int, player *game.Player) (game.Pos, error)
	BestPieceMove(g *game.Game, depth int, player *game.Player) (game.Move, error)
	BestBarrierPlacement(g *game.Game, threat *game.Player) (game.Pos, bool)
}
