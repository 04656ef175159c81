package searcher

import (
	"fmt"

	"morris/game"

	"github.com/rs/zerolog/log"
)

// BestPiecePlace chooses where player should place its next piece. An
// immediate win is taken first, then a cell the opponent would win on,
// and only then is every candidate scored by search.
func (m *Minimax) BestPiecePlace(g *game.Game, depth int, player *game.Player) (game.Pos, error) {
	if !inGame(g, player) {
		return game.Pos{}, fmt.Errorf("%w: %s", game.ErrNotInGame, player)
	}
	if !g.PlayerByColor(player.Color).HasPieces() {
		return game.Pos{}, fmt.Errorf("%w: %s has no piece left to place", game.ErrNoLegalMove, player)
	}
	candidates := g.GetPossiblePiecesPlaces()
	if len(candidates) == 0 {
		return game.Pos{}, fmt.Errorf("%w: no free cell for %s", game.ErrNoLegalMove, player)
	}
	m.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	opponent := g.Opponent(player)
	board := g.Board()
	var blocking *game.Pos
	for _, pos := range candidates {
		board.PlacePiece(pos.Col, pos.Row, player.Color)
		won := g.WinnerColor() == player.Color
		board.RemovePiece(pos.Col, pos.Row)
		if won {
			log.Debug().Msgf("%s wins by placing at %s", player.Name, pos)
			return pos, nil
		}

		if blocking == nil {
			board.PlacePiece(pos.Col, pos.Row, opponent.Color)
			if g.WinnerColor() == opponent.Color {
				blocked := pos
				blocking = &blocked
			}
			board.RemovePiece(pos.Col, pos.Row)
		}
	}
	if blocking != nil {
		log.Debug().Msgf("%s blocks %s at %s", player.Name, opponent.Name, *blocking)
		return *blocking, nil
	}

	best := candidates[0]
	bestScore := LOSS
	found := false
	for _, pos := range candidates {
		snapshot := g.Snapshot()
		if !g.SetCurrentPlayer(player) {
			continue
		}
		if err := g.Apply(game.NewPlacement(pos)); err != nil {
			g.Restore(snapshot)
			continue
		}
		score, _, _ := m.Search(g, max(depth-1, 0), LOSS, WIN, false, player)
		g.Restore(snapshot)

		if !found || score > bestScore {
			best, bestScore, found = pos, score, true
		}
	}

	if !found {
		return game.Pos{}, fmt.Errorf("%w: %s cannot place on any free cell", game.ErrNoLegalMove, player)
	}
	log.Debug().Msgf("%s places at %s with score %.1f", player.Name, best, bestScore)
	return best, nil
}

// BestPieceMove chooses which piece player should move and where, scoring
// each one-step relocation by search.
func (m *Minimax) BestPieceMove(g *game.Game, depth int, player *game.Player) (game.Move, error) {
	if !inGame(g, player) {
		return game.Move{}, fmt.Errorf("%w: %s", game.ErrNotInGame, player)
	}
	if g.PlayerByColor(player.Color).HasPieces() {
		return game.Move{}, fmt.Errorf("%w: %s is still placing pieces", game.ErrNoLegalMove, player)
	}
	candidates := g.GetPossiblePiecesMoves(player)
	if len(candidates) == 0 {
		return game.Move{}, fmt.Errorf("%w: %s cannot move any piece", game.ErrNoLegalMove, player)
	}
	m.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	best := candidates[0]
	bestScore := LOSS
	found := false
	for _, move := range candidates {
		snapshot := g.Snapshot()
		if !g.SetCurrentPlayer(player) {
			continue
		}
		if err := g.Apply(move); err != nil {
			g.Restore(snapshot)
			continue
		}
		score, _, _ := m.Search(g, max(depth-1, 0), LOSS, WIN, false, player)
		g.Restore(snapshot)

		if !found || score > bestScore {
			best, bestScore, found = move, score, true
		}
	}

	if !found {
		return game.Move{}, fmt.Errorf("%w: %s cannot apply any movement", game.ErrNoLegalMove, player)
	}
	log.Debug().Msgf("%s moves %s with score %.1f", player.Name, best, bestScore)
	return best, nil
}

// BestBarrierPlacement looks for a cell on which threat would complete a
// line, in row-major order. The search runs on a copy of the game.
func (m *Minimax) BestBarrierPlacement(g *game.Game, threat *game.Player) (game.Pos, bool) {
	if !inGame(g, threat) {
		return game.Pos{}, false
	}
	trial := g.Copy()
	board := trial.Board()
	for _, pos := range trial.GetPossibleBarrierPlacements() {
		board.PlacePiece(pos.Col, pos.Row, threat.Color)
		won := trial.WinnerColor() == threat.Color
		board.RemovePiece(pos.Col, pos.Row)
		if won {
			log.Debug().Msgf("%s threatens to win at %s", threat.Name, pos)
			return pos, true
		}
	}
	return game.Pos{}, false
}

func inGame(g *game.Game, p *game.Player) bool {
	return p != nil && g.PlayerByColor(p.Color) != nil
}
