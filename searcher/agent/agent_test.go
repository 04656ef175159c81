package agent

import (
	"testing"

	"morris/game"
	"morris/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T) (*game.Game, *game.Player, *game.Player) {
	t.Helper()
	human := game.NewPlayer("Player 1", game.Red)
	bot := game.NewPlayer("Morris BI", game.Blue)
	g, err := game.NewGame(human, bot, game.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	require.True(t, g.SetCurrentPlayer(human))
	return g, human, bot
}

func play(t *testing.T, g *game.Game, cells ...game.Pos) {
	t.Helper()
	for _, pos := range cells {
		require.NoError(t, g.Apply(game.NewPlacement(pos)))
	}
}

func TestMinimaxAgent(t *testing.T) {
	newAgent := func() Agent {
		return NewMinimaxAgent(3, searcher.WithRand(rand.New(rand.NewSource(5))))
	}

	t.Run("walls off a threat before placing", func(t *testing.T) {
		g, _, bot := newTestGame(t)
		play(t, g,
			game.Pos{Col: 0, Row: 3}, game.Pos{Col: 1, Row: 0},
			game.Pos{Col: 1, Row: 3})
		before := g.Hash()

		turn, metric, err := newAgent().FindTurn(g)
		require.NoError(t, err)
		require.Equal(t, before, g.Hash(), "Finding a turn must not touch the game")
		require.Equal(t, []game.Pos{{Col: 2, Row: 3}}, turn.Barriers)
		require.Equal(t, game.PlacePiece, turn.Action.Kind)
		require.Equal(t, 3, metric.Depth)
		require.Positive(t, metric.Nodes)

		require.NoError(t, g.ApplyTurn(turn))
		require.Equal(t, game.MAX_BARRIERS-1, bot.Barriers())
		require.Equal(t, "", g.CheckWinner())
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		g, _, bot := newTestGame(t)
		play(t, g,
			game.Pos{Col: 0, Row: 2}, game.Pos{Col: 1, Row: 0},
			game.Pos{Col: 3, Row: 2}, game.Pos{Col: 2, Row: 0},
			game.Pos{Col: 1, Row: 3})

		turn, _, err := newAgent().FindTurn(g)
		require.NoError(t, err)
		require.Empty(t, turn.Barriers)
		require.Equal(t, game.NewPlacement(game.Pos{Col: 3, Row: 0}), turn.Action)

		require.NoError(t, g.ApplyTurn(turn))
		require.Equal(t, bot.Name, g.CheckWinner())
	})

	t.Run("refuses a game that has not started", func(t *testing.T) {
		g, err := game.NewGame(game.NewPlayer("a", game.Red), game.NewPlayer("b", game.Blue))
		require.NoError(t, err)
		_, _, err = newAgent().FindTurn(g)
		require.ErrorIs(t, err, game.ErrNotStarted)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("turns are always applicable", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			g, _, _ := newTestGame(t)
			a := NewRandomAgent(rand.New(rand.NewSource(seed)))
			for i := 0; i < 6 && !g.IsOver(); i++ {
				before := g.Hash()
				turn, _, err := a.FindTurn(g)
				require.NoError(t, err)
				require.Equal(t, before, g.Hash())
				require.True(t, turn.Action.SwitchesTurn())
				require.NoError(t, g.ApplyTurn(turn), "seed %d turn %d", seed, i)
			}
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		g, human, _ := newTestGame(t)
		for _, pos := range g.GetPossiblePiecesPlaces() {
			require.True(t, g.Board().PlaceBarrier(pos.Col, pos.Row, 2))
		}
		require.Empty(t, g.GetLegalMoves(human))
		_, _, err := NewRandomAgent(rand.New(rand.NewSource(1))).FindTurn(g)
		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})
}
