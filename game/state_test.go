package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newStartedGame(t *testing.T) (*Game, *Player, *Player) {
	t.Helper()
	p1 := NewPlayer("Player 1", Red)
	p2 := NewPlayer("Morris BI", Blue)
	g, err := NewGame(p1, p2, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	require.True(t, g.SetCurrentPlayer(p1))
	return g, p1, p2
}

// placeAll spends every piece of both players, p1 first.
func placeAll(t *testing.T, g *Game, p1Cells, p2Cells []Pos) {
	t.Helper()
	for i := range p1Cells {
		require.NoError(t, g.Apply(NewPlacement(p1Cells[i])))
		require.NoError(t, g.Apply(NewPlacement(p2Cells[i])))
	}
}

func TestNewGame(t *testing.T) {
	t.Run("rejects shared colours", func(t *testing.T) {
		_, err := NewGame(NewPlayer("a", Red), NewPlayer("b", Red))
		require.ErrorIs(t, err, ErrSameColor)
	})

	t.Run("rejects missing players", func(t *testing.T) {
		_, err := NewGame(NewPlayer("a", Red), nil)
		require.ErrorIs(t, err, ErrMissingPlayer)
	})

	t.Run("starts without a current player", func(t *testing.T) {
		g, err := NewGame(NewPlayer("a", Red), NewPlayer("b", Blue))
		require.NoError(t, err)
		require.Nil(t, g.CurrentPlayer())
		require.False(t, g.PlacePiece(1, 1), "Mutators should be refused before start")
		require.ErrorIs(t, g.Apply(NewPlacement(Pos{Col: 1, Row: 1})), ErrNotStarted)
	})

	t.Run("start picks one of the players", func(t *testing.T) {
		p1, p2 := NewPlayer("a", Red), NewPlayer("b", Blue)
		g, err := NewGame(p1, p2, WithRand(rand.New(rand.NewSource(7))))
		require.NoError(t, err)
		first := g.Start()
		require.Contains(t, []*Player{p1, p2}, first)
		require.Same(t, first, g.CurrentPlayer())
	})

	t.Run("custom barrier lifetime", func(t *testing.T) {
		g, err := NewGame(NewPlayer("a", Red), NewPlayer("b", Blue), WithRules(NewRulesWithBarrierLifetime(4)))
		require.NoError(t, err)
		require.Equal(t, 4, g.Rules().BarrierTurns())
	})
}

func TestGameSwitchPlayer(t *testing.T) {
	g, p1, p2 := newStartedGame(t)
	require.Same(t, p2, g.SwitchPlayer())
	require.Same(t, p1, g.SwitchPlayer())
	require.Same(t, p2, g.Opponent(p1))
	require.Same(t, p1, g.Opponent(p2))
}

func TestGamePlacePiece(t *testing.T) {
	t.Run("places and passes the turn", func(t *testing.T) {
		g, p1, p2 := newStartedGame(t)
		require.True(t, g.PlacePiece(1, 1))
		require.True(t, g.Board().Get(1, 1).Holds(Red))
		require.Equal(t, MAX_PIECES-1, p1.Pieces())
		require.Same(t, p2, g.CurrentPlayer())
	})

	t.Run("refused on a closed cell", func(t *testing.T) {
		g, p1, _ := newStartedGame(t)
		require.False(t, g.PlacePiece(0, 0))
		require.Equal(t, MAX_PIECES, p1.Pieces())
		require.Same(t, p1, g.CurrentPlayer())
	})

	t.Run("refused without pieces left", func(t *testing.T) {
		g, p1, _ := newStartedGame(t)
		placeAll(t, g,
			[]Pos{{Col: 0, Row: 1}, {Col: 1, Row: 0}, {Col: 3, Row: 2}},
			[]Pos{{Col: 2, Row: 0}, {Col: 0, Row: 3}, {Col: 1, Row: 2}})
		require.Equal(t, 0, p1.Pieces())
		require.ErrorIs(t, g.Apply(NewPlacement(Pos{Col: 2, Row: 2})), ErrInvalidPlacement)
	})

	t.Run("refused once the board is inactive", func(t *testing.T) {
		g, _, _ := newStartedGame(t)
		g.Board().Deactivate()
		require.False(t, g.PlacePiece(1, 1))
		require.ErrorIs(t, g.Apply(NewPlacement(Pos{Col: 1, Row: 1})), ErrGameOver)
	})
}

func TestGamePlacePieceInverse(t *testing.T) {
	g, p1, _ := newStartedGame(t)
	board := *g.Board()
	pieces := p1.Pieces()
	before := g.Hash()

	require.True(t, g.PlacePiece(2, 1))
	g.Board().RemovePiece(2, 1)
	p1.AddPiece()
	require.Same(t, p1, g.SwitchPlayer())

	require.Equal(t, board, *g.Board())
	require.Equal(t, pieces, p1.Pieces())
	require.Equal(t, before, g.Hash())
}

func TestGamePlaceBarrier(t *testing.T) {
	g, p1, _ := newStartedGame(t)

	require.True(t, g.PlaceBarrier(2, 1))
	require.Same(t, p1, g.CurrentPlayer(), "Barriers do not pass the turn")
	require.Equal(t, MAX_BARRIERS-1, p1.Barriers())
	require.False(t, g.Board().IsAccessible(2, 1))
	require.Equal(t, DefaultBarrierTurns, g.Board().Get(1, 2).Turns)

	require.True(t, g.PlaceBarrier(2, 2))
	require.False(t, g.PlaceBarrier(1, 2), "Stock is exhausted")
	require.Equal(t, 0, p1.Barriers())
}

func TestGameMovePiece(t *testing.T) {
	p1Cells := []Pos{{Col: 0, Row: 1}, {Col: 1, Row: 0}, {Col: 3, Row: 2}}
	p2Cells := []Pos{{Col: 2, Row: 0}, {Col: 0, Row: 3}, {Col: 1, Row: 2}}

	t.Run("refused while pieces remain", func(t *testing.T) {
		g, _, _ := newStartedGame(t)
		require.True(t, g.PlacePiece(1, 1))
		require.NotNil(t, g.SwitchPlayer())
		require.False(t, g.MovePiece(1, 1, 2, 1))
		require.ErrorIs(t, g.Apply(NewMovement(Pos{Col: 1, Row: 1}, Pos{Col: 2, Row: 1})), ErrInvalidMovement)
	})

	t.Run("moves own piece after placement", func(t *testing.T) {
		g, _, p2 := newStartedGame(t)
		placeAll(t, g, p1Cells, p2Cells)
		require.True(t, g.MovePiece(3, 2, 2, 2))
		require.True(t, g.Board().Get(2, 2).Holds(Red))
		require.Same(t, p2, g.CurrentPlayer())
	})

	t.Run("refuses opponent pieces", func(t *testing.T) {
		g, _, _ := newStartedGame(t)
		placeAll(t, g, p1Cells, p2Cells)
		require.False(t, g.MovePiece(1, 2, 2, 2))
		require.True(t, g.Board().Get(2, 1).Holds(Blue))
	})
}

func TestGameSelection(t *testing.T) {
	g, _, _ := newStartedGame(t)
	require.True(t, g.PlacePiece(1, 1))
	g.SwitchPlayer()

	require.False(t, g.SelectPiece(2, 2), "Empty cells cannot be selected")
	require.True(t, g.SelectPiece(1, 1))
	pos, ok := g.SelectedPiece()
	require.True(t, ok)
	require.Equal(t, Pos{Col: 1, Row: 1}, pos)

	require.False(t, g.SelectPiece(1, 1), "Selecting again toggles off")
	_, ok = g.SelectedPiece()
	require.False(t, ok)

	require.True(t, g.SelectPiece(1, 1))
	g.UnselectPiece()
	_, ok = g.SelectedPiece()
	require.False(t, ok)
}

func TestGameCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		cells []Pos
	}{
		{"row", []Pos{{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0}}},
		{"column", []Pos{{Col: 2, Row: 1}, {Col: 2, Row: 2}, {Col: 2, Row: 3}}},
		{"down-right diagonal", []Pos{{Col: 1, Row: 0}, {Col: 2, Row: 1}, {Col: 3, Row: 2}}},
		{"down-left diagonal", []Pos{{Col: 3, Row: 0}, {Col: 2, Row: 1}, {Col: 1, Row: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newStartedGame(t)
			require.Equal(t, "", g.CheckWinner())
			for _, pos := range tt.cells {
				require.True(t, g.Board().PlacePiece(pos.Col, pos.Row, Blue))
			}
			require.Equal(t, "Morris BI", g.CheckWinner())
			require.Equal(t, Blue, g.WinnerColor())
			require.True(t, g.IsOver())
		})
	}

	t.Run("broken line does not win", func(t *testing.T) {
		g, _, _ := newStartedGame(t)
		require.True(t, g.Board().PlacePiece(1, 0, Blue))
		require.True(t, g.Board().PlacePiece(2, 0, Red))
		require.True(t, g.Board().PlacePiece(3, 0, Blue))
		require.Equal(t, "", g.CheckWinner())
		require.False(t, g.IsOver())
	})

	t.Run("every window is checked", func(t *testing.T) {
		require.Len(t, WinLines, 24)
	})
}

func TestGameLegalMoves(t *testing.T) {
	t.Run("opening moves", func(t *testing.T) {
		g, p1, p2 := newStartedGame(t)
		open := Size*Size - 2
		require.Len(t, g.GetLegalMoves(p1), 2*open, "Placements and barriers on every open cell")
		require.Len(t, g.GetLegalMoves(p2), 2*open)
		require.Len(t, g.GetPossiblePiecesPlaces(), open)
		require.Len(t, g.GetPossibleBarrierPlacements(), open)
	})

	t.Run("placements are row-major", func(t *testing.T) {
		g, _, _ := newStartedGame(t)
		places := g.GetPossiblePiecesPlaces()
		require.Equal(t, Pos{Col: 1, Row: 0}, places[0])
		require.Equal(t, Pos{Col: 2, Row: 3}, places[len(places)-1])
	})

	t.Run("movement phase", func(t *testing.T) {
		g, p1, _ := newStartedGame(t)
		placeAll(t, g,
			[]Pos{{Col: 0, Row: 1}, {Col: 1, Row: 0}, {Col: 3, Row: 2}},
			[]Pos{{Col: 2, Row: 0}, {Col: 0, Row: 3}, {Col: 1, Row: 2}})
		require.True(t, g.PlaceBarrier(1, 1))
		require.True(t, g.PlaceBarrier(2, 2))

		moves := g.GetLegalMoves(p1)
		for _, m := range moves {
			require.Equal(t, MovePiece, m.Kind, "No stock left: only movements")
		}
		require.ElementsMatch(t, []Move{
			NewMovement(Pos{Col: 0, Row: 1}, Pos{Col: 0, Row: 2}),
			NewMovement(Pos{Col: 1, Row: 0}, Pos{Col: 2, Row: 1}),
			NewMovement(Pos{Col: 3, Row: 2}, Pos{Col: 2, Row: 1}),
			NewMovement(Pos{Col: 3, Row: 2}, Pos{Col: 3, Row: 1}),
			NewMovement(Pos{Col: 3, Row: 2}, Pos{Col: 2, Row: 3}),
		}, moves)
	})
}

func TestGameSnapshotRestore(t *testing.T) {
	g, p1, _ := newStartedGame(t)
	require.True(t, g.PlacePiece(1, 1))
	before := g.Hash()

	for _, m := range g.GetLegalMoves(g.CurrentPlayer()) {
		snapshot := g.Snapshot()
		require.NoError(t, g.Apply(m))
		require.NotEqual(t, before, g.Hash(), "Move %s should change the position", m)
		g.Restore(snapshot)
		require.Equal(t, before, g.Hash(), "Restore should undo %s", m)
	}
	require.Equal(t, MAX_PIECES-1, p1.Pieces(), "Player pointers stay live across restores")
}

func TestGameApplyTurn(t *testing.T) {
	t.Run("barriers then a placement", func(t *testing.T) {
		g, p1, p2 := newStartedGame(t)
		turn := Turn{
			Barriers: []Pos{{Col: 2, Row: 1}},
			Action:   NewPlacement(Pos{Col: 1, Row: 1}),
		}
		require.NoError(t, g.ApplyTurn(turn))
		require.Equal(t, MAX_BARRIERS-1, p1.Barriers())
		require.Equal(t, MAX_PIECES-1, p1.Pieces())
		require.Same(t, p2, g.CurrentPlayer())
	})

	t.Run("failed action rolls back the barriers", func(t *testing.T) {
		g, p1, _ := newStartedGame(t)
		before := g.Hash()
		turn := Turn{
			Barriers: []Pos{{Col: 2, Row: 1}},
			Action:   NewPlacement(Pos{Col: 2, Row: 1}),
		}
		require.ErrorIs(t, g.ApplyTurn(turn), ErrInvalidPlacement)
		require.Equal(t, before, g.Hash())
		require.Equal(t, MAX_BARRIERS, p1.Barriers())
		require.Same(t, p1, g.CurrentPlayer())
	})

	t.Run("turn must end with a piece action", func(t *testing.T) {
		g, _, _ := newStartedGame(t)
		require.ErrorIs(t, g.ApplyTurn(Turn{Action: NewBarrier(Pos{Col: 1, Row: 1})}), ErrInvalidPlacement)
	})
}

func TestGameCopy(t *testing.T) {
	g, p1, _ := newStartedGame(t)
	c := g.Copy()

	require.Equal(t, g.Hash(), c.Hash())
	require.True(t, c.PlacePiece(1, 1))
	require.NotEqual(t, g.Hash(), c.Hash())
	require.Equal(t, MAX_PIECES, p1.Pieces(), "Copy owns its players")
	require.True(t, g.Board().Get(1, 1).IsEmpty())

	// Players from the copy resolve to the same seat in the original
	require.Same(t, g.Player2(), g.Opponent(c.Player1()))
}

func TestGameTick(t *testing.T) {
	g, _, _ := newStartedGame(t)
	require.True(t, g.PlaceBarrier(2, 1))
	require.True(t, g.PlacePiece(1, 1))

	require.Empty(t, g.Tick())
	require.Len(t, g.Barriers(), 1)
	require.Equal(t, []Pos{{Col: 2, Row: 1}}, g.Tick())
	require.Empty(t, g.Barriers())
	require.True(t, g.Board().IsAccessible(2, 1))
}
