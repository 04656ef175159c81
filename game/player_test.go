package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerStock(t *testing.T) {
	p := NewPlayer("Player 1", Green)
	require.Equal(t, MAX_PIECES, p.Pieces())
	require.Equal(t, MAX_BARRIERS, p.Barriers())

	t.Run("pieces run out", func(t *testing.T) {
		for i := 0; i < MAX_PIECES; i++ {
			require.True(t, p.RemovePiece())
		}
		require.False(t, p.HasPieces())
		require.False(t, p.RemovePiece(), "Stock cannot go negative")
		require.Equal(t, 0, p.Pieces())
	})

	t.Run("add restores up to the maximum", func(t *testing.T) {
		for i := 0; i < MAX_PIECES+2; i++ {
			p.AddPiece()
		}
		require.Equal(t, MAX_PIECES, p.Pieces())
	})

	t.Run("barriers run out", func(t *testing.T) {
		require.True(t, p.RemoveBarrier())
		require.True(t, p.RemoveBarrier())
		require.False(t, p.RemoveBarrier())
		p.AddBarrier()
		require.Equal(t, 1, p.Barriers())
	})

	require.Equal(t, "Player 1(green)", p.String())
}
