package learning

import (
	"math"
	"testing"

	"antics/game"
	"antics/meta"

	"github.com/stretchr/testify/require"
)

func c(x, y int) game.Coord {
	return game.Coord{X: x, Y: y}
}

// baseBoard is a play-phase board where nobody has won yet.
func baseBoard() *game.Board {
	return game.NewBoard().
		SetPhase(game.PlayPhase).
		AddStructure(game.Structure{Coords: c(0, 0), Type: game.Anthill, Owner: game.PlayerOne}).
		AddStructure(game.Structure{Coords: c(5, 2), Type: game.Tunnel, Owner: game.PlayerOne}).
		AddStructure(game.Structure{Coords: c(9, 9), Type: game.Anthill, Owner: game.PlayerTwo}).
		AddStructure(game.Structure{Coords: c(4, 7), Type: game.Tunnel, Owner: game.PlayerTwo}).
		SetFood(game.PlayerOne, 1).
		SetFood(game.PlayerTwo, 1)
}

func withQueens(b *game.Board) *game.Board {
	return b.
		AddUnit(game.Unit{Coords: c(0, 0), Type: game.Queen, Owner: game.PlayerOne}).
		AddUnit(game.Unit{Coords: c(9, 9), Type: game.Queen, Owner: game.PlayerTwo})
}

func TestAbstract(t *testing.T) {
	t.Run("collects counts and skewed distances", func(t *testing.T) {
		board := baseBoard().
			SetFood(game.PlayerOne, 3).
			SetFood(game.PlayerTwo, 2).
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Queen, Owner: game.PlayerOne}).
			AddUnit(game.Unit{Coords: c(5, 3), Type: game.Worker, Owner: game.PlayerOne}).
			AddUnit(game.Unit{Coords: c(9, 9), Type: game.Queen, Owner: game.PlayerTwo}).
			AddUnit(game.Unit{Coords: c(2, 2), Type: game.Drone, Owner: game.PlayerOne}).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo}).
			AddUnit(game.Unit{Coords: c(7, 6), Type: game.Soldier, Owner: game.PlayerTwo})

		got := NewAbstractor(1).Abstract(board, game.PlayerOne)

		require.Equal(t, 3, got.OwnFood)
		require.Equal(t, 2, got.EnemyFood)
		require.Equal(t, 1, got.OwnNonWorkers, "Only the drone is a non-worker")
		require.Equal(t, 1, got.EnemyNonWorkers, "Only the soldier is a non-worker")
		require.InDeltaSlice(t, []float64{math.Sqrt(3), 1, math.Sqrt(3)}, got.TunnelDistances, 1e-12)
		require.InDeltaSlice(t, []float64{1}, got.QueenDistances, 1e-12,
			"Approach distance is measured from the last owned unit")
	})

	t.Run("winning state is seeded with the win sentinel", func(t *testing.T) {
		board := baseBoard().
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Queen, Owner: game.PlayerOne}).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo})

		got := NewAbstractor(1).Abstract(board, game.PlayerOne)

		require.Equal(t, meta.WIN_VALUE, got.Value)
	})

	t.Run("losing state is seeded with the loss sentinel", func(t *testing.T) {
		board := baseBoard().
			AddUnit(game.Unit{Coords: c(5, 3), Type: game.Worker, Owner: game.PlayerOne}).
			AddUnit(game.Unit{Coords: c(9, 9), Type: game.Queen, Owner: game.PlayerTwo})

		got := NewAbstractor(1).Abstract(board, game.PlayerOne)

		require.Equal(t, meta.LOSS_VALUE, got.Value)
	})

	t.Run("other states get a random integral seed", func(t *testing.T) {
		abstractor := NewAbstractor(7)
		board := withQueens(baseBoard()).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo})

		for i := 0; i < 50; i++ {
			got := abstractor.Abstract(board, game.PlayerOne).Value
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, float64(meta.SEED_MAX))
			require.Equal(t, math.Trunc(got), got)
		}
	})

	t.Run("no owned units means no approach distances", func(t *testing.T) {
		board := baseBoard().
			AddUnit(game.Unit{Coords: c(9, 9), Type: game.Queen, Owner: game.PlayerTwo}).
			AddUnit(game.Unit{Coords: c(7, 6), Type: game.Soldier, Owner: game.PlayerTwo})

		got := NewAbstractor(1).Abstract(board, game.PlayerOne)

		require.Empty(t, got.TunnelDistances)
		require.Empty(t, got.QueenDistances)
	})
}

func TestHasWon(t *testing.T) {
	t.Run("not during setup", func(t *testing.T) {
		board := baseBoard().SetPhase(game.SetupPhaseTwo)

		require.False(t, HasWon(board, game.PlayerOne), "Nobody wins before play starts")
	})

	t.Run("opponent queen is dead", func(t *testing.T) {
		board := baseBoard().
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Queen, Owner: game.PlayerOne}).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo})

		require.True(t, HasWon(board, game.PlayerOne))
		require.False(t, HasWon(board, game.PlayerTwo))
	})

	t.Run("opponent anthill is captured", func(t *testing.T) {
		board := game.NewBoard().
			SetPhase(game.PlayPhase).
			AddStructure(game.Structure{Coords: c(9, 9), Type: game.Anthill, Owner: game.PlayerTwo, CaptureHealth: -1}).
			SetFood(game.PlayerTwo, 1)
		board = withQueens(board).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo})

		require.True(t, HasWon(board, game.PlayerOne))
	})

	t.Run("food goal reached", func(t *testing.T) {
		board := withQueens(baseBoard()).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo}).
			SetFood(game.PlayerOne, game.FoodGoal)

		require.True(t, HasWon(board, game.PlayerOne))
	})

	t.Run("opponent starved down to one unit", func(t *testing.T) {
		board := withQueens(baseBoard()).SetFood(game.PlayerTwo, 0)

		require.True(t, HasWon(board, game.PlayerOne))
		require.False(t, HasWon(board, game.PlayerTwo), "Player one still has food")
	})

	t.Run("ongoing game", func(t *testing.T) {
		board := withQueens(baseBoard()).
			AddUnit(game.Unit{Coords: c(8, 8), Type: game.Worker, Owner: game.PlayerTwo}).
			AddUnit(game.Unit{Coords: c(1, 1), Type: game.Worker, Owner: game.PlayerOne})

		require.False(t, HasWon(board, game.PlayerOne))
		require.False(t, HasWon(board, game.PlayerTwo))
	})
}

func TestFoodOnSide(t *testing.T) {
	board := baseBoard().
		AddStructure(game.Structure{Coords: c(1, 3), Type: game.Food}).
		AddStructure(game.Structure{Coords: c(1, 4), Type: game.Food}).
		AddStructure(game.Structure{Coords: c(1, 8), Type: game.Food})

	own := FoodOnSide(board, game.PlayerOne)

	require.Len(t, own, 1)
	require.Equal(t, c(1, 3), own[0].Coords)
	require.Len(t, FoodOnSide(board, game.PlayerTwo), 1)
}
