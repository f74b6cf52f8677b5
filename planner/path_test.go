package planner

import (
	"testing"

	"antics/game"

	"github.com/stretchr/testify/require"
)

func playBoard() *game.Board {
	return game.NewBoard().SetPhase(game.PlayPhase).SetTurn(game.PlayerOne)
}

func c(x, y int) game.Coord {
	return game.Coord{X: x, Y: y}
}

func TestPlan(t *testing.T) {
	t.Run("walks toward the target within the movement budget", func(t *testing.T) {
		board := playBoard().AddUnit(game.Unit{Coords: c(0, 0), Type: game.Worker})

		got := Plan(board, c(0, 0), c(5, 0), 2)

		require.Equal(t, []game.Coord{c(0, 0), c(1, 0), c(2, 0)}, got.Path)
		require.Empty(t, got.Blockers)
		require.LessOrEqual(t, got.Cost(board), 2, "Path should never exceed the budget")
	})

	t.Run("skips steps it cannot afford", func(t *testing.T) {
		board := playBoard().
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Worker}).
			AddStructure(game.Structure{Coords: c(1, 0), Type: game.Grass})

		got := Plan(board, c(0, 0), c(5, 0), 1)

		require.Equal(t, []game.Coord{c(0, 0)}, got.Path, "Grass costs more than the remaining budget")
	})

	t.Run("pays structure costs", func(t *testing.T) {
		board := playBoard().
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Worker}).
			AddStructure(game.Structure{Coords: c(1, 0), Type: game.Grass})

		got := Plan(board, c(0, 0), c(5, 0), 3)

		require.Equal(t, []game.Coord{c(0, 0), c(1, 0), c(2, 0)}, got.Path)
		require.Equal(t, 3, got.Cost(board))
	})

	t.Run("stops at the first opposing unit", func(t *testing.T) {
		enemy := game.Unit{Coords: c(1, 0), Type: game.Soldier, Owner: game.PlayerTwo, Health: 4}
		board := playBoard().
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Drone}).
			AddUnit(enemy)

		got := Plan(board, c(0, 0), c(5, 0), 3)

		require.Equal(t, []game.Coord{c(0, 0), c(1, 0)}, got.Path, "Path should be truncated at the enemy")
		require.Equal(t, []game.Unit{enemy}, got.Blockers)
	})

	t.Run("continues past units of the planning side", func(t *testing.T) {
		ally := game.Unit{Coords: c(1, 0), Type: game.Worker, Health: 2}
		board := playBoard().
			AddUnit(game.Unit{Coords: c(0, 0), Type: game.Drone}).
			AddUnit(ally)

		got := Plan(board, c(0, 0), c(5, 0), 3)

		require.Equal(t, []game.Coord{c(0, 0), c(1, 0), c(2, 0), c(3, 0)}, got.Path)
		require.Equal(t, []game.Unit{ally}, got.Blockers)
	})

	t.Run("planning side follows the unit at the source", func(t *testing.T) {
		board := playBoard().
			SetTurn(game.PlayerOne).
			AddUnit(game.Unit{Coords: c(0, 9), Type: game.Drone, Owner: game.PlayerTwo}).
			AddUnit(game.Unit{Coords: c(1, 9), Type: game.Worker, Owner: game.PlayerTwo})

		got := Plan(board, c(0, 9), c(5, 9), 3)

		require.Len(t, got.Path, 4, "A same-side unit should not end the path")
		require.Len(t, got.Blockers, 1)
	})

	t.Run("zero budget yields the source only", func(t *testing.T) {
		got := Plan(playBoard(), c(3, 3), c(5, 5), 0)

		require.Equal(t, []game.Coord{c(3, 3)}, got.Path)
	})

	t.Run("adjacent target is entered and the walk ends there", func(t *testing.T) {
		got := Plan(playBoard(), c(0, 0), c(1, 0), 5)

		require.Equal(t, []game.Coord{c(0, 0), c(1, 0)}, got.Path)
	})

	t.Run("ties are broken by adjacency order", func(t *testing.T) {
		// (1,0) and (0,1) both improve on the distance to (2,2); right comes before down
		got := Plan(playBoard(), c(0, 0), c(2, 2), 1)

		require.Equal(t, []game.Coord{c(0, 0), c(1, 0)}, got.Path)
	})
}

func TestUsable(t *testing.T) {
	board := playBoard().AddUnit(game.Unit{Coords: c(2, 0), Type: game.Worker})

	got := Usable(board, []game.Coord{c(0, 0), c(1, 0), c(2, 0), c(3, 0)})

	require.Equal(t, []game.Coord{c(0, 0), c(1, 0)}, got, "Path should stop before the occupied cell")
}

func TestPathCost(t *testing.T) {
	board := playBoard().AddStructure(game.Structure{Coords: c(1, 0), Type: game.Grass})

	t.Run("short paths cost nothing", func(t *testing.T) {
		require.Zero(t, PathCost(board, []game.Coord{c(0, 0), c(1, 0)}))
	})

	t.Run("loops cost nothing", func(t *testing.T) {
		require.Zero(t, PathCost(board, []game.Coord{c(0, 0), c(1, 0), c(1, 1), c(0, 0)}))
	})

	t.Run("counts every cell including the source", func(t *testing.T) {
		require.Equal(t, 4, PathCost(board, []game.Coord{c(0, 0), c(1, 0), c(2, 0)}))
	})
}
