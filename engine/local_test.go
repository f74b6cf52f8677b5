package engine

import (
	"path/filepath"
	"testing"

	"antics/agent"
	"antics/game"
	"antics/learning"
	"antics/policy"

	"github.com/stretchr/testify/require"
)

func agents(options ...agent.Option) []*agent.Agent {
	return []*agent.Agent{
		agent.New(game.PlayerOne, options...),
		agent.New(game.PlayerTwo, options...),
	}
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]*agent.Agent{agent.New(game.PlayerOne)})
		})
	})

	t.Run("panics when seats are swapped", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]*agent.Agent{agent.New(game.PlayerTwo), agent.New(game.PlayerOne)})
		})
	})
}

func TestRun(t *testing.T) {
	t.Run("plays a capped game with per-step learning", func(t *testing.T) {
		e := LocalEngine(agents(agent.WithStrategy(policy.HeuristicKind)), WithMaxTurns(20))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.PlayPhase, e.Board.Phase(), "Setup should have completed")
		require.Positive(t, result.Moves)
		require.LessOrEqual(t, result.Turns, 20)
		require.Positive(t, result.StoreSizes[0], "Agents consolidate the states they see")
		require.Positive(t, result.StoreSizes[1])
		require.False(t, result.EndTime.Before(result.StartTime))
	})

	t.Run("learns once per episode", func(t *testing.T) {
		e := LocalEngine(agents(agent.WithStrategy(policy.CombinedKind)), WithMaxTurns(10), WithMode(PerEpisode))

		result, err := e.Run()

		require.NoError(t, err)
		require.LessOrEqual(t, result.Turns, 10)
	})

	t.Run("flushes stores at the end of the game", func(t *testing.T) {
		dir := t.TempDir()
		players := []*agent.Agent{
			agent.New(game.PlayerOne, agent.WithPersister(
				learning.NewFilePersister(filepath.Join(dir, "0"), ".csv", "values"))),
			agent.New(game.PlayerTwo, agent.WithPersister(
				learning.NewFilePersister(filepath.Join(dir, "1"), ".csv", "values"))),
		}

		result, err := LocalEngine(players, WithMaxTurns(5)).Run()

		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "0", "values.csv"))
		require.FileExists(t, filepath.Join(dir, "1", "values.csv"))
		restored, err := learning.NewFilePersister(filepath.Join(dir, "0"), ".csv", "values").Load()
		require.NoError(t, err)
		require.Equal(t, result.StoreSizes[0], restored.Len())
	})
}

func TestParseMode(t *testing.T) {
	mode, ok := ParseMode("episode")
	require.True(t, ok)
	require.Equal(t, PerEpisode, mode)

	_, ok = ParseMode("sometimes")
	require.False(t, ok)
}
