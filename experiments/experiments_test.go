package experiments

import (
	"path/filepath"
	"testing"

	"antics/config"
	"antics/learning"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	root := t.TempDir()
	cfg.Games = 2
	cfg.MaxTurns = 8
	cfg.StoreDir = filepath.Join(root, "stores")
	cfg.ResultsDir = filepath.Join(root, "results")
	return cfg
}

func TestRunTraining(t *testing.T) {
	t.Run("file backend", func(t *testing.T) {
		cfg := testConfig(t)

		results, err := RunTraining(cfg)

		require.NoError(t, err)
		require.Len(t, results, 2)
		require.FileExists(t, filepath.Join(cfg.StoreDir, "player0", "values.csv"))
		matches, err := filepath.Glob(filepath.Join(cfg.ResultsDir, "training", "*", "game_results.csv"))
		require.NoError(t, err)
		require.Len(t, matches, 1)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Backend = "sqlite"
		cfg.Mode = "episode"

		results, err := RunTraining(cfg)

		require.NoError(t, err)
		require.Len(t, results, 2)
		require.FileExists(t, filepath.Join(cfg.StoreDir, "player1", "values.db"))
	})

	t.Run("stores grow across games", func(t *testing.T) {
		cfg := testConfig(t)

		results, err := RunTraining(cfg)

		require.NoError(t, err)
		require.GreaterOrEqual(t, results[1].StoreSizes[0], results[0].StoreSizes[0])
	})

	t.Run("feature match never stores a state twice", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Games = 1
		cfg.Match = "features"

		_, err := RunTraining(cfg)
		require.NoError(t, err)

		p := learning.NewFilePersister(filepath.Join(cfg.StoreDir, "player0"), cfg.StoreExt, "values")
		store, err := p.Load()
		require.NoError(t, err)
		records := store.Records()
		for i := range records {
			for j := i + 1; j < len(records); j++ {
				require.False(t, learning.SameFeatures(records[i], records[j]), "records %d and %d", i, j)
			}
		}
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Strategy = "random"

		_, err := RunTraining(cfg)

		require.Error(t, err)
	})
}
