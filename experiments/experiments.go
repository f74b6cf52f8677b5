package experiments

import (
	"fmt"
	"path/filepath"

	"antics/agent"
	"antics/config"
	"antics/engine"
	"antics/experiments/metrics"
	"antics/game"
	"antics/learning"
	"antics/policy"

	"github.com/rs/zerolog/log"
)

// RunTraining plays cfg.Games games between two learning agents and writes the results.
func RunTraining(cfg config.Config) ([]engine.GameResult, error) {
	kind, err := policy.ParseKind(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	mode, ok := engine.ParseMode(cfg.Mode)
	if !ok {
		return nil, fmt.Errorf("unknown learning mode %q", cfg.Mode)
	}

	var agents []*agent.Agent
	for _, player := range []int{game.PlayerOne, game.PlayerTwo} {
		persister, closer, err := newPersister(cfg, player)
		if err != nil {
			return nil, err
		}
		defer closer()
		agents = append(agents, agent.New(player,
			agent.WithStrategy(kind),
			agent.WithPersister(persister),
			agent.WithStoreOptions(storeOptions(cfg)...),
			agent.WithSeed(cfg.Seed+uint64(player)),
			agent.WithLearnerOptions(learning.WithLearningRate(cfg.Alpha), learning.WithDiscount(cfg.Gamma)),
		))
	}

	e := engine.LocalEngine(agents, engine.WithMaxTurns(cfg.MaxTurns), engine.WithMode(mode))
	results := make([]engine.GameResult, 0, cfg.Games)
	wins := [2]int{}
	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("game %d started...", i+1)
		result, err := e.Run()
		if err != nil {
			return results, fmt.Errorf("game %d: %w", i+1, err)
		}
		if result.Winner != engine.NoWinner {
			wins[result.Winner]++
		}
		results = append(results, result)
	}
	log.Info().Ints("wins", wins[:]).Int("games", cfg.Games).Msg("finished training")

	w, err := metrics.NewWriter(cfg.ResultsDir, "training")
	if err != nil {
		return results, err
	}
	if err := w.WriteGameResults(results); err != nil {
		return results, err
	}
	return results, nil
}

// storeOptions picks the near-duplicate test: the literal every-field-differs rule, or equal
// features.
func storeOptions(cfg config.Config) []learning.StoreOption {
	if cfg.Match == "features" {
		return []learning.StoreOption{learning.WithDuplicateTest(learning.SameFeatures)}
	}
	return nil
}

func newPersister(cfg config.Config, player int) (learning.Persister, func(), error) {
	dir := filepath.Join(cfg.StoreDir, fmt.Sprintf("player%d", player))
	if cfg.Backend == "sqlite" {
		p, err := learning.NewSQLitePersister(filepath.Join(dir, "values.db"))
		if err != nil {
			return nil, nil, err
		}
		return p, func() {
			if err := p.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close store database")
			}
		}, nil
	}
	return learning.NewFilePersister(dir, cfg.StoreExt, "values"), func() {}, nil
}
