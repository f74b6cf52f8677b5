package learning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func snapshot() *Snapshot {
	return &Snapshot{
		Value:           10,
		OwnFood:         1,
		EnemyFood:       2,
		OwnNonWorkers:   0,
		EnemyNonWorkers: 1,
		TunnelDistances: []float64{1, 2},
		QueenDistances:  []float64{3},
	}
}

// opposite differs from snapshot() on every field
func opposite() *Snapshot {
	return &Snapshot{
		Value:           20,
		OwnFood:         4,
		EnemyFood:       5,
		OwnNonWorkers:   2,
		EnemyNonWorkers: 3,
		TunnelDistances: []float64{7, 8, 9},
		QueenDistances:  []float64{6},
	}
}

func TestAllFieldsDiffer(t *testing.T) {
	t.Run("matches when every field differs", func(t *testing.T) {
		require.True(t, AllFieldsDiffer(snapshot(), opposite()))
	})

	t.Run("identical snapshots do not match", func(t *testing.T) {
		require.False(t, AllFieldsDiffer(snapshot(), snapshot()))
	})

	mutations := map[string]func(s *Snapshot){
		"own food":          func(s *Snapshot) { s.OwnFood = 1 },
		"enemy food":        func(s *Snapshot) { s.EnemyFood = 2 },
		"own non-workers":   func(s *Snapshot) { s.OwnNonWorkers = 0 },
		"enemy non-workers": func(s *Snapshot) { s.EnemyNonWorkers = 1 },
		"value":             func(s *Snapshot) { s.Value = 10 },
		"a tunnel distance": func(s *Snapshot) { s.TunnelDistances[1] = 2 },
		"a queen distance":  func(s *Snapshot) { s.QueenDistances[0] = 3 },
	}
	for name, mutate := range mutations {
		t.Run("one shared "+name+" breaks the match", func(t *testing.T) {
			candidate := opposite()
			mutate(candidate)
			require.False(t, AllFieldsDiffer(snapshot(), candidate))
		})
	}

	t.Run("unpaired distances are ignored", func(t *testing.T) {
		candidate := opposite()
		candidate.TunnelDistances = []float64{5}
		candidate.QueenDistances = nil
		require.True(t, AllFieldsDiffer(snapshot(), candidate))
	})
}

func TestSameFeatures(t *testing.T) {
	t.Run("ignores value", func(t *testing.T) {
		candidate := snapshot()
		candidate.Value = 99
		require.True(t, SameFeatures(snapshot(), candidate))
	})

	t.Run("distance lengths must agree", func(t *testing.T) {
		candidate := snapshot()
		candidate.TunnelDistances = append(candidate.TunnelDistances, 1)
		require.False(t, SameFeatures(snapshot(), candidate))
	})

	t.Run("counts must agree", func(t *testing.T) {
		candidate := snapshot()
		candidate.EnemyNonWorkers++
		require.False(t, SameFeatures(snapshot(), candidate))
	})
}
