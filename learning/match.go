package learning

import "golang.org/x/exp/slices"

// MatchFunc decides whether a stored snapshot stands for a candidate.
type MatchFunc func(stored, candidate *Snapshot) bool

// AllFieldsDiffer is the near-duplicate test used when consolidating: a stored snapshot
// represents the candidate only if the two disagree on every count, on every paired
// distance and on the value.
//
// XXX: this reads inverted from ordinary duplicate detection. It is kept as observed
// behaviour until the intended rule is confirmed; swap it with WithDuplicateTest.
func AllFieldsDiffer(stored, candidate *Snapshot) bool {
	if stored.OwnFood == candidate.OwnFood ||
		stored.EnemyFood == candidate.EnemyFood ||
		stored.OwnNonWorkers == candidate.OwnNonWorkers ||
		stored.EnemyNonWorkers == candidate.EnemyNonWorkers ||
		stored.Value == candidate.Value {
		return false
	}
	return allPairsDiffer(stored.TunnelDistances, candidate.TunnelDistances) &&
		allPairsDiffer(stored.QueenDistances, candidate.QueenDistances)
}

// SameFeatures matches snapshots whose features are identical. Value is not a feature.
func SameFeatures(stored, candidate *Snapshot) bool {
	return stored.OwnFood == candidate.OwnFood &&
		stored.EnemyFood == candidate.EnemyFood &&
		stored.OwnNonWorkers == candidate.OwnNonWorkers &&
		stored.EnemyNonWorkers == candidate.EnemyNonWorkers &&
		slices.Equal(stored.TunnelDistances, candidate.TunnelDistances) &&
		slices.Equal(stored.QueenDistances, candidate.QueenDistances)
}

// allPairsDiffer compares element-wise up to the shorter sequence.
func allPairsDiffer(a, b []float64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			return false
		}
	}
	return true
}
