package learning

// Store is the insertion-ordered collection of snapshots an agent has learned values for.
// Records are never removed.
type Store struct {
	records   []*Snapshot
	duplicate MatchFunc
	same      MatchFunc
}

type StoreOption func(s *Store)

// WithDuplicateTest replaces the near-duplicate test used by Consolidate.
func WithDuplicateTest(match MatchFunc) StoreOption {
	return func(s *Store) {
		if match != nil {
			s.duplicate = match
		}
	}
}

// WithLookupTest replaces the test used by Lookup.
func WithLookupTest(match MatchFunc) StoreOption {
	return func(s *Store) {
		if match != nil {
			s.same = match
		}
	}
}

func NewStore(options ...StoreOption) *Store {
	s := &Store{
		duplicate: AllFieldsDiffer,
		same:      SameFeatures,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the stored snapshots in insertion order. The snapshots are shared.
func (s *Store) Records() []*Snapshot {
	return s.records
}

func (s *Store) Append(snap *Snapshot) {
	s.records = append(s.records, snap)
}

// FindMatch returns the first record the near-duplicate test says already represents snap.
func (s *Store) FindMatch(snap *Snapshot) (*Snapshot, bool) {
	return s.find(s.duplicate, snap)
}

// Lookup returns the first record with the same features as snap.
func (s *Store) Lookup(snap *Snapshot) (*Snapshot, bool) {
	return s.find(s.same, snap)
}

// Consolidate appends snap unless it is already represented, and reports whether it did.
func (s *Store) Consolidate(snap *Snapshot) bool {
	if _, ok := s.FindMatch(snap); ok {
		return false
	}
	s.Append(snap)
	return true
}

func (s *Store) find(match MatchFunc, snap *Snapshot) (*Snapshot, bool) {
	for _, r := range s.records {
		if match(r, snap) {
			return r, true
		}
	}
	return nil, false
}
