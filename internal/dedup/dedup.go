package dedup

// SeenSet tracks the feed-assigned poll ids observed during one ingest
// run. Create one per run with NewSeenSet so repeated runs (and tests)
// never share state.
type SeenSet struct {
	ids map[int64]struct{}
}

// NewSeenSet returns an empty run-scoped set.
func NewSeenSet() *SeenSet {
	return &SeenSet{ids: make(map[int64]struct{})}
}

// Observe records id and reports whether this is its first sighting.
// Every repeat returns false, so a poll resent on a later feed page is
// never double-counted.
func (s *SeenSet) Observe(id int64) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Len returns the number of distinct ids observed so far.
func (s *SeenSet) Len() int {
	return len(s.ids)
}
