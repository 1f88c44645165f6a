package store

import (
	"sort"
	"time"

	"github.com/electionlab/poll-data/internal/model"
)

// UnitPollStore maps unit codes to their ingested polls. The zero value
// is not usable; create one per run with New.
type UnitPollStore struct {
	polls map[string][]model.PollRecord
}

// New returns an empty store.
func New() *UnitPollStore {
	return &UnitPollStore{polls: make(map[string][]model.PollRecord)}
}

// Add appends a poll to its unit's collection.
func (s *UnitPollStore) Add(rec model.PollRecord) {
	s.polls[rec.Unit] = append(s.polls[rec.Unit], rec)
}

// Polls returns the stored polls for a unit in insertion order.
func (s *UnitPollStore) Polls(unit string) []model.PollRecord {
	return s.polls[unit]
}

// EndedBefore returns a copy of the unit's polls whose field period
// ended strictly before day, sorted most recent end date first. The
// underlying collection is left untouched.
func (s *UnitPollStore) EndedBefore(unit string, day time.Time) []model.PollRecord {
	var out []model.PollRecord
	for _, p := range s.polls[unit] {
		if p.EndDate.Before(day) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndDate.After(out[j].EndDate)
	})
	return out
}

// Counts returns the number of stored polls per unit.
func (s *UnitPollStore) Counts() map[string]int {
	counts := make(map[string]int, len(s.polls))
	for unit, polls := range s.polls {
		counts[unit] = len(polls)
	}
	return counts
}

// Total returns the number of stored polls across all units.
func (s *UnitPollStore) Total() int {
	total := 0
	for _, polls := range s.polls {
		total += len(polls)
	}
	return total
}
