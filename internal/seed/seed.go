package seed

import (
	"fmt"
	"time"

	"github.com/electionlab/poll-data/internal/model"
)

// Entry is one prior-election result used as a pseudo-poll.
type Entry struct {
	Unit    string `yaml:"unit"`    // Unit code
	Margin  int    `yaml:"margin"`  // Verified margin, first candidate minus second
	Turnout int    `yaml:"turnout"` // Votes cast, used as the pseudo-poll's sample size
}

// Table is the full seed configuration.
type Table struct {
	Label   string  `yaml:"label"`   // Pollster label for the pseudo-polls, e.g. "Election 2008"
	Date    string  `yaml:"date"`    // Field date (YYYY-MM-DD) given to every pseudo-poll
	Entries []Entry `yaml:"entries"` // One entry per unit lacking early polling
}

// Polls converts the table into one pseudo-poll per unit, keyed by unit
// code. Pseudo-polls look like any other poll: single-day field period,
// turnout as sample size, no external id (they never pass through
// deduplication). The backfill consults them only for (unit, day) pairs
// with no eligible real polls.
func Polls(t Table) (map[string]model.PollRecord, error) {
	if len(t.Entries) == 0 {
		return nil, nil
	}

	day, err := time.ParseInLocation("2006-01-02", t.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse seed date: %w", err)
	}

	polls := make(map[string]model.PollRecord, len(t.Entries))
	for _, e := range t.Entries {
		if !model.IsUnit(e.Unit) {
			return nil, fmt.Errorf("seed entry for unknown unit %q", e.Unit)
		}
		if e.Turnout <= 0 {
			return nil, fmt.Errorf("seed entry for %s has no turnout", e.Unit)
		}
		if _, dup := polls[e.Unit]; dup {
			return nil, fmt.Errorf("duplicate seed entry for %s", e.Unit)
		}
		polls[e.Unit] = model.PollRecord{
			Unit:       e.Unit,
			Pollster:   t.Label,
			Margin:     e.Margin,
			SampleSize: e.Turnout,
			StartDate:  day,
			EndDate:    day,
			MidDate:    model.MidDate(day, day),
		}
	}
	return polls, nil
}
