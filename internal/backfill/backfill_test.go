package backfill

import (
	"strings"
	"testing"
	"time"

	"github.com/electionlab/poll-data/internal/model"
	"github.com/electionlab/poll-data/internal/seed"
	"github.com/electionlab/poll-data/internal/stats"
	"github.com/electionlab/poll-data/internal/store"
)

func day(d int) time.Time {
	return time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d-1)
}

func poll(unit string, id int64, endDay, margin, pop int) model.PollRecord {
	start := day(endDay)
	return model.PollRecord{
		ExternalID: id,
		Unit:       unit,
		Margin:     margin,
		SampleSize: pop,
		StartDate:  start,
		EndDate:    start,
		MidDate:    model.MidDate(start, start),
	}
}

// allSeeds returns a season-start pseudo-poll for every unit.
func allSeeds(t *testing.T) map[string]model.PollRecord {
	t.Helper()

	table := seed.Table{Label: "Election 2008", Date: "2012-01-01"}
	for _, u := range model.UnitsByName() {
		table.Entries = append(table.Entries, seed.Entry{Unit: u.Code, Margin: 5, Turnout: 100000})
	}

	seeds, err := seed.Polls(table)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return seeds
}

func TestRun_RealPollsDisplaceSeed(t *testing.T) {
	st := store.New()
	st.Add(poll("NJ", 1, 100, 5, 600))
	st.Add(poll("NJ", 2, 101, 7, 500))

	b := &Backfiller{Seeds: allSeeds(t)}
	rows, err := b.Run(st, model.UnitsByName(), day(102), day(102))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var nj model.StatRow
	for _, r := range rows {
		if r.Unit == "NJ" {
			nj = r
		}
	}

	// Exactly the two real polls; the seed stands in only when no real
	// poll is eligible.
	if nj.Count != 2 {
		t.Errorf("Count = %d, want 2", nj.Count)
	}
	if nj.Center != 6.0 {
		t.Errorf("Center = %v, want 6.0", nj.Center)
	}
	if nj.Spread != 3.0 {
		t.Errorf("Spread = %v, want 3.0 (two-poll floor)", nj.Spread)
	}
	if nj.OldestDay != 100 {
		t.Errorf("OldestDay = %d, want 100", nj.OldestDay)
	}
	if nj.Day != 102 {
		t.Errorf("Day = %d, want 102", nj.Day)
	}
}

func TestRun_SeedOnlyUnits(t *testing.T) {
	b := &Backfiller{Seeds: allSeeds(t)}
	rows, err := b.Run(store.New(), model.UnitsByName(), day(2), day(2))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Every unit falls back to its single pseudo-poll.
	for _, r := range rows {
		if r.Count != 1 {
			t.Fatalf("unit %s Count = %d, want 1", r.Unit, r.Count)
		}
		if r.Center != 5.0 {
			t.Fatalf("unit %s Center = %v, want 5.0", r.Unit, r.Center)
		}
		if r.OldestDay != 1 {
			t.Fatalf("unit %s OldestDay = %d, want 1", r.Unit, r.OldestDay)
		}
	}
}

func TestRun_RowOrdering(t *testing.T) {
	b := &Backfiller{Seeds: allSeeds(t)}
	units := model.UnitsByName()
	rows, err := b.Run(store.New(), units, day(2), day(4))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rows) != 3*len(units) {
		t.Fatalf("rows = %d, want %d", len(rows), 3*len(units))
	}

	// Days ascending, 51 units per day in full-name order.
	if rows[0].Day != 2 || rows[0].Unit != "AL" {
		t.Errorf("first row = day %d unit %s, want day 2 unit AL", rows[0].Day, rows[0].Unit)
	}
	last := rows[len(rows)-1]
	if last.Day != 4 || last.Unit != "WY" {
		t.Errorf("last row = day %d unit %s, want day 4 unit WY", last.Day, last.Unit)
	}
	if rows[51].Day != 3 {
		t.Errorf("row 51 day = %d, want 3 (second day starts)", rows[51].Day)
	}
}

func TestRun_WindowAppliesFromThreePolls(t *testing.T) {
	st := store.New()
	st.Add(poll("OH", 1, 40, 2, 800))
	st.Add(poll("OH", 2, 95, -1, 900))
	st.Add(poll("OH", 3, 100, 4, 700))
	st.Add(poll("OH", 4, 101, 6, 650))

	b := &Backfiller{Seeds: allSeeds(t), Estimator: stats.Estimator{Mode: stats.ModeMedian}}
	rows, err := b.Run(st, model.UnitsByName(), day(102), day(102))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var oh model.StatRow
	for _, r := range rows {
		if r.Unit == "OH" {
			oh = r
		}
	}

	// Four polls eligible; the last-three rule keeps mids 95, 100, 101
	// and drops the stale day-40 poll.
	if oh.Count != 3 {
		t.Errorf("Count = %d, want 3", oh.Count)
	}
	if oh.Center != 4.0 {
		t.Errorf("Center = %v, want 4.0 (median of -1, 4, 6)", oh.Center)
	}
	if oh.OldestDay != 95 {
		t.Errorf("OldestDay = %d, want 95", oh.OldestDay)
	}
}

func TestRun_Idempotent(t *testing.T) {
	st := store.New()
	st.Add(poll("OH", 1, 40, 2, 800))
	st.Add(poll("OH", 2, 45, -1, 900))
	st.Add(poll("OH", 3, 50, 4, 700))
	st.Add(poll("OH", 4, 52, 6, 650))

	b := &Backfiller{Seeds: allSeeds(t), Estimator: stats.Estimator{Mode: stats.ModeMedian}}
	units := model.UnitsByName()

	first, err := b.Run(st, units, day(30), day(60))
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := b.Run(st, units, day(30), day(60))
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRun_MissingSeedFatal(t *testing.T) {
	st := store.New()
	st.Add(poll("NJ", 1, 10, 5, 600))

	b := &Backfiller{}
	_, err := b.Run(st, model.UnitsByName(), day(20), day(20))
	if err == nil {
		t.Fatal("Run succeeded with unseeded units, want error")
	}
	if !strings.Contains(err.Error(), "day 2012-01-20") {
		t.Errorf("error %q does not name the failing day", err)
	}
}

func TestRun_EndBeforeStart(t *testing.T) {
	b := &Backfiller{Seeds: allSeeds(t)}
	if _, err := b.Run(store.New(), model.UnitsByName(), day(10), day(5)); err == nil {
		t.Fatal("Run accepted an inverted season")
	}
}
