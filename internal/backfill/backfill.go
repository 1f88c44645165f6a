package backfill

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/electionlab/poll-data/internal/model"
	"github.com/electionlab/poll-data/internal/stats"
	"github.com/electionlab/poll-data/internal/store"
	"github.com/electionlab/poll-data/internal/window"
)

// Backfiller recomputes the daily statistics series from a populated
// store. It performs no I/O and holds no state across runs, so running
// it twice over an unmodified store yields identical output.
//
// Seeds maps unit code to a prior-election pseudo-poll. A pseudo-poll
// stands in only when a unit has no eligible real polls for a day; it
// never joins a subset alongside real polling.
type Backfiller struct {
	Estimator stats.Estimator
	Seeds     map[string]model.PollRecord
	Logger    *slog.Logger
}

// Run produces one StatRow per (day, unit) from seasonStart through
// seasonEnd inclusive: days ascending, units ascending by full name
// within each day. A unit with zero eligible polls and no seed entry on
// any day is fatal.
func (b *Backfiller) Run(st *store.UnitPollStore, units []model.Unit, seasonStart, seasonEnd time.Time) ([]model.StatRow, error) {
	if seasonEnd.Before(seasonStart) {
		return nil, fmt.Errorf("season end %s precedes start %s",
			seasonEnd.Format("2006-01-02"), seasonStart.Format("2006-01-02"))
	}

	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	rows := make([]model.StatRow, 0, len(units))

	for day := seasonStart; !day.After(seasonEnd); day = day.AddDate(0, 0, 1) {
		for _, u := range units {
			row, err := b.unitRow(st, u, day)
			if err != nil {
				return nil, fmt.Errorf("unit %s, day %s: %w", u.Code, day.Format("2006-01-02"), err)
			}
			rows = append(rows, row)
		}
	}

	logger.Info("backfill complete",
		"rows", len(rows),
		"season_start", seasonStart.Format("2006-01-02"),
		"season_end", seasonEnd.Format("2006-01-02"),
		"duration", time.Since(start),
	)
	return rows, nil
}

// unitRow summarizes one unit as of one day.
func (b *Backfiller) unitRow(st *store.UnitPollStore, u model.Unit, day time.Time) (model.StatRow, error) {
	polls := st.EndedBefore(u.Code, day)
	if len(polls) == 0 {
		sp, ok := b.Seeds[u.Code]
		if !ok || !sp.EndDate.Before(day) {
			return model.StatRow{}, errors.New("no eligible polls and no seed result")
		}
		polls = []model.PollRecord{sp}
	}

	used := polls
	oldest := polls[0]
	switch {
	case len(polls) == 1:
		// Degenerate case, handled by the estimator.
	case len(polls) == 2:
		// polls is sorted by end date descending, so index 1 holds the
		// poll whose field period closed first.
		oldest = polls[1]
	default:
		used = window.Select(polls)
		oldest = used[len(used)-1]
	}

	sum, err := b.Estimator.Estimate(used)
	if err != nil {
		return model.StatRow{}, err
	}

	return model.StatRow{
		Unit:      u.Code,
		Day:       day.YearDay(),
		Count:     len(used),
		OldestDay: oldest.MidDate.YearDay(),
		Center:    sum.Center,
		Spread:    sum.Spread,
	}, nil
}
