package window

import (
	"slices"
	"sort"
	"time"

	"github.com/electionlab/poll-data/internal/model"
)

const (
	// recentPollCount is the default number of most-recent polls used.
	recentPollCount = 3

	// recencyWindowDays is the width of the alternate selection window,
	// measured back from the newest mid date, endpoints inclusive.
	recencyWindowDays = 7
)

// Select picks the working subset from one unit's eligible polls and
// returns it sorted by mid date, most recent first. The input slice is
// never reordered, so repeated calls over a shared store are stable.
//
// With fewer than three polls everything is used. Otherwise the larger
// of the last-three subset (mid-date ties included) and the seven-day
// subset wins; on equal counts the last-three rule applies.
func Select(polls []model.PollRecord) []model.PollRecord {
	sorted := slices.Clone(polls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MidDate.After(sorted[j].MidDate)
	})

	if len(sorted) < recentPollCount {
		return sorted
	}

	// Every poll at least as recent as the third-most-recent mid date.
	thirdDate := sorted[recentPollCount-1].MidDate
	lastThree := midOnOrAfter(sorted, thirdDate)

	// Every poll within the week ending at the newest mid date.
	weekStart := sorted[0].MidDate.AddDate(0, 0, -recencyWindowDays)
	lastWeek := midOnOrAfter(sorted, weekStart)

	if len(lastWeek) > len(lastThree) {
		return lastWeek
	}
	return lastThree
}

// midOnOrAfter filters a mid-date-descending slice, preserving order.
func midOnOrAfter(sorted []model.PollRecord, cutoff time.Time) []model.PollRecord {
	out := make([]model.PollRecord, 0, len(sorted))
	for _, p := range sorted {
		if !p.MidDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}
