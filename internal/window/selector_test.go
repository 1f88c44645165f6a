package window

import (
	"testing"
	"time"

	"github.com/electionlab/poll-data/internal/model"
)

// pollsOnDays builds polls whose mid dates fall on the given ordinal
// days of 2012, in the given order.
func pollsOnDays(days ...int) []model.PollRecord {
	jan1 := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	polls := make([]model.PollRecord, len(days))
	for i, d := range days {
		polls[i] = model.PollRecord{
			ExternalID: int64(i + 1),
			MidDate:    jan1.AddDate(0, 0, d-1),
		}
	}
	return polls
}

func midDays(polls []model.PollRecord) []int {
	days := make([]int, len(polls))
	for i, p := range polls {
		days[i] = p.MidDate.YearDay()
	}
	return days
}

func TestSelect_LastThreeBeatsNarrowWeek(t *testing.T) {
	// Mids on days 1,1,1,2,3,10. The last-three rule keeps mids >= 2
	// (days 10,3,2 = 3 polls); the week window reaches back only to
	// day 3 (10,3 = 2 polls). Last-three wins.
	got := Select(pollsOnDays(1, 1, 1, 2, 3, 10))

	want := []int{10, 3, 2}
	days := midDays(got)
	if len(days) != len(want) {
		t.Fatalf("selected %v, want mids %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("selected %v, want mids %v", days, want)
		}
	}
}

func TestSelect_BusyWeekOverridesLastThree(t *testing.T) {
	// Five polls inside one week: the seven-day window keeps all five,
	// beating the three kept by the default rule.
	got := Select(pollsOnDays(4, 7, 8, 9, 10))

	if len(got) != 5 {
		t.Fatalf("selected %d polls, want 5", len(got))
	}
	days := midDays(got)
	if days[0] != 10 || days[4] != 4 {
		t.Errorf("selected %v, want 10..4 most recent first", days)
	}
}

func TestSelect_TieCountPrefersLastThree(t *testing.T) {
	// Both rules yield three polls; the default last-three subset wins.
	got := Select(pollsOnDays(20, 19, 18, 1))

	if len(got) != 3 {
		t.Fatalf("selected %d polls, want 3", len(got))
	}
}

func TestSelect_MidDateTiesAdmitMoreThanThree(t *testing.T) {
	// The third-most-recent mid date is shared by two more polls, so
	// the last-three rule admits five.
	got := Select(pollsOnDays(5, 5, 5, 9, 10))

	if len(got) != 5 {
		t.Fatalf("selected %d polls, want 5 (ties on the third date)", len(got))
	}
}

func TestSelect_WindowEndpointInclusive(t *testing.T) {
	// Day 3 is exactly seven days before day 10 and stays inside the
	// window, so the week rule keeps 4 polls against last-three's 3.
	got := Select(pollsOnDays(3, 8, 9, 10))

	if len(got) != 4 {
		t.Fatalf("selected %d polls, want 4 (inclusive window edge)", len(got))
	}
}

func TestSelect_FewerThanThreePassThrough(t *testing.T) {
	got := Select(pollsOnDays(2, 9))

	days := midDays(got)
	if len(days) != 2 || days[0] != 9 || days[1] != 2 {
		t.Errorf("selected %v, want [9 2]", days)
	}
}

func TestSelect_DoesNotReorderInput(t *testing.T) {
	polls := pollsOnDays(1, 10, 5, 7)
	before := midDays(polls)

	Select(polls)

	after := midDays(polls)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Select reordered the caller's slice")
		}
	}
}
