package archive

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/electionlab/poll-data/internal/model"
)

func TestTransform(t *testing.T) {
	runID := uuid.New()
	w := NewWriter(nil, runID, nil)

	start := time.Date(2012, 7, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2012, 7, 15, 0, 0, 0, 0, time.UTC)
	rec := model.PollRecord{
		ExternalID: 101,
		Unit:       "NJ",
		Pollster:   "Quinnipiac",
		Method:     "Live Phone",
		VoterType:  "Likely Voter",
		Margin:     6,
		SampleSize: 1200,
		StartDate:  start,
		EndDate:    end,
		MidDate:    model.MidDate(start, end),
		Response:   model.Response{First: "49", Second: "43", Undecided: "8"},
	}

	row := w.transform(rec)

	if row.PollID != 101 {
		t.Errorf("PollID = %d, want 101", row.PollID)
	}
	if row.RunID != runID {
		t.Errorf("RunID = %v, want %v", row.RunID, runID)
	}
	if row.Unit != "NJ" || row.Margin != 6 || row.SampleSize != 1200 {
		t.Errorf("row = %+v", row)
	}
	if !row.MidDate.Equal(time.Date(2012, 7, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("MidDate = %v", row.MidDate)
	}
	if row.First != "49" || row.Second != "43" || row.Undecided != "8" {
		t.Errorf("responses = %q/%q/%q/%q", row.First, row.Second, row.Other, row.Undecided)
	}
}
