package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/electionlab/poll-data/internal/model"
)

const (
	pageDateLayout = "2006-01-02"
	unitDateLayout = "01/02/2006"
)

// parseSampleSize degrades a non-numeric or absent sample size to 0
// ("unknown") rather than failing the whole poll; the feed sometimes
// omits it or reports a placeholder.
func parseSampleSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// toRecord builds a PollRecord from one page-shape poll, question and
// chosen sub-population. Both candidates' values are required: a
// missing value decoded as zero would silently corrupt the margin.
func (c *Client) toRecord(poll pagePoll, q pageQuestion, sub pageSub) (model.PollRecord, error) {
	var first, second, other, undecided string
	for _, r := range sub.Responses {
		switch r.Choice {
		case c.firstCandidate:
			first = r.Value
		case c.secondCandidate:
			second = r.Value
		case "Other":
			other = r.Value
		case "Undecided":
			undecided = r.Value
		}
	}
	if first == "" {
		return model.PollRecord{}, fmt.Errorf("poll %d: no value for %s", poll.ID, c.firstCandidate)
	}
	if second == "" {
		return model.PollRecord{}, fmt.Errorf("poll %d: no value for %s", poll.ID, c.secondCandidate)
	}

	firstVal, err := strconv.Atoi(first)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("poll %d: %s value %q: %w", poll.ID, c.firstCandidate, first, err)
	}
	secondVal, err := strconv.Atoi(second)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("poll %d: %s value %q: %w", poll.ID, c.secondCandidate, second, err)
	}

	start, err := time.ParseInLocation(pageDateLayout, poll.StartDate, time.UTC)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("poll %d: start date %q: %w", poll.ID, poll.StartDate, err)
	}
	end, err := time.ParseInLocation(pageDateLayout, poll.EndDate, time.UTC)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("poll %d: end date %q: %w", poll.ID, poll.EndDate, err)
	}
	if end.Before(start) {
		return model.PollRecord{}, fmt.Errorf("poll %d: field period ends before it starts", poll.ID)
	}

	return model.PollRecord{
		ExternalID: poll.ID,
		Unit:       q.State,
		Pollster:   poll.Pollster,
		Method:     poll.Method,
		VoterType:  sub.Name,
		Margin:     firstVal - secondVal,
		SampleSize: parseSampleSize(sub.Observations),
		StartDate:  start,
		EndDate:    end,
		MidDate:    model.MidDate(start, end),
		Response: model.Response{
			First:     first,
			Second:    second,
			Other:     other,
			Undecided: undecided,
		},
	}, nil
}

// toUnitRecord builds a PollRecord from one unit-shape entry. The
// candidate attributes are the configured choice names lowercased
// (the flat feed uses lowercase surname attributes).
func (c *Client) toUnitRecord(unit string, poll unitPoll) (model.PollRecord, error) {
	firstAttr := strings.ToLower(c.firstCandidate)
	secondAttr := strings.ToLower(c.secondCandidate)

	id, err := strconv.ParseInt(poll.attr("id", ""), 10, 64)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("unit %s: poll id %q: %w", unit, poll.attr("id", ""), err)
	}

	first := poll.attr(firstAttr, "")
	second := poll.attr(secondAttr, "")
	if first == "" || first == "-" {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: no value for %s", unit, id, firstAttr)
	}
	if second == "" || second == "-" {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: no value for %s", unit, id, secondAttr)
	}

	firstVal, err := strconv.Atoi(first)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: %s value %q: %w", unit, id, firstAttr, first, err)
	}
	secondVal, err := strconv.Atoi(second)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: %s value %q: %w", unit, id, secondAttr, second, err)
	}

	start, err := time.ParseInLocation(unitDateLayout, poll.attr("sdate", ""), time.UTC)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: start date %q: %w", unit, id, poll.attr("sdate", ""), err)
	}
	end, err := time.ParseInLocation(unitDateLayout, poll.attr("edate", ""), time.UTC)
	if err != nil {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: end date %q: %w", unit, id, poll.attr("edate", ""), err)
	}
	if end.Before(start) {
		return model.PollRecord{}, fmt.Errorf("unit %s poll %d: field period ends before it starts", unit, id)
	}

	return model.PollRecord{
		ExternalID: id,
		Unit:       unit,
		Pollster:   poll.attr("pollster", ""),
		Method:     poll.attr("mode", ""),
		VoterType:  poll.attr("vtype", ""),
		Margin:     firstVal - secondVal,
		SampleSize: parseSampleSize(poll.attr("pop", "")),
		StartDate:  start,
		EndDate:    end,
		MidDate:    model.MidDate(start, end),
		Response: model.Response{
			First:     first,
			Second:    second,
			Other:     poll.attr("other", ""),
			Undecided: poll.attr("undecided", ""),
		},
	}, nil
}
