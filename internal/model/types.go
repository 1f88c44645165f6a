package model

import "time"

// Response holds the percentages exactly as the feed reported them.
// The margin is derived from the first two at ingest; the raw strings are
// kept so the exploratory CSV export reproduces the feed's columns
// (including placeholders such as "-").
type Response struct {
	First     string // First candidate's reported percentage
	Second    string // Second candidate's reported percentage
	Other     string // "Other" percentage, may be empty or "-"
	Undecided string // "Undecided" percentage, may be empty or "-"
}

// PollRecord is one deduplicated poll. Records are built once from feed
// data and never mutated.
type PollRecord struct {
	ExternalID int64  // Feed-assigned poll id (deduplication key)
	Unit       string // Unit code ("NJ", "DC", ...), or NationalCode
	Pollster   string // Polling organization
	Method     string // Interview method label ("IVR", "Live Phone", ...)
	VoterType  string // Sub-population label ("Likely Voter", "LV", ...)
	Margin     int    // First candidate minus second, percentage points
	SampleSize int    // Observations; 0 = not reported

	StartDate time.Time // First field date (UTC midnight)
	EndDate   time.Time // Last field date, inclusive
	MidDate   time.Time // Field period midpoint, derived via MidDate()

	Response Response // Raw reported percentages for the CSV export
}

// MidDate returns the midpoint of a field period, truncated to whole
// days: start + floor((end-start)/2).
func MidDate(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, days/2)
}

// StatRow is one line of the output series: the poll summary for one
// unit as of one day of the season.
type StatRow struct {
	Unit      string  // Unit code
	Day       int     // Analysis day, ordinal day of year
	Count     int     // Polls used for the estimate
	OldestDay int     // Mid-date ordinal of the oldest poll used
	Center    float64 // Margin point estimate
	Spread    float64 // Standard error of the estimate
}
