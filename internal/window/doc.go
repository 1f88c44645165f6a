// Package window picks the working subset of a unit's eligible polls
// for one analysis day.
//
// Recency should dominate the estimate, so by default only the three
// polls with the most recent field midpoints are used (midpoint ties can
// admit more). But a busy polling week should not be truncated to three:
// when the seven days up to the newest midpoint hold strictly more
// polls, that window is used instead.
package window
