// Package backfill replays the statistics series over every day of the
// campaign season.
//
// For each (day, unit) pair it restricts the unit's polls to those that
// had finished fielding before the day, applies the recency window and
// the estimator, and emits one row. The recomputation is deliberately a
// full replay per day, O(days x units x polls); the data volumes (tens
// of units, hundreds of polls, a few hundred days) make correctness and
// simplicity worth far more than incremental updates.
package backfill
