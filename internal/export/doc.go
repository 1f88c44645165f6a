// Package export writes the run's output files: the per-day per-unit
// stat rows consumed downstream, and the exploratory CSVs of the raw
// poll records. All writes go through a temp file and rename so a
// crashed run never leaves a truncated output behind.
package export
