// Package store holds the per-unit collections of deduplicated polls
// for one run.
//
// The store is populated once, before the backfill starts, and is only
// read afterwards. Reads hand out copies sorted for the caller, never
// reordering the shared collections, so replaying the backfill over an
// unmodified store is deterministic.
package store
