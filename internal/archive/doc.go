// Package archive persists deduplicated poll records to PostgreSQL.
// The archive is append-only across runs: records are keyed by the
// feed's poll id, and re-inserting a previously archived poll is a
// no-op, so repeated full-season runs stay idempotent.
package archive
