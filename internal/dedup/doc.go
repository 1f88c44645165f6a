// Package dedup assigns a stable identity to incoming poll records and
// rejects records already seen within the current ingest run.
//
// The feed resends closed polls on later pages, so the same feed id can
// appear many times during one fetch session. Identity is the
// feed-assigned poll id; two genuinely distinct polls sharing an id is a
// feed-correctness assumption, not something this package detects.
package dedup
