// Package model defines shared data types used across the poll pipeline.
//
// Conventions:
//   - Margins: signed integer percentage points, first candidate minus second
//   - Dates: UTC midnight time.Time values; ordinal days are 1-based (Jan 1 = 1)
//   - IDs: int64 feed-assigned poll ids, used as the deduplication key
package model
