// Package database manages the optional PostgreSQL connection used to
// archive ingested poll records across runs. The pipeline itself is
// file-in file-out; the archive exists for longitudinal analysis of
// what the feed reported over the season.
package database
