package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/electionlab/poll-data/internal/model"
)

// Writer archives poll records for one run.
type Writer struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	runID  uuid.UUID
}

// NewWriter creates an archive writer. runID tags every row inserted by
// this run so re-fetched feeds can be traced back to the run that first
// saw them.
func NewWriter(db *pgxpool.Pool, runID uuid.UUID, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{db: db, logger: logger, runID: runID}
}

// pollRow is the database representation of a poll record.
type pollRow struct {
	PollID     int64
	RunID      uuid.UUID
	Unit       string
	Pollster   string
	Method     string
	VoterType  string
	Margin     int
	SampleSize int
	StartDate  time.Time
	EndDate    time.Time
	MidDate    time.Time
	First      string
	Second     string
	Other      string
	Undecided  string
}

// transform converts a poll record to its database row.
func (w *Writer) transform(rec model.PollRecord) pollRow {
	return pollRow{
		PollID:     rec.ExternalID,
		RunID:      w.runID,
		Unit:       rec.Unit,
		Pollster:   rec.Pollster,
		Method:     rec.Method,
		VoterType:  rec.VoterType,
		Margin:     rec.Margin,
		SampleSize: rec.SampleSize,
		StartDate:  rec.StartDate,
		EndDate:    rec.EndDate,
		MidDate:    rec.MidDate,
		First:      rec.Response.First,
		Second:     rec.Response.Second,
		Other:      rec.Response.Other,
		Undecided:  rec.Response.Undecided,
	}
}

// InsertPolls batch-inserts records with ON CONFLICT DO NOTHING and
// reports how many were already archived by an earlier run.
func (w *Writer) InsertPolls(ctx context.Context, records []model.PollRecord) (conflicts int, err error) {
	if len(records) == 0 {
		return 0, nil
	}

	start := time.Now()

	batch := &pgx.Batch{}
	for _, rec := range records {
		r := w.transform(rec)
		batch.Queue(`
			INSERT INTO polls (poll_id, run_id, unit, pollster, method, voter_type,
				margin, sample_size, start_date, end_date, mid_date,
				first_pct, second_pct, other_pct, undecided_pct)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (poll_id) DO NOTHING
		`, r.PollID, r.RunID, r.Unit, r.Pollster, r.Method, r.VoterType,
			r.Margin, r.SampleSize, r.StartDate, r.EndDate, r.MidDate,
			r.First, r.Second, r.Other, r.Undecided)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	w.logger.Info("archived polls",
		"count", len(records),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return conflicts, nil
}
