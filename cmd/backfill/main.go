package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/electionlab/poll-data/internal/archive"
	"github.com/electionlab/poll-data/internal/backfill"
	"github.com/electionlab/poll-data/internal/config"
	"github.com/electionlab/poll-data/internal/database"
	"github.com/electionlab/poll-data/internal/dedup"
	"github.com/electionlab/poll-data/internal/export"
	"github.com/electionlab/poll-data/internal/feed"
	"github.com/electionlab/poll-data/internal/model"
	"github.com/electionlab/poll-data/internal/seed"
	"github.com/electionlab/poll-data/internal/stats"
	"github.com/electionlab/poll-data/internal/store"
	"github.com/electionlab/poll-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/backfill.yaml", "path to config file")
	flag.Parse()

	// Local overrides for credentials; absence is fine.
	_ = godotenv.Load()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	runID := uuid.New()
	logger.Info("starting backfill",
		"version", version.Version,
		"commit", version.Commit,
		"run_id", runID,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	seasonStart, seasonEnd, err := cfg.Season.Dates()
	if err != nil {
		logger.Error("invalid season dates", "error", err)
		os.Exit(1)
	}
	if seasonEnd.IsZero() {
		seasonEnd = time.Now().UTC().Truncate(24 * time.Hour)
	}

	logger.Info("configuration loaded",
		"shape", cfg.Feed.Shape,
		"season_start", seasonStart.Format("2006-01-02"),
		"season_end", seasonEnd.Format("2006-01-02"),
		"estimator_mode", cfg.Estimator.Mode,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	units := model.UnitsByName()

	records, err := fetchRecords(ctx, cfg, units, logger)
	if err != nil {
		logger.Error("feed fetch failed", "error", err)
		os.Exit(1)
	}

	// First sighting of each feed id wins; the feed resends closed
	// polls across pages.
	seen := dedup.NewSeenSet()
	st := store.New()
	var kept, national []model.PollRecord
	var duplicates, unknown int

	for _, rec := range records {
		if !seen.Observe(rec.ExternalID) {
			duplicates++
			continue
		}
		if rec.Unit == model.NationalCode {
			national = append(national, rec)
			continue
		}
		if !model.IsUnit(rec.Unit) {
			logger.Warn("skipping poll for unknown unit", "unit", rec.Unit, "poll_id", rec.ExternalID)
			unknown++
			continue
		}
		st.Add(rec)
		kept = append(kept, rec)
	}

	logger.Info("feed ingested",
		"fetched", len(records),
		"kept", len(kept),
		"national", len(national),
		"duplicates", duplicates,
		"unknown_units", unknown,
	)

	seeds, err := seed.Polls(cfg.Seeds)
	if err != nil {
		logger.Error("invalid seed table", "error", err)
		os.Exit(1)
	}

	mode := stats.ModeMedian
	if cfg.Estimator.Mode == "mean" {
		mode = stats.ModeMean
	}

	backfiller := &backfill.Backfiller{
		Estimator: stats.Estimator{Mode: mode},
		Seeds:     seeds,
		Logger:    logger,
	}

	rows, err := backfiller.Run(st, units, seasonStart, seasonEnd)
	if err != nil {
		logger.Error("backfill failed", "error", err)
		os.Exit(1)
	}

	if err := export.WriteStats(cfg.Output.StatsPath, rows); err != nil {
		logger.Error("failed to write stats", "error", err, "path", cfg.Output.StatsPath)
		os.Exit(1)
	}
	logger.Info("stats written", "path", cfg.Output.StatsPath, "rows", len(rows))

	if cfg.Output.StateCSVPath != "" {
		if err := export.WritePollCSV(cfg.Output.StateCSVPath, cfg.Feed.FirstCandidate, cfg.Feed.SecondCandidate, kept); err != nil {
			logger.Error("failed to write state csv", "error", err, "path", cfg.Output.StateCSVPath)
			os.Exit(1)
		}
		logger.Info("state csv written", "path", cfg.Output.StateCSVPath, "rows", len(kept))
	}
	if cfg.Output.NationalCSVPath != "" {
		if err := export.WritePollCSV(cfg.Output.NationalCSVPath, cfg.Feed.FirstCandidate, cfg.Feed.SecondCandidate, national); err != nil {
			logger.Error("failed to write national csv", "error", err, "path", cfg.Output.NationalCSVPath)
			os.Exit(1)
		}
		logger.Info("national csv written", "path", cfg.Output.NationalCSVPath, "rows", len(national))
	}

	// Archive is best effort: the run's outputs are already committed.
	if cfg.Database.Enabled() {
		archivePolls(ctx, cfg, runID, append(kept, national...), logger)
	}

	logger.Info("backfill finished", "run_id", runID)
}

// fetchRecords walks the configured feed shape.
func fetchRecords(ctx context.Context, cfg *config.Config, units []model.Unit, logger *slog.Logger) ([]model.PollRecord, error) {
	opts := []feed.ClientOption{
		feed.WithLogger(logger),
		feed.WithTimeout(cfg.Feed.Timeout),
		feed.WithRetries(cfg.Feed.MaxAttempts, cfg.Feed.RetryDelay),
		feed.WithPageDelay(cfg.Feed.PageDelay),
		feed.WithMaxPages(cfg.Feed.MaxPages),
		feed.WithExcludedPollsters(cfg.Feed.ExcludePollsters),
	}
	if cfg.Feed.Username != "" {
		opts = append(opts, feed.WithBasicAuth(cfg.Feed.Username, cfg.Feed.Password))
	}
	if cfg.Feed.Topic != "" {
		opts = append(opts, feed.WithTopic(cfg.Feed.Topic))
	}
	if cfg.Output.ArchiveDir != "" {
		if err := os.MkdirAll(cfg.Output.ArchiveDir, 0755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
		dir := cfg.Output.ArchiveDir
		opts = append(opts, feed.WithPageHook(func(page int, body []byte) {
			path := filepath.Join(dir, fmt.Sprintf("page-%03d.xml", page))
			if err := os.WriteFile(path, body, 0644); err != nil {
				logger.Warn("failed to archive page", "page", page, "error", err)
			}
		}))
	}

	client := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.FirstCandidate, cfg.Feed.SecondCandidate, opts...)

	if cfg.Feed.Shape == "units" {
		return client.FetchUnits(ctx, units)
	}
	return client.FetchPages(ctx)
}

// archivePolls inserts the run's deduplicated records into the poll
// archive database.
func archivePolls(ctx context.Context, cfg *config.Config, runID uuid.UUID, records []model.PollRecord, logger *slog.Logger) {
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}
	defer pool.Close()

	w := archive.NewWriter(pool, runID, logger)
	if _, err := w.InsertPolls(ctx, records); err != nil {
		logger.Error("failed to archive polls", "error", err)
	}
}
