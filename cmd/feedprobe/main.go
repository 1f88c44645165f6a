// feedprobe fetches a slice of the configured poll feed and prints the
// decoded records to the console, for checking a feed config before a
// full backfill run.
// Usage: go run ./cmd/feedprobe --config configs/backfill.yaml --unit NJ
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/electionlab/poll-data/internal/config"
	"github.com/electionlab/poll-data/internal/dedup"
	"github.com/electionlab/poll-data/internal/feed"
	"github.com/electionlab/poll-data/internal/model"
)

func main() {
	configPath := flag.String("config", "configs/backfill.yaml", "path to config file")
	unit := flag.String("unit", "", "probe a single unit (units shape only)")
	flag.Parse()

	_ = godotenv.Load()

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// Load config
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	opts := []feed.ClientOption{
		feed.WithLogger(logger),
		feed.WithTimeout(cfg.Feed.Timeout),
		feed.WithRetries(cfg.Feed.MaxAttempts, cfg.Feed.RetryDelay),
		feed.WithPageDelay(cfg.Feed.PageDelay),
		feed.WithExcludedPollsters(cfg.Feed.ExcludePollsters),
	}
	if cfg.Feed.Username != "" {
		opts = append(opts, feed.WithBasicAuth(cfg.Feed.Username, cfg.Feed.Password))
	}
	if cfg.Feed.Topic != "" {
		opts = append(opts, feed.WithTopic(cfg.Feed.Topic))
	}
	opts = append(opts, feed.WithMaxPages(cfg.Feed.MaxPages))

	client := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.FirstCandidate, cfg.Feed.SecondCandidate, opts...)

	var records []model.PollRecord
	switch {
	case cfg.Feed.Shape == "units" && *unit != "":
		records, err = client.FetchUnit(ctx, *unit)
	case cfg.Feed.Shape == "units":
		records, err = client.FetchUnits(ctx, model.UnitsByName())
	default:
		records, err = client.FetchPages(ctx)
	}
	if err != nil {
		logger.Error("probe fetch failed", "error", err)
		os.Exit(1)
	}

	seen := dedup.NewSeenSet()
	duplicates := 0
	for _, rec := range records {
		if !seen.Observe(rec.ExternalID) {
			duplicates++
			continue
		}
		fmt.Printf("%8d %-4s %-30s %-12s %-14s %5d %+4d %s..%s\n",
			rec.ExternalID, rec.Unit, rec.Pollster, rec.VoterType, rec.Method,
			rec.SampleSize, rec.Margin,
			rec.StartDate.Format("2006-01-02"), rec.EndDate.Format("2006-01-02"))
	}

	fmt.Printf("\n%d records, %d duplicates\n", seen.Len(), duplicates)
}
