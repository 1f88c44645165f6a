package config

import (
	"time"

	"github.com/electionlab/poll-data/internal/seed"
)

// Config is the root configuration for a backfill run.
type Config struct {
	Season    SeasonConfig    `yaml:"season"`
	Feed      FeedConfig      `yaml:"feed"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Output    OutputConfig    `yaml:"output"`
	Seeds     seed.Table      `yaml:"seeds"`
	Database  DBConfig        `yaml:"database"`
}

// SeasonConfig bounds the backfilled day range.
type SeasonConfig struct {
	Start string `yaml:"start"` // First day to estimate (YYYY-MM-DD)
	End   string `yaml:"end"`   // Last day, inclusive; empty means today
}

// Dates parses the season bounds. A zero end time means the caller
// should substitute the current day.
func (s SeasonConfig) Dates() (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", s.Start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if s.End == "" {
		return start, time.Time{}, nil
	}
	end, err = time.ParseInLocation("2006-01-02", s.End, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// FeedConfig holds upstream feed settings.
type FeedConfig struct {
	Shape            string        `yaml:"shape"`             // "pages" or "units"
	BaseURL          string        `yaml:"base_url"`          // Pages: page-number suffix base; units: printf template with %s
	Username         string        `yaml:"username"`          // Basic-auth credentials, if the feed is protected
	Password         string        `yaml:"password"`
	Topic            string        `yaml:"topic"`             // Question topic filter, e.g. "2012-president"
	FirstCandidate   string        `yaml:"first_candidate"`   // Margin is first minus second
	SecondCandidate  string        `yaml:"second_candidate"`
	ExcludePollsters []string      `yaml:"exclude_pollsters"` // Organizations dropped wholesale
	Timeout          time.Duration `yaml:"timeout"`
	MaxAttempts      int           `yaml:"max_attempts"`
	RetryDelay       time.Duration `yaml:"retry_delay"`
	PageDelay        time.Duration `yaml:"page_delay"`
	MaxPages         int           `yaml:"max_pages"`
}

// EstimatorConfig selects the center/spread estimator.
type EstimatorConfig struct {
	Mode string `yaml:"mode"` // "median" or "mean"
}

// OutputConfig names the run's output files.
type OutputConfig struct {
	StatsPath       string `yaml:"stats_path"`        // Per-day per-unit stat rows
	StateCSVPath    string `yaml:"state_csv_path"`    // Exploratory CSV of unit polls; empty disables
	NationalCSVPath string `yaml:"national_csv_path"` // Exploratory CSV of nationwide polls; empty disables
	ArchiveDir      string `yaml:"archive_dir"`       // Raw fetched pages land here; empty disables
}

// DBConfig holds the optional poll archive database connection. Leaving
// host empty disables archiving.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// Enabled reports whether a database archive is configured.
func (db DBConfig) Enabled() bool {
	return db.Host != ""
}
