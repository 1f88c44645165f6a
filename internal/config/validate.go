package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Season.Start == "" {
		return errors.New("season.start is required")
	}
	start, end, err := c.Season.Dates()
	if err != nil {
		return fmt.Errorf("season dates: %w", err)
	}
	if !end.IsZero() && end.Before(start) {
		return fmt.Errorf("season ends %s before it starts %s",
			c.Season.End, c.Season.Start)
	}

	switch c.Feed.Shape {
	case "pages":
	case "units":
		if !strings.Contains(c.Feed.BaseURL, "%s") {
			return errors.New(`feed.base_url must contain a %s unit placeholder for the units shape`)
		}
	default:
		return fmt.Errorf("feed.shape must be \"pages\" or \"units\", got %q", c.Feed.Shape)
	}

	if c.Feed.BaseURL == "" {
		return errors.New("feed.base_url is required")
	}
	if c.Feed.FirstCandidate == "" {
		return errors.New("feed.first_candidate is required")
	}
	if c.Feed.SecondCandidate == "" {
		return errors.New("feed.second_candidate is required")
	}
	if c.Feed.MaxAttempts < 1 {
		return errors.New("feed.max_attempts must be >= 1")
	}

	if c.Estimator.Mode != "median" && c.Estimator.Mode != "mean" {
		return fmt.Errorf("estimator.mode must be \"median\" or \"mean\", got %q", c.Estimator.Mode)
	}

	if c.Output.StatsPath == "" {
		return errors.New("output.stats_path is required")
	}

	if c.Database.Enabled() {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
