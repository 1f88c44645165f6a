package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultShape       = "pages"
	DefaultTimeout     = 5 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
	DefaultPageDelay   = 1 * time.Second
	DefaultMaxPages    = 1000
	DefaultMode        = "median"
	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 10
	DefaultMinConns    = 2
)

func (c *Config) applyDefaults() {
	// Feed defaults
	if c.Feed.Shape == "" {
		c.Feed.Shape = DefaultShape
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = DefaultTimeout
	}
	if c.Feed.MaxAttempts == 0 {
		c.Feed.MaxAttempts = DefaultMaxAttempts
	}
	if c.Feed.RetryDelay == 0 {
		c.Feed.RetryDelay = DefaultRetryDelay
	}
	if c.Feed.PageDelay == 0 {
		c.Feed.PageDelay = DefaultPageDelay
	}
	if c.Feed.MaxPages == 0 {
		c.Feed.MaxPages = DefaultMaxPages
	}

	// Estimator defaults
	if c.Estimator.Mode == "" {
		c.Estimator.Mode = DefaultMode
	}

	// Output defaults: the stats filename carries the estimator mode so
	// median and mean runs never clobber each other.
	if c.Output.StatsPath == "" {
		c.Output.StatsPath = "polls." + c.Estimator.Mode + ".txt"
	}

	// Database defaults, only meaningful when archiving is enabled
	if c.Database.Enabled() {
		if c.Database.Port == 0 {
			c.Database.Port = DefaultDBPort
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = DefaultDBSSLMode
		}
		if c.Database.MaxConns == 0 {
			c.Database.MaxConns = DefaultMaxConns
		}
		if c.Database.MinConns == 0 {
			c.Database.MinConns = DefaultMinConns
		}
	}
}
