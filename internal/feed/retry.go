package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// retryPolicy retries transport-level failures with a fixed delay
// between attempts. Exhausting the attempts is fatal for the run; the
// caller wraps the error with the page or unit that failed.
type retryPolicy struct {
	maxAttempts int           // total attempts per call
	delay       time.Duration // fixed wait before each retry
}

// do runs fn until it succeeds or the attempt cap is reached.
func (r retryPolicy) do(ctx context.Context, logger *slog.Logger, target string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.delay):
			}
			logger.Debug("retrying fetch",
				"target", target,
				"attempt", attempt,
				"max_attempts", r.maxAttempts,
			)
		}

		if err := fn(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("fetch %s: %d attempts failed: %w", target, r.maxAttempts, lastErr)
}

// fetch retrieves url with retries and returns the response body.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.retry.do(ctx, c.logger, url, func() error {
		b, err := c.fetchOnce(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	return body, err
}

// fetchOnce performs a single GET. Error responses count as transient:
// the upstream feed is known to throw intermittent 5xx under load, and
// a retry is cheap either way.
func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("feed returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return body, nil
}
