package feed

import (
	"log/slog"
	"net/http"
	"time"
)

// Client provides access to an XML polling feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	username string
	password string

	retry     retryPolicy
	pageDelay time.Duration
	maxPages  int
	pageHook  func(page int, body []byte)

	topic            string
	firstCandidate   string
	secondCandidate  string
	excludePollsters map[string]bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a feed client. firstCandidate and secondCandidate
// name the choices whose difference defines the margin (first minus
// second).
func NewClient(baseURL, firstCandidate, secondCandidate string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger:           slog.Default(),
		retry:            retryPolicy{maxAttempts: 3, delay: 2 * time.Second},
		pageDelay:        time.Second,
		maxPages:         1000,
		firstCandidate:   firstCandidate,
		secondCandidate:  secondCandidate,
		excludePollsters: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the per-call attempt cap and the fixed delay between
// attempts.
func WithRetries(maxAttempts int, delay time.Duration) ClientOption {
	return func(c *Client) {
		c.retry = retryPolicy{maxAttempts: maxAttempts, delay: delay}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBasicAuth sets credentials for password-protected feeds.
func WithBasicAuth(username, password string) ClientOption {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithTopic restricts the page shape to questions on one topic,
// e.g. "2012-president".
func WithTopic(topic string) ClientOption {
	return func(c *Client) {
		c.topic = topic
	}
}

// WithExcludedPollsters drops every poll from the named organizations.
func WithExcludedPollsters(pollsters []string) ClientOption {
	return func(c *Client) {
		for _, p := range pollsters {
			c.excludePollsters[p] = true
		}
	}
}

// WithPageDelay sets the politeness delay between page fetches.
func WithPageDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pageDelay = d
	}
}

// WithMaxPages bounds the page walk as a safety net against a feed that
// never returns a terminal page. Zero disables the bound.
func WithMaxPages(n int) ClientOption {
	return func(c *Client) {
		c.maxPages = n
	}
}

// WithPageHook registers a callback invoked with each non-empty raw
// page, used for archiving the fetched documents.
func WithPageHook(hook func(page int, body []byte)) ClientOption {
	return func(c *Client) {
		c.pageHook = hook
	}
}
