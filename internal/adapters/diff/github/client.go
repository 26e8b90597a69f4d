// Package github provides a resilient GitHub client for fetching PR diffs
package github

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	perr "maidata/internal/platform/errors"
	"maidata/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 30 * time.Second
	defaultUA        = "maidata-prsplit"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	acceptDiff       = "application/vnd.github.v3.diff"
	maxDiffBytes     = 64 * 1024 * 1024
)

// defaultHostDelay is the minimum spacing between hits per hostname
var defaultHostDelay = map[string]time.Duration{
	"api.github.com":                   1 * time.Second,
	"patch-diff.githubusercontent.com": 1600 * time.Millisecond, // ~37/min
}

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Comma separated tokens passed in from CLI or config
	// Empty means tokenless which is very low quota so not recommended
	TokensCSV string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration

	// HostDelay overrides the per-host minimum spacing; nil keeps defaults
	HostDelay map[string]time.Duration
}

// Client is a minimal GitHub client with token rotation and per-host pacing
type Client struct {
	http   *http.Client
	opts   Options
	tokens []string
	cur    atomic.Int32
	log    logger.Logger
	now    func() time.Time
	sleep  func(time.Duration)

	mu      sync.Mutex
	lastHit map[string]time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.HostDelay == nil {
		o.HostDelay = defaultHostDelay
	}
	var toks []string
	if s := strings.TrimSpace(o.TokensCSV); s != "" {
		for _, t := range strings.Split(s, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				toks = append(toks, t)
			}
		}
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		tokens:  toks,
		log:     *logger.Named("github"),
		now:     time.Now,
		sleep:   time.Sleep,
		lastHit: map[string]time.Time{},
	}
}

// getToken returns the next token in a round robin rotation
func (c *Client) getToken() string {
	n := int(c.cur.Add(1))
	if len(c.tokens) == 0 {
		return ""
	}
	return c.tokens[n%len(c.tokens)]
}

// FetchDiff downloads the unified diff for a PR given its web diff URL
// A 404 or 410 maps to a NotFound error the pipeline treats as a skip
func (c *Client) FetchDiff(ctx context.Context, diffURL string) (string, error) {
	url := diffURL
	if path, ok := APIDiffPath(diffURL); ok {
		url = c.opts.BaseURL + path
		c.log.Debug().Str("web_url", diffURL).Str("api_url", url).Msg("converted diff url")
	}

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		c.paceHost(url)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", acceptDiff)
		if tok := c.getToken(); tok != "" {
			req.Header.Set("Authorization", "token "+tok)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		// Always log lightweight response metadata
		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("url", url).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("github http response")

		switch resp.StatusCode {
		case http.StatusOK:
			body, rerr := io.ReadAll(io.LimitReader(resp.Body, maxDiffBytes))
			cerr := resp.Body.Close()
			if rerr != nil {
				return "", perr.Wrapf(rerr, perr.ErrorCodeUnavailable, "github read body failed")
			}
			if cerr != nil {
				return "", cerr
			}
			return string(body), nil

		case http.StatusNotFound, http.StatusGone:
			_ = drainAndClose(resp.Body)
			return "", perr.NotFoundf("diff url vanished (repo deleted or private): %s", diffURL)
		}

		// Everything else: classify the status and let the error code decide
		// whether another attempt is worth it
		var ferr error
		switch code := perr.FromHTTPStatus(resp.StatusCode); code {
		case perr.ErrorCodeTooManyRequests:
			ferr = perr.TooManyRequestsf("github rate limited for %s", diffURL)
		case perr.ErrorCodeUnavailable:
			ferr = perr.Unavailablef("github transient server error for %s", diffURL)
		default:
			// read a small tail for diagnostics
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			ferr = perr.Newf(code, "github unexpected status %d body %s", resp.StatusCode, string(body))
		}
		_ = drainAndClose(resp.Body)

		if !perr.Retryable(ferr) || !c.shouldRetry(attempts) {
			return "", ferr
		}

		// Respect Retry-After and X-RateLimit-Reset when present
		wait := computeWait(rem, reset, retryAfter, c.now())
		if wait <= 0 {
			wait = c.backoff(attempts)
		}
		c.log.Warn().
			Int("status", resp.StatusCode).
			Dur("retry_in", wait).
			Int("attempt", attempts).
			Msg("github retryable response backing off")
		c.sleep(wait)
		attempts++
	}
}

// paceHost sleeps so consecutive hits to the same host keep their minimum spacing
func (c *Client) paceHost(url string) {
	host := hostOf(url)
	delay := c.opts.HostDelay[host]
	if delay <= 0 {
		return
	}
	c.mu.Lock()
	last, seen := c.lastHit[host]
	now := c.now()
	var wait time.Duration
	if seen {
		if d := delay - now.Sub(last); d > 0 {
			wait = d
		}
	}
	c.lastHit[host] = now.Add(wait)
	c.mu.Unlock()
	if wait > 0 {
		c.sleep(wait)
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = atoi(h.Get("X-RateLimit-Remaining"))
	rs := h.Get("X-RateLimit-Reset")
	if rs != "" {
		sec := atoi(rs)
		if sec > 0 {
			reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	retryAfter = atoi(h.Get("Retry-After"))
	return
}

// computeWait decides how long to wait based on headers
func computeWait(remaining int, reset time.Time, retryAfter int, now time.Time) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	if remaining <= 0 && !reset.IsZero() {
		if reset.After(now) {
			return reset.Sub(now)
		}
		return 0
	}
	return 0
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
