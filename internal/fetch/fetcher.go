package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const (
	DefaultUserAgent = "hooptrack/1.0 (github.com/hooptrack/hooptrack)"
	DefaultTimeout   = 30 * time.Second
	DefaultDelay     = 3 * time.Second
	DefaultRetries   = 3
)

// Fetcher downloads pages politely: one request at a time, a minimum delay
// between requests, and backoff on transient failures.
type Fetcher struct {
	client    *http.Client
	userAgent string
	delay     time.Duration
	retries   uint64
	lastFetch time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithDelay sets the minimum gap between consecutive requests.
func WithDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.delay = d }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithRetries sets how many times a transient failure is retried.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		if n >= 0 {
			f.retries = uint64(n)
		}
	}
}

// New creates a Fetcher with the default polite settings.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		delay:     DefaultDelay,
		retries:   DefaultRetries,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get fetches url and parses the response body as HTML. It blocks until the
// inter-request delay has elapsed, honoring ctx cancellation while waiting.
func (f *Fetcher) Get(ctx context.Context, url string) (*goquery.Document, error) {
	if err := f.throttle(ctx); err != nil {
		return nil, err
	}

	var doc *goquery.Document
	operation := func() error {
		var err error
		doc, err = f.fetchOnce(ctx, url)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.retries), ctx)
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("url", url).Dur("wait", wait).Msg("Retrying fetch")
	}
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}
	return doc, nil
}

// fetchOnce performs a single request. Retryable failures are returned as
// plain errors; non-retryable ones are wrapped in backoff.Permanent.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parse
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("parsing HTML: %w", err))
	}
	return doc, nil
}

// throttle waits out the remainder of the inter-request delay.
func (f *Fetcher) throttle(ctx context.Context) error {
	if !f.lastFetch.IsZero() {
		if remaining := f.delay - time.Since(f.lastFetch); remaining > 0 {
			select {
			case <-time.After(remaining):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	f.lastFetch = time.Now()
	return nil
}
