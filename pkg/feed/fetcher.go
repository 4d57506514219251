package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/rivsy/rivsy/pkg/domain"
)

// ErrorKind classifies a fetch failure
type ErrorKind int

// fetch failure kinds
const (
	KindNetwork ErrorKind = iota // transport-level failure before any parsing
	KindParseFailed
	KindScrapeFailed // both parse and scrape fallback failed, terminal for this cycle
)

// FetchError is a per-feed, non-fatal failure. The scheduler logs it and
// retries on the next pass, it never propagates to sibling feeds.
type FetchError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	case KindParseFailed:
		return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("unable to parse feed or scrape website %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Scraper is the website fallback used when a URL doesn't serve a valid feed
type Scraper interface {
	Scrape(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Fetcher retrieves a source URL and normalizes it into a ParsedFeed,
// falling back to page scraping when the response is not a valid feed
type Fetcher struct {
	client    *http.Client
	parser    *Parser
	scraper   Scraper
	userAgent string
}

// NewFetcher creates a feed fetcher with the given timeout and user-agent
func NewFetcher(timeout time.Duration, userAgent string, scraper Scraper) *Fetcher {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		parser:    NewParser(),
		scraper:   scraper,
		userAgent: userAgent,
	}
}

// Fetch retrieves and parses the feed at url. On parse failure it treats the
// page as a single-article pseudo-feed via the scraper; if that also fails the
// returned FetchError carries KindScrapeFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: KindNetwork, URL: url,
			Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	parsed, parseErr := f.parser.Parse(resp.Body, url)
	if parseErr == nil {
		return parsed, nil
	}

	// not a feed, fall back to readability scraping of the same URL
	lgr.Printf("[DEBUG] feed parse failed for %s, falling back to scrape: %v", url, parseErr)
	if f.scraper == nil {
		return nil, &FetchError{Kind: KindParseFailed, URL: url, Err: parseErr}
	}

	scraped, scrapeErr := f.scraper.Scrape(ctx, url)
	if scrapeErr != nil {
		return nil, &FetchError{Kind: KindScrapeFailed, URL: url,
			Err: errors.Join(parseErr, scrapeErr)}
	}
	return scraped, nil
}
