package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/rivsy/rivsy/pkg/domain"
	"github.com/rivsy/rivsy/pkg/repository"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/deduper.go -pkg mocks -skip-ensure -fmt goimports . Deduper

// FeedStore is the persistence surface the pipeline needs for feeds
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	FindFeedByURL(ctx context.Context, url string) (*domain.Feed, error)
	CreateFeed(ctx context.Context, f *domain.Feed) error
	UpdateFeedMetadata(ctx context.Context, feedID int64, title, siteURL string, fetchedAt time.Time) error
}

// Fetcher retrieves and normalizes a source URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Deduper filters and persists candidate entries
type Deduper interface {
	Store(ctx context.Context, feedID int64, entries []domain.ParsedEntry) (int, error)
}

// Pipeline orchestrates a single feed's refresh: fetch, metadata update,
// deduplicated storage. One pipeline instance serves all feeds; state lives
// entirely in the stores.
type Pipeline struct {
	feeds   FeedStore
	fetcher Fetcher
	deduper Deduper
	now     func() time.Time
}

// NewPipeline creates an ingestion pipeline
func NewPipeline(feeds FeedStore, fetcher Fetcher, deduper Deduper) *Pipeline {
	return &Pipeline{
		feeds:   feeds,
		fetcher: fetcher,
		deduper: deduper,
		now:     time.Now,
	}
}

// Refresh re-ingests one feed. On fetch failure the feed metadata is left
// untouched and the error is returned to the caller, which logs it and lets
// the next scheduled pass retry naturally.
func (p *Pipeline) Refresh(ctx context.Context, feedID int64) (domain.RefreshResult, error) {
	result := domain.RefreshResult{FeedID: feedID}

	f, err := p.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return result, fmt.Errorf("load feed %d: %w", feedID, err)
	}

	parsed, err := p.fetcher.Fetch(ctx, f.URL)
	if err != nil {
		return result, err
	}

	if err := p.feeds.UpdateFeedMetadata(ctx, f.ID, parsed.Title, parsed.SiteURL, p.now()); err != nil {
		return result, fmt.Errorf("update feed metadata: %w", err)
	}

	added, err := p.deduper.Store(ctx, f.ID, parsed.Entries)
	if err != nil {
		return result, fmt.Errorf("store entries: %w", err)
	}
	result.ArticlesAdded = added

	lgr.Printf("[INFO] refreshed feed %d (%s), %d new articles", f.ID, f.URL, added)
	return result, nil
}

// GetOrCreateFeed resolves a source URL to a feed, registering it on first
// subscription. A new feed is validated by fetching it once; the initial
// batch of entries is ingested immediately.
func (p *Pipeline) GetOrCreateFeed(ctx context.Context, url string) (*domain.Feed, error) {
	f, err := p.feeds.FindFeedByURL(ctx, url)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find feed %s: %w", url, err)
	}

	parsed, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	now := p.now()
	f = &domain.Feed{
		URL:           url,
		Title:         parsed.Title,
		SiteURL:       parsed.SiteURL,
		LastFetchedAt: &now,
	}
	if err := p.feeds.CreateFeed(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost the registration race, the other writer's feed wins
			return p.feeds.FindFeedByURL(ctx, url)
		}
		return nil, fmt.Errorf("create feed %s: %w", url, err)
	}

	if _, err := p.deduper.Store(ctx, f.ID, parsed.Entries); err != nil {
		return nil, fmt.Errorf("store initial entries: %w", err)
	}

	lgr.Printf("[INFO] registered feed %d (%s)", f.ID, url)
	return f, nil
}
