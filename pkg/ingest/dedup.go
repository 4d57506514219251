package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/rivsy/rivsy/pkg/domain"
	"github.com/rivsy/rivsy/pkg/feed"
	"github.com/rivsy/rivsy/pkg/repository"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore

// ArticleStore is the persistence surface the deduplicator needs
type ArticleStore interface {
	FindArticleByFingerprint(ctx context.Context, checksum string) (*domain.Article, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
}

// Deduplicator filters candidate entries against the global content corpus
// and the per-feed identity index, persisting only genuinely new articles.
// Uniqueness conflicts from concurrent refreshes are absorbed as no-ops.
type Deduplicator struct {
	store    ArticleStore
	sanitize *bluemonday.Policy
}

// NewDeduplicator creates a deduplicator over the given article store
func NewDeduplicator(store ArticleStore) *Deduplicator {
	return &Deduplicator{
		store:    store,
		sanitize: bluemonday.UGCPolicy(),
	}
}

// Store runs the two-stage check for every entry and persists the accepted
// ones. Returns the number of articles actually inserted. Per-entry storage
// errors other than duplicates are logged and skipped, they never abort the
// batch.
func (d *Deduplicator) Store(ctx context.Context, feedID int64, entries []domain.ParsedEntry) (int, error) {
	added := 0
	for _, entry := range entries {
		ok, err := d.storeOne(ctx, feedID, entry)
		if err != nil {
			lgr.Printf("[WARN] failed to store entry %q in feed %d: %v", entry.Title, feedID, err)
			continue
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// storeOne persists a single entry unless it is already represented. Reports
// whether an article row was inserted.
func (d *Deduplicator) storeOne(ctx context.Context, feedID int64, entry domain.ParsedEntry) (bool, error) {
	checksum := feed.Fingerprint(entry.Title, entry.URL, entry.Content)

	// stage 1: global fingerprint lookup, the content may already exist in
	// another feed or from a prior scrape of the same page
	if _, err := d.store.FindArticleByFingerprint(ctx, checksum); err == nil {
		lgr.Printf("[DEBUG] skipping duplicate content: %s", entry.Title)
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("fingerprint lookup: %w", err)
	}

	article := &domain.Article{
		FeedID:      feedID,
		GUID:        entry.GUID,
		Title:       entry.Title,
		URL:         entry.URL,
		PublishedAt: entry.PublishedAt,
		Author:      entry.Author,
		SummaryHTML: d.sanitize.Sanitize(entry.Summary),
		ContentHTML: d.sanitize.Sanitize(entry.Content),
		Checksum:    checksum,
	}

	// stage 2: insert relying on the uniqueness constraints. A conflict on
	// (feed_id, guid) or checksum means a concurrent refresh won the race.
	if err := d.store.CreateArticle(ctx, article); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			lgr.Printf("[DEBUG] skipping duplicate guid %s for feed %d", entry.GUID, feedID)
			return false, nil
		}
		return false, fmt.Errorf("create article: %w", err)
	}

	return true, nil
}
