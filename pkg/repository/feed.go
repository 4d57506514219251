package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/rivsy/rivsy/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID            int64      `db:"id"`
	URL           string     `db:"url"`
	Title         string     `db:"title"`
	SiteURL       string     `db:"site_url"`
	LastFetchedAt *time.Time `db:"last_fetched_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed. Returns ErrDuplicate if the canonical URL is
// already registered.
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	sqlFeed := &feedSQL{
		URL:           feed.URL,
		Title:         feed.Title,
		SiteURL:       feed.SiteURL,
		LastFetchedAt: feed.LastFetchedAt,
	}

	query := `
		INSERT INTO feeds (url, title, site_url, last_fetched_at)
		VALUES (:url, :title, :site_url, :last_fetched_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("create feed %s: %w", feed.URL, ErrDuplicate)
		}
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feed %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// FindFeedByURL retrieves a feed by its canonical source URL
func (r *FeedRepository) FindFeedByURL(ctx context.Context, url string) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE url = ?", url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feed %s: %w", url, ErrNotFound)
		}
		return nil, fmt.Errorf("find feed by url: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// UpdateFeedMetadata records a successful refresh: new title, site URL and
// the fetch timestamp. Retries on SQLite lock contention.
func (r *FeedRepository) UpdateFeedMetadata(ctx context.Context, feedID int64, title, siteURL string, fetchedAt time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET title = ?,
			    site_url = ?,
			    last_fetched_at = ?,
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, title, siteURL, fetchedAt, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed metadata: %w", err)}
		}
		return nil
	})
}

// GetDueFeeds selects feeds whose last fetch is older than cutoff (or that
// were never fetched), restricted to feeds with at least one subscription in
// the given plan band. Paid covers both pro and power tiers; free means the
// subscriber has no active paid record.
func (r *FeedRepository) GetDueFeeds(ctx context.Context, cutoff time.Time, paid bool) ([]int64, error) {
	var query string
	if paid {
		query = `
			SELECT DISTINCT f.id FROM feeds f
			JOIN subscriptions s ON s.feed_id = f.id
			JOIN payments p ON p.user_id = s.user_id AND p.status = 'active' AND p.plan IN ('pro', 'power')
			WHERE f.last_fetched_at IS NULL OR f.last_fetched_at < ?
			ORDER BY f.id
		`
	} else {
		query = `
			SELECT DISTINCT f.id FROM feeds f
			JOIN subscriptions s ON s.feed_id = f.id
			WHERE NOT EXISTS (
				SELECT 1 FROM payments p
				WHERE p.user_id = s.user_id AND p.status = 'active' AND p.plan IN ('pro', 'power')
			)
			AND (f.last_fetched_at IS NULL OR f.last_fetched_at < ?)
			ORDER BY f.id
		`
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, cutoff); err != nil {
		return nil, fmt.Errorf("get due feeds: %w", err)
	}
	return ids, nil
}

// toDomainFeed converts feedSQL to domain.Feed
func (r *FeedRepository) toDomainFeed(sqlFeed *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:            sqlFeed.ID,
		URL:           sqlFeed.URL,
		Title:         sqlFeed.Title,
		SiteURL:       sqlFeed.SiteURL,
		LastFetchedAt: sqlFeed.LastFetchedAt,
		CreatedAt:     sqlFeed.CreatedAt,
		UpdatedAt:     sqlFeed.UpdatedAt,
	}
}
