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

// ArticleRepository handles article-related database operations. Articles are
// insert-only: there is no update path, content drift on the source is not
// reflected retroactively.
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64     `db:"id"`
	FeedID      int64     `db:"feed_id"`
	GUID        string    `db:"guid"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	PublishedAt time.Time `db:"published_at"`
	Author      string    `db:"author"`
	SummaryHTML string    `db:"summary_html"`
	ContentHTML string    `db:"content_html"`
	Checksum    string    `db:"checksum"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts a new article. A conflict on either UNIQUE(checksum)
// or UNIQUE(feed_id, guid) returns ErrDuplicate; lock contention is retried.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	sqlArticle := &articleSQL{
		FeedID:      article.FeedID,
		GUID:        article.GUID,
		Title:       article.Title,
		URL:         article.URL,
		PublishedAt: article.PublishedAt,
		Author:      article.Author,
		SummaryHTML: article.SummaryHTML,
		ContentHTML: article.ContentHTML,
		Checksum:    article.Checksum,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	// ErrDuplicate is terminal, retrying a uniqueness conflict cannot succeed
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (
				feed_id, guid, title, url, published_at,
				author, summary_html, content_html, checksum
			) VALUES (
				:feed_id, :guid, :title, :url, :published_at,
				:author, :summary_html, :content_html, :checksum
			)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			if isUniqueConstraintError(err) {
				return &criticalError{err: fmt.Errorf("create article %s: %w", article.GUID, ErrDuplicate)}
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		article.ID = id
		return nil
	}, ErrDuplicate)
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// FindArticleByFingerprint looks up an article by its content checksum across
// the whole corpus, the global deduplication probe
func (r *ArticleRepository) FindArticleByFingerprint(ctx context.Context, checksum string) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE checksum = ?", checksum)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article checksum %s: %w", checksum, ErrNotFound)
		}
		return nil, fmt.Errorf("find article by fingerprint: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// GetFeedArticles retrieves articles for a feed, newest first
func (r *ArticleRepository) GetFeedArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error) {
	query := `
		SELECT * FROM articles
		WHERE feed_id = ?
		ORDER BY published_at DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, feedID, limit); err != nil {
		return nil, fmt.Errorf("get feed articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = *r.toDomainArticle(&a)
	}
	return articles, nil
}

// CountFeedArticles returns the number of articles stored for a feed
func (r *ArticleRepository) CountFeedArticles(ctx context.Context, feedID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE feed_id = ?", feedID); err != nil {
		return 0, fmt.Errorf("count feed articles: %w", err)
	}
	return count, nil
}

// MarkRead records that a user has read an article. Idempotent: marking an
// already-read article keeps the original timestamp.
func (r *ArticleRepository) MarkRead(ctx context.Context, articleID int64, userID string) error {
	query := `
		INSERT INTO article_reads (article_id, user_id)
		VALUES (?, ?)
		ON CONFLICT (article_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, articleID, userID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// IsRead reports whether a user has read an article
func (r *ArticleRepository) IsRead(ctx context.Context, articleID int64, userID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM article_reads WHERE article_id = ? AND user_id = ?", articleID, userID)
	if err != nil {
		return false, fmt.Errorf("check read marker: %w", err)
	}
	return count > 0, nil
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(sqlArticle *articleSQL) *domain.Article {
	return &domain.Article{
		ID:          sqlArticle.ID,
		FeedID:      sqlArticle.FeedID,
		GUID:        sqlArticle.GUID,
		Title:       sqlArticle.Title,
		URL:         sqlArticle.URL,
		PublishedAt: sqlArticle.PublishedAt,
		Author:      sqlArticle.Author,
		SummaryHTML: sqlArticle.SummaryHTML,
		ContentHTML: sqlArticle.ContentHTML,
		Checksum:    sqlArticle.Checksum,
		CreatedAt:   sqlArticle.CreatedAt,
	}
}
