package domain

import "time"

// Feed represents an externally-hosted syndication source, identified by its
// canonical URL. Created on first subscription, updated on every successful
// refresh.
type Feed struct {
	ID            int64
	URL           string
	Title         string
	SiteURL       string
	LastFetchedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Article is a single ingested entry. Immutable after insert: re-ingestion of
// already-seen content is a no-op, never an update.
type Article struct {
	ID          int64
	FeedID      int64
	GUID        string
	Title       string
	URL         string
	PublishedAt time.Time
	Author      string
	SummaryHTML string
	ContentHTML string
	Checksum    string
	CreatedAt   time.Time
}

// Subscription links a subscriber to a feed with an optional category label
type Subscription struct {
	ID        int64
	UserID    string
	FeedID    int64
	Category  string
	CreatedAt time.Time
}

// ReadMarker records that a subscriber has read an article
type ReadMarker struct {
	ArticleID int64
	UserID    string
	ReadAt    time.Time
}

// ParsedFeed is the normalized result of fetching a source URL, either from a
// real RSS/Atom document or synthesized by the scraping fallback
type ParsedFeed struct {
	Title   string
	SiteURL string
	Entries []ParsedEntry
}

// ParsedEntry is a single candidate entry before deduplication
type ParsedEntry struct {
	GUID        string
	Title       string
	URL         string
	PublishedAt time.Time
	Author      string
	Summary     string
	Content     string
}

// RefreshResult reports the outcome of a single feed refresh
type RefreshResult struct {
	FeedID        int64
	ArticlesAdded int
}
