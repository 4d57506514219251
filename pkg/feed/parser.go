package feed

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/rivsy/rivsy/pkg/domain"
)

// Parser converts raw RSS/Atom bytes into a normalized ParsedFeed. Each call
// uses a fresh gofeed parser, so it is safe to parse many feeds concurrently.
type Parser struct{}

// NewParser creates a new feed parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a feed document and returns its normalized entries. Entries
// without a GUID fall back to their URL, then to a freshly generated token;
// entries without a publish date default to the time of ingestion.
func (p *Parser) Parse(r io.Reader, sourceURL string) (*domain.ParsedFeed, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedFeed{
		Title:   parsed.Title,
		SiteURL: parsed.Link,
		Entries: make([]domain.ParsedEntry, 0, len(parsed.Items)),
	}
	if result.Title == "" {
		result.Title = "Unknown Feed"
	}
	if result.SiteURL == "" {
		result.SiteURL = sourceURL
	}

	for _, item := range parsed.Items {
		entry := domain.ParsedEntry{
			Title:   item.Title,
			URL:     item.Link,
			Summary: item.Description,
			Content: item.Content,
		}
		if entry.Title == "" {
			entry.Title = "Untitled"
		}
		if entry.Content == "" {
			entry.Content = item.Description
		}

		// a fresh random token is never reused, forcing content-level dedup
		// for feeds that supply neither guid nor link
		switch {
		case item.GUID != "":
			entry.GUID = item.GUID
		case item.Link != "":
			entry.GUID = item.Link
		default:
			entry.GUID = uuid.NewString()
		}

		if item.Author != nil {
			entry.Author = item.Author.Name
		}

		switch {
		case item.PublishedParsed != nil:
			entry.PublishedAt = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			entry.PublishedAt = *item.UpdatedParsed
		default:
			entry.PublishedAt = time.Now()
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}
