package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Blog</title>
    <link>https://blog.example.com</link>
    <description>A test blog</description>
    <item>
      <title>First Post</title>
      <link>https://blog.example.com/first</link>
      <guid>post-1</guid>
      <pubDate>Mon, 02 Jun 2025 10:00:00 GMT</pubDate>
      <author>alice@example.com (Alice)</author>
      <description>Summary of the first post</description>
    </item>
    <item>
      <title>Second Post</title>
      <link>https://blog.example.com/second</link>
      <description>Summary of the second post</description>
    </item>
  </channel>
</rss>`

const sampleAtom = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <link href="https://atom.example.com"/>
  <updated>2025-06-02T10:00:00Z</updated>
  <entry>
    <title>Atom Entry</title>
    <link href="https://atom.example.com/entry1"/>
    <id>urn:uuid:entry-1</id>
    <updated>2025-06-01T09:00:00Z</updated>
    <content type="html">&lt;p&gt;full content&lt;/p&gt;</content>
  </entry>
</feed>`

func TestParser_Parse(t *testing.T) {
	t.Run("rss feed", func(t *testing.T) {
		p := NewParser()
		parsed, err := p.Parse(strings.NewReader(sampleRSS), "https://blog.example.com/feed.xml")
		require.NoError(t, err)

		assert.Equal(t, "Test Blog", parsed.Title)
		assert.Equal(t, "https://blog.example.com", parsed.SiteURL)
		require.Len(t, parsed.Entries, 2)

		first := parsed.Entries[0]
		assert.Equal(t, "First Post", first.Title)
		assert.Equal(t, "https://blog.example.com/first", first.URL)
		assert.Equal(t, "post-1", first.GUID)
		assert.Equal(t, "Summary of the first post", first.Summary)
		assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), first.PublishedAt.UTC())
	})

	t.Run("atom feed", func(t *testing.T) {
		p := NewParser()
		parsed, err := p.Parse(strings.NewReader(sampleAtom), "https://atom.example.com/feed")
		require.NoError(t, err)

		assert.Equal(t, "Atom Feed", parsed.Title)
		require.Len(t, parsed.Entries, 1)
		assert.Equal(t, "urn:uuid:entry-1", parsed.Entries[0].GUID)
		assert.Equal(t, "<p>full content</p>", parsed.Entries[0].Content)
	})

	t.Run("guid falls back to link", func(t *testing.T) {
		p := NewParser()
		parsed, err := p.Parse(strings.NewReader(sampleRSS), "https://blog.example.com/feed.xml")
		require.NoError(t, err)

		require.Len(t, parsed.Entries, 2)
		assert.Equal(t, "https://blog.example.com/second", parsed.Entries[1].GUID)
	})

	t.Run("missing publish date defaults to now", func(t *testing.T) {
		p := NewParser()
		before := time.Now()
		parsed, err := p.Parse(strings.NewReader(sampleRSS), "https://blog.example.com/feed.xml")
		require.NoError(t, err)

		second := parsed.Entries[1]
		assert.False(t, second.PublishedAt.Before(before))
		assert.False(t, second.PublishedAt.After(time.Now()))
	})

	t.Run("generated guid when neither guid nor link present", func(t *testing.T) {
		raw := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>
<item><title>no identity</title><description>d</description></item>
<item><title>no identity</title><description>d</description></item>
</channel></rss>`
		p := NewParser()
		parsed, err := p.Parse(strings.NewReader(raw), "https://example.com/feed")
		require.NoError(t, err)
		require.Len(t, parsed.Entries, 2)
		assert.NotEmpty(t, parsed.Entries[0].GUID)
		assert.NotEqual(t, parsed.Entries[0].GUID, parsed.Entries[1].GUID)
	})

	t.Run("empty titles get defaults", func(t *testing.T) {
		raw := `<?xml version="1.0"?><rss version="2.0"><channel>
<item><link>https://example.com/x</link></item>
</channel></rss>`
		p := NewParser()
		parsed, err := p.Parse(strings.NewReader(raw), "https://example.com/feed")
		require.NoError(t, err)

		assert.Equal(t, "Unknown Feed", parsed.Title)
		assert.Equal(t, "https://example.com/feed", parsed.SiteURL)
		require.Len(t, parsed.Entries, 1)
		assert.Equal(t, "Untitled", parsed.Entries[0].Title)
	})

	t.Run("not a feed", func(t *testing.T) {
		p := NewParser()
		_, err := p.Parse(strings.NewReader("<html><body>hello</body></html>"), "https://example.com")
		require.Error(t, err)
	})
}
