package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivsy/rivsy/pkg/config"
	"github.com/rivsy/rivsy/pkg/domain"
)

// fakeUpstream is a minimal OpenAI-compatible chat completion endpoint. It
// records the requests it serves and replies with a canned message.
type fakeUpstream struct {
	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
	reply    string
	status   int
	delay    time.Duration
	srv      *httptest.Server
}

func newFakeUpstream(t *testing.T, reply string) *fakeUpstream {
	f := &fakeUpstream{reply: reply, status: http.StatusOK}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()

		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		if f.status != http.StatusOK {
			http.Error(w, "upstream error", f.status)
			return
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeUpstream) lastRequest(t *testing.T) openai.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func testEnricher(f *fakeUpstream) *Enricher {
	return NewEnricher(config.AIConfig{
		Endpoint:    f.srv.URL,
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
	})
}

var testArticle = Article{
	Title:   "Go 1.24 Released",
	Content: "The Go team has released version 1.24 with generics improvements.",
	URL:     "https://example.com/go-1-24",
}

func TestEnricher_Summarize(t *testing.T) {
	upstream := newFakeUpstream(t, "  A new Go version shipped. It improves generics.  ")
	e := testEnricher(upstream)

	summary, err := e.Summarize(context.Background(), testArticle)
	require.NoError(t, err)
	assert.Equal(t, "A new Go version shipped. It improves generics.", summary, "reply is trimmed")

	req := upstream.lastRequest(t)
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 200, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 0.001)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "Go 1.24 Released")
	assert.Contains(t, req.Messages[1].Content, "concise summary")
}

func TestEnricher_GenerateSocialPost(t *testing.T) {
	t.Run("platform shapes prompt and token budget", func(t *testing.T) {
		tests := []struct {
			platform   domain.Platform
			wantTokens int
			wantRule   string
		}{
			{domain.PlatformTwitter, 100, "280 characters"},
			{domain.PlatformLinkedIn, 400, "Professional tone"},
			{domain.PlatformReddit, 300, "encourage discussion"},
		}
		for _, tt := range tests {
			t.Run(string(tt.platform), func(t *testing.T) {
				upstream := newFakeUpstream(t, "Check out the new Go release! #golang")
				e := testEnricher(upstream)

				post, err := e.GenerateSocialPost(context.Background(), testArticle, tt.platform, domain.ToneCasual)
				require.NoError(t, err)
				assert.Equal(t, "Check out the new Go release! #golang", post)

				req := upstream.lastRequest(t)
				assert.Equal(t, tt.wantTokens, req.MaxTokens)
				assert.Contains(t, req.Messages[1].Content, tt.wantRule)
				assert.Contains(t, req.Messages[1].Content, testArticle.URL)
			})
		}
	})

	t.Run("unsupported platform rejected locally", func(t *testing.T) {
		upstream := newFakeUpstream(t, "unused")
		e := testEnricher(upstream)

		_, err := e.GenerateSocialPost(context.Background(), testArticle, "myspace", domain.ToneCasual)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported platform")
		assert.Empty(t, upstream.requests, "invalid request never reaches the upstream")
	})

	t.Run("unknown tone falls back to engaging", func(t *testing.T) {
		upstream := newFakeUpstream(t, "post")
		e := testEnricher(upstream)

		_, err := e.GenerateSocialPost(context.Background(), testArticle, domain.PlatformTwitter, "sarcastic")
		require.NoError(t, err)
		assert.Contains(t, upstream.lastRequest(t).Messages[1].Content, "encourage interaction")
	})
}

func TestEnricher_ExtractKeywords(t *testing.T) {
	t.Run("splits and trims comma list", func(t *testing.T) {
		upstream := newFakeUpstream(t, "golang, release,  generics , performance,")
		e := testEnricher(upstream)

		keywords, err := e.ExtractKeywords(context.Background(), testArticle)
		require.NoError(t, err)
		assert.Equal(t, []string{"golang", "release", "generics", "performance"}, keywords)
		assert.Equal(t, 100, upstream.lastRequest(t).MaxTokens)
	})

	t.Run("blank reply yields no keywords", func(t *testing.T) {
		upstream := newFakeUpstream(t, "   ")
		e := testEnricher(upstream)

		keywords, err := e.ExtractKeywords(context.Background(), testArticle)
		require.NoError(t, err)
		assert.Empty(t, keywords)
	})
}

func TestEnricher_AnalyzeSentiment(t *testing.T) {
	t.Run("valid json reply", func(t *testing.T) {
		upstream := newFakeUpstream(t, `{"sentiment": "positive", "confidence": 0.92, "emotions": ["excitement"]}`)
		e := testEnricher(upstream)

		res, err := e.AnalyzeSentiment(context.Background(), testArticle)
		require.NoError(t, err)
		assert.Equal(t, "positive", res.Sentiment)
		assert.InDelta(t, 0.92, res.Confidence, 0.001)
		assert.Equal(t, []string{"excitement"}, res.Emotions)
	})

	t.Run("chatty reply with embedded json", func(t *testing.T) {
		upstream := newFakeUpstream(t, "Sure! Here is the analysis:\n```json\n{\"sentiment\": \"negative\", \"confidence\": 0.6}\n```")
		e := testEnricher(upstream)

		res, err := e.AnalyzeSentiment(context.Background(), testArticle)
		require.NoError(t, err)
		assert.Equal(t, "negative", res.Sentiment)
		assert.InDelta(t, 0.6, res.Confidence, 0.001)
	})

	t.Run("malformed reply degrades to neutral", func(t *testing.T) {
		upstream := newFakeUpstream(t, "I feel like this article is pretty upbeat overall!")
		e := testEnricher(upstream)

		res, err := e.AnalyzeSentiment(context.Background(), testArticle)
		require.NoError(t, err)
		assert.Equal(t, "neutral", res.Sentiment)
		assert.Zero(t, res.Confidence)
	})
}

func TestEnricher_UpstreamFailures(t *testing.T) {
	t.Run("http error maps to ErrUpstream", func(t *testing.T) {
		upstream := newFakeUpstream(t, "unused")
		upstream.status = http.StatusInternalServerError
		e := testEnricher(upstream)

		_, err := e.Summarize(context.Background(), testArticle)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("slow upstream maps to ErrUpstreamTimeout", func(t *testing.T) {
		upstream := newFakeUpstream(t, "too late")
		upstream.delay = 300 * time.Millisecond
		e := NewEnricher(config.AIConfig{
			Endpoint: upstream.srv.URL,
			APIKey:   "test-key",
			Model:    "gpt-4o-mini",
			Timeout:  50 * time.Millisecond,
		})

		_, err := e.Summarize(context.Background(), testArticle)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstreamTimeout)
	})
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 10))
	assert.Equal(t, "abc", clip("abcdef", 3))
	assert.Equal(t, "", clip("", 5))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONObject(`prefix {"a":1} suffix`))
	assert.Equal(t, "no braces here", extractJSONObject("no braces here"))
	assert.Equal(t, `{"a":{"b":2}}`, extractJSONObject(`{"a":{"b":2}}`))
}
