package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivsy/rivsy/pkg/credits"
	"github.com/rivsy/rivsy/pkg/domain"
	"github.com/rivsy/rivsy/pkg/feed"
	"github.com/rivsy/rivsy/pkg/llm"
	"github.com/rivsy/rivsy/pkg/repository"
	"github.com/rivsy/rivsy/server/mocks"
)

// testServer creates a server instance with the given mocks plugged in
func testServer(params Params) *Server {
	if params.Config == nil {
		params.Config = &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) {
				return ":8080", 30 * time.Second
			},
		}
	}
	if params.Version == "" {
		params.Version = "test"
	}
	return New(params)
}

func TestServer_New(t *testing.T) {
	srv := testServer(Params{Version: "1.0.0"})
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := testServer(Params{Config: cfg})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", strings.TrimSpace(string(body)))
}

func TestServer_Status(t *testing.T) {
	srv := testServer(Params{Version: "1.2.3"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
}

func TestServer_AddFeed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		feedSvc := &mocks.FeedServiceMock{
			GetOrCreateFeedFunc: func(ctx context.Context, url string) (*domain.Feed, error) {
				return &domain.Feed{ID: 42, URL: url, Title: "Example Feed"}, nil
			},
		}
		subs := &mocks.SubscriptionStoreMock{
			CreateSubscriptionFunc: func(ctx context.Context, sub *domain.Subscription) error {
				return nil
			},
		}
		srv := testServer(Params{Feeds: feedSvc, Subscriptions: subs})

		body := `{"url":"https://example.com/feed.xml","user_id":"u1","category":"tech"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp feedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "Example Feed", resp.Title)
		assert.Equal(t, "tech", resp.Category)

		require.Len(t, subs.CreateSubscriptionCalls(), 1)
		assert.Equal(t, "u1", subs.CreateSubscriptionCalls()[0].Sub.UserID)
		assert.Equal(t, int64(42), subs.CreateSubscriptionCalls()[0].Sub.FeedID)
	})

	t.Run("missing url", func(t *testing.T) {
		srv := testServer(Params{})

		body := `{"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already subscribed", func(t *testing.T) {
		feedSvc := &mocks.FeedServiceMock{
			GetOrCreateFeedFunc: func(ctx context.Context, url string) (*domain.Feed, error) {
				return &domain.Feed{ID: 42, URL: url}, nil
			},
		}
		subs := &mocks.SubscriptionStoreMock{
			CreateSubscriptionFunc: func(ctx context.Context, sub *domain.Subscription) error {
				return repository.ErrDuplicate
			},
		}
		srv := testServer(Params{Feeds: feedSvc, Subscriptions: subs})

		body := `{"url":"https://example.com/feed.xml","user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unreachable feed", func(t *testing.T) {
		fetchErr := &feed.FetchError{Kind: feed.KindNetwork, URL: "https://dead.example.com/feed.xml",
			Err: fmt.Errorf("connection refused")}
		feedSvc := &mocks.FeedServiceMock{
			GetOrCreateFeedFunc: func(ctx context.Context, url string) (*domain.Feed, error) {
				return nil, fmt.Errorf("register: %w", fetchErr)
			},
		}
		srv := testServer(Params{Feeds: feedSvc})

		body := `{"url":"https://dead.example.com/feed.xml","user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestServer_RemoveFeed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		subs := &mocks.SubscriptionStoreMock{
			DeleteSubscriptionFunc: func(ctx context.Context, userID string, feedID int64) error {
				return nil
			},
		}
		srv := testServer(Params{Subscriptions: subs})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/feeds/42?user_id=u1", http.NoBody)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, subs.DeleteSubscriptionCalls(), 1)
		assert.Equal(t, int64(42), subs.DeleteSubscriptionCalls()[0].FeedID)
	})

	t.Run("not subscribed", func(t *testing.T) {
		subs := &mocks.SubscriptionStoreMock{
			DeleteSubscriptionFunc: func(ctx context.Context, userID string, feedID int64) error {
				return repository.ErrNotFound
			},
		}
		srv := testServer(Params{Subscriptions: subs})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/feeds/42?user_id=u1", http.NoBody)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_RefreshFeed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		feedSvc := &mocks.FeedServiceMock{
			RefreshFunc: func(ctx context.Context, feedID int64) (domain.RefreshResult, error) {
				return domain.RefreshResult{FeedID: feedID, ArticlesAdded: 7}, nil
			},
		}
		srv := testServer(Params{Feeds: feedSvc})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds/42/refresh", http.NoBody)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InEpsilon(t, float64(7), resp["articles_added"], 0.001)
	})

	t.Run("unknown feed", func(t *testing.T) {
		feedSvc := &mocks.FeedServiceMock{
			RefreshFunc: func(ctx context.Context, feedID int64) (domain.RefreshResult, error) {
				return domain.RefreshResult{}, repository.ErrNotFound
			},
		}
		srv := testServer(Params{Feeds: feedSvc})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds/99/refresh", http.NoBody)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		srv := testServer(Params{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/feeds/abc/refresh", http.NoBody)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_Credits(t *testing.T) {
	creditSvc := &mocks.CreditServiceMock{
		CurrentCycleFunc: func(ctx context.Context, userID string) (domain.CreditStatus, error) {
			return domain.CreditStatus{Used: 3, Limit: 5, Plan: domain.PlanFree,
				CycleEnd: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}, nil
		},
	}
	srv := testServer(Params{Credits: creditSvc})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credits?user_id=u1", http.NoBody)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InEpsilon(t, float64(3), resp["used"], 0.001)
	assert.InEpsilon(t, float64(5), resp["limit"], 0.001)
	assert.InEpsilon(t, float64(2), resp["remaining"], 0.001)
	assert.Equal(t, "free", resp["plan"])
}

func TestServer_Summarize(t *testing.T) {
	article := &domain.Article{ID: 10, Title: "Title", ContentHTML: "content", URL: "https://example.com/a"}

	t.Run("success marks article read", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
			MarkReadFunc:   func(ctx context.Context, articleID int64, userID string) error { return nil },
		}
		creditSvc := &mocks.CreditServiceMock{
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			SummarizeFunc: func(ctx context.Context, a llm.Article) (string, error) {
				return "short summary", nil
			},
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "short summary", resp["summary"])
		assert.NotContains(t, resp, "warning")

		require.Len(t, articles.MarkReadCalls(), 1)
		assert.Equal(t, int64(10), articles.MarkReadCalls()[0].ArticleID)
		assert.Equal(t, "u1", articles.MarkReadCalls()[0].UserID)
	})

	t.Run("soft limit warning passed through", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
			MarkReadFunc:   func(ctx context.Context, articleID int64, userID string) error { return nil },
		}
		creditSvc := &mocks.CreditServiceMock{
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true, Warning: "You have exceeded your plan limit."}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			SummarizeFunc: func(ctx context.Context, a llm.Article) (string, error) { return "summary", nil },
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["warning"], "exceeded your plan limit")
	})

	t.Run("limit exceeded", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
		}
		creditSvc := &mocks.CreditServiceMock{
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{}, credits.ErrLimitExceeded
			},
		}
		enricher := &mocks.EnricherMock{}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, enricher.SummarizeCalls())
	})

	t.Run("article not found", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				return nil, repository.ErrNotFound
			},
		}
		srv := testServer(Params{Articles: articles})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
		}
		creditSvc := &mocks.CreditServiceMock{
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			SummarizeFunc: func(ctx context.Context, a llm.Article) (string, error) {
				return "", fmt.Errorf("call upstream: %w", llm.ErrUpstream)
			},
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestServer_SocialPost(t *testing.T) {
	article := &domain.Article{ID: 10, Title: "Title", ContentHTML: "content"}
	articles := &mocks.ArticleStoreMock{
		GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
	}

	t.Run("paid plan generates post", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanPro, nil },
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			GenerateSocialPostFunc: func(ctx context.Context, a llm.Article, platform domain.Platform, tone domain.Tone) (string, error) {
				return "a post", nil
			},
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1","platform":"twitter","tone":"casual"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/social-post", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, enricher.GenerateSocialPostCalls(), 1)
		assert.Equal(t, domain.PlatformTwitter, enricher.GenerateSocialPostCalls()[0].Platform)
		assert.Equal(t, domain.ToneCasual, enricher.GenerateSocialPostCalls()[0].Tone)
	})

	t.Run("free plan rejected", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanFree, nil },
		}
		enricher := &mocks.EnricherMock{}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1","platform":"twitter"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/social-post", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, enricher.GenerateSocialPostCalls())
	})

	t.Run("unsupported platform", func(t *testing.T) {
		srv := testServer(Params{Articles: articles})

		body := `{"article_id":10,"user_id":"u1","platform":"myspace"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/social-post", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("tone defaults to professional", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanPower, nil },
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			GenerateSocialPostFunc: func(ctx context.Context, a llm.Article, platform domain.Platform, tone domain.Tone) (string, error) {
				return "a post", nil
			},
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1","platform":"linkedin"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/social-post", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, enricher.GenerateSocialPostCalls(), 1)
		assert.Equal(t, domain.ToneProfessional, enricher.GenerateSocialPostCalls()[0].Tone)
	})
}

func TestServer_Keywords(t *testing.T) {
	article := &domain.Article{ID: 10, Title: "Title", ContentHTML: "content"}
	articles := &mocks.ArticleStoreMock{
		GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
	}

	t.Run("paid plan extracts keywords", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanPro, nil },
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			ExtractKeywordsFunc: func(ctx context.Context, a llm.Article) ([]string, error) {
				return []string{"go", "rss", "feeds"}, nil
			},
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/keywords", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp["keywords"], 3)
	})

	t.Run("free plan rejected without spending a credit", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanFree, nil },
		}
		enricher := &mocks.EnricherMock{}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/keywords", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, enricher.ExtractKeywordsCalls())
		assert.Empty(t, creditSvc.ConsumeCalls(), "gate check precedes credit consumption")
	})
}

func TestServer_Sentiment(t *testing.T) {
	article := &domain.Article{ID: 10, Title: "Title", ContentHTML: "content"}
	articles := &mocks.ArticleStoreMock{
		GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) { return article, nil },
	}

	t.Run("paid plan analyzes sentiment", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanPower, nil },
			ConsumeFunc: func(ctx context.Context, userID string) (domain.ConsumeResult, error) {
				return domain.ConsumeResult{OK: true}, nil
			},
		}
		enricher := &mocks.EnricherMock{
			AnalyzeSentimentFunc: func(ctx context.Context, a llm.Article) (domain.SentimentResult, error) {
				return domain.SentimentResult{Sentiment: "positive", Confidence: 0.9, Emotions: []string{"joy"}}, nil
			},
		}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/sentiment", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "positive", resp["sentiment"])
		assert.InEpsilon(t, 0.9, resp["confidence"], 0.001)
	})

	t.Run("free plan rejected without spending a credit", func(t *testing.T) {
		creditSvc := &mocks.CreditServiceMock{
			PlanFunc: func(ctx context.Context, userID string) (domain.Plan, error) { return domain.PlanFree, nil },
		}
		enricher := &mocks.EnricherMock{}
		srv := testServer(Params{Articles: articles, Credits: creditSvc, Enricher: enricher})

		body := `{"article_id":10,"user_id":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/sentiment", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, enricher.AnalyzeSentimentCalls())
		assert.Empty(t, creditSvc.ConsumeCalls(), "gate check precedes credit consumption")
	})
}

func TestServer_FeedArticles(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		GetFeedArticlesFunc: func(ctx context.Context, feedID int64, limit int) ([]domain.Article, error) {
			return []domain.Article{
				{ID: 1, FeedID: feedID, Title: "First", URL: "https://example.com/1", PublishedAt: time.Now()},
				{ID: 2, FeedID: feedID, Title: "Second", URL: "https://example.com/2", PublishedAt: time.Now()},
			}, nil
		},
	}
	srv := testServer(Params{Articles: articles})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feeds/42/articles?limit=10", http.NoBody)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	require.Len(t, articles.GetFeedArticlesCalls(), 1)
	assert.Equal(t, 10, articles.GetFeedArticlesCalls()[0].Limit)
}
