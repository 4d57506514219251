package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/rivsy/rivsy/pkg/domain"
	"github.com/rivsy/rivsy/pkg/llm"
)

//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService
//go:generate moq -out mocks/subscription_store.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/credit_service.go -pkg mocks -skip-ensure -fmt goimports . CreditService
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config        ConfigProvider
	feeds         FeedService
	subscriptions SubscriptionStore
	articles      ArticleStore
	credits       CreditService
	enricher      Enricher
	version       string
	debug         bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedService registers feeds and refreshes them on demand
type FeedService interface {
	GetOrCreateFeed(ctx context.Context, url string) (*domain.Feed, error)
	Refresh(ctx context.Context, feedID int64) (domain.RefreshResult, error)
}

// SubscriptionStore manages subscriber-to-feed links
type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, sub *domain.Subscription) error
	DeleteSubscription(ctx context.Context, userID string, feedID int64) error
	GetUserSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
}

// ArticleStore provides article access for listing and enrichment
type ArticleStore interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	GetFeedArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error)
	MarkRead(ctx context.Context, articleID int64, userID string) error
}

// CreditService gates AI operations by the subscriber's credit cycle
type CreditService interface {
	Plan(ctx context.Context, userID string) (domain.Plan, error)
	CurrentCycle(ctx context.Context, userID string) (domain.CreditStatus, error)
	CanUse(ctx context.Context, userID string) (bool, error)
	Consume(ctx context.Context, userID string) (domain.ConsumeResult, error)
}

// Enricher performs AI operations on article content
type Enricher interface {
	Summarize(ctx context.Context, article llm.Article) (string, error)
	GenerateSocialPost(ctx context.Context, article llm.Article, platform domain.Platform, tone domain.Tone) (string, error)
	ExtractKeywords(ctx context.Context, article llm.Article) ([]string, error)
	AnalyzeSentiment(ctx context.Context, article llm.Article) (domain.SentimentResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds server dependencies
type Params struct {
	Config        ConfigProvider
	Feeds         FeedService
	Subscriptions SubscriptionStore
	Articles      ArticleStore
	Credits       CreditService
	Enricher      Enricher
	Version       string
	Debug         bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:        params.Config,
		feeds:         params.Feeds,
		subscriptions: params.Subscriptions,
		articles:      params.Articles,
		credits:       params.Credits,
		enricher:      params.Enricher,
		version:       params.Version,
		debug:         params.Debug,
		router:        routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler exposes the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("rivsy", "rivsy", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /feeds", s.addFeedHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.removeFeedHandler)
		r.HandleFunc("POST /feeds/{id}/refresh", s.refreshFeedHandler)
		r.HandleFunc("GET /feeds/{id}/articles", s.feedArticlesHandler)

		r.HandleFunc("GET /credits", s.creditsHandler)

		r.HandleFunc("POST /ai/summarize", s.summarizeHandler)
		r.HandleFunc("POST /ai/social-post", s.socialPostHandler)
		r.HandleFunc("POST /ai/keywords", s.keywordsHandler)
		r.HandleFunc("POST /ai/sentiment", s.sentimentHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
