package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rivsy/rivsy/pkg/credits"
	"github.com/rivsy/rivsy/pkg/domain"
	"github.com/rivsy/rivsy/pkg/feed"
	"github.com/rivsy/rivsy/pkg/llm"
	"github.com/rivsy/rivsy/pkg/repository"
)

// addFeedRequest is the payload for feed registration
type addFeedRequest struct {
	URL      string `json:"url"`
	UserID   string `json:"user_id"`
	Category string `json:"category,omitempty"`
}

// feedResponse is the subscriber-facing feed representation
type feedResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	SiteURL  string `json:"site_url,omitempty"`
	Category string `json:"category,omitempty"`
}

// addFeedHandler registers a feed by URL and subscribes the user to it.
// The feed is fetched immediately so a dead URL is rejected up front.
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req addFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.URL == "" || req.UserID == "" {
		RenderError(w, r, errors.New("url and user_id are required"), http.StatusBadRequest)
		return
	}

	f, err := s.feeds.GetOrCreateFeed(r.Context(), req.URL)
	if err != nil {
		RenderError(w, r, fmt.Errorf("register feed: %w", err), fetchErrorCode(err))
		return
	}

	sub := &domain.Subscription{UserID: req.UserID, FeedID: f.ID, Category: req.Category}
	if err := s.subscriptions.CreateSubscription(r.Context(), sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			RenderError(w, r, errors.New("already subscribed"), http.StatusConflict)
			return
		}
		RenderError(w, r, fmt.Errorf("subscribe: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusCreated, feedResponse{
		ID:       f.ID,
		URL:      f.URL,
		Title:    f.Title,
		SiteURL:  f.SiteURL,
		Category: req.Category,
	})
}

// listFeedsHandler returns the user's subscriptions
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		RenderError(w, r, errors.New("user_id is required"), http.StatusBadRequest)
		return
	}

	subs, err := s.subscriptions.GetUserSubscriptions(r.Context(), userID)
	if err != nil {
		RenderError(w, r, fmt.Errorf("list subscriptions: %w", err), http.StatusInternalServerError)
		return
	}

	type subscriptionResponse struct {
		FeedID   int64  `json:"feed_id"`
		Category string `json:"category,omitempty"`
	}
	resp := make([]subscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, subscriptionResponse{FeedID: sub.FeedID, Category: sub.Category})
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// removeFeedHandler drops the user's subscription to a feed. The feed itself
// and its articles stay, other users may still be subscribed.
func (s *Server) removeFeedHandler(w http.ResponseWriter, r *http.Request) {
	feedID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, errors.New("invalid feed id"), http.StatusBadRequest)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		RenderError(w, r, errors.New("user_id is required"), http.StatusBadRequest)
		return
	}

	if err := s.subscriptions.DeleteSubscription(r.Context(), userID, feedID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, errors.New("subscription not found"), http.StatusNotFound)
			return
		}
		RenderError(w, r, fmt.Errorf("unsubscribe: %w", err), http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "unsubscribed"})
}

// refreshFeedHandler triggers an immediate refresh of a single feed
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	feedID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, errors.New("invalid feed id"), http.StatusBadRequest)
		return
	}

	res, err := s.feeds.Refresh(r.Context(), feedID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, errors.New("feed not found"), http.StatusNotFound)
			return
		}
		RenderError(w, r, fmt.Errorf("refresh feed: %w", err), fetchErrorCode(err))
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"feed_id":        res.FeedID,
		"articles_added": res.ArticlesAdded,
	})
}

// feedArticlesHandler lists recent articles of a feed
func (s *Server) feedArticlesHandler(w http.ResponseWriter, r *http.Request) {
	feedID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, errors.New("invalid feed id"), http.StatusBadRequest)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	articles, err := s.articles.GetFeedArticles(r.Context(), feedID, limit)
	if err != nil {
		RenderError(w, r, fmt.Errorf("list articles: %w", err), http.StatusInternalServerError)
		return
	}

	type articleResponse struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"published_at"`
		Author      string `json:"author,omitempty"`
	}
	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, articleResponse{
			ID:          a.ID,
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: a.PublishedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Author:      a.Author,
		})
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// creditsHandler reports the user's current credit cycle
func (s *Server) creditsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		RenderError(w, r, errors.New("user_id is required"), http.StatusBadRequest)
		return
	}

	status, err := s.credits.CurrentCycle(r.Context(), userID)
	if err != nil {
		RenderError(w, r, fmt.Errorf("credit status: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"used":      status.Used,
		"limit":     status.Limit,
		"remaining": status.Remaining(),
		"plan":      status.Plan,
		"cycle_end": status.CycleEnd.UTC(),
	})
}

// aiRequest is the shared payload for AI operations
type aiRequest struct {
	ArticleID int64  `json:"article_id"`
	UserID    string `json:"user_id"`
	Platform  string `json:"platform,omitempty"`
	Tone      string `json:"tone,omitempty"`
}

// summarizeHandler consumes a credit and produces an article summary,
// marking the article read for the user on success
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	req, article, ok := s.prepareAIRequest(w, r)
	if !ok {
		return
	}

	consumed, ok := s.consumeCredit(w, r, req.UserID)
	if !ok {
		return
	}

	summary, err := s.enricher.Summarize(r.Context(), article)
	if err != nil {
		RenderError(w, r, fmt.Errorf("summarize: %w", err), upstreamErrorCode(err))
		return
	}

	// summary implies the user has read the article
	if err := s.articles.MarkRead(r.Context(), req.ArticleID, req.UserID); err != nil {
		RenderError(w, r, fmt.Errorf("mark read: %w", err), http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"summary": summary}
	if consumed.Warning != "" {
		resp["warning"] = consumed.Warning
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// socialPostHandler consumes a credit and generates a platform-fitted social
// post. Available on paid plans only.
func (s *Server) socialPostHandler(w http.ResponseWriter, r *http.Request) {
	req, article, ok := s.prepareAIRequest(w, r)
	if !ok {
		return
	}

	platform := domain.Platform(req.Platform)
	if !platform.Valid() {
		RenderError(w, r, fmt.Errorf("unsupported platform %q", req.Platform), http.StatusBadRequest)
		return
	}
	tone := domain.Tone(req.Tone)
	if req.Tone == "" {
		tone = domain.ToneProfessional
	}
	if !tone.Valid() {
		RenderError(w, r, fmt.Errorf("unsupported tone %q", req.Tone), http.StatusBadRequest)
		return
	}

	if !s.requirePaidPlan(w, r, req.UserID, "social post generation") {
		return
	}

	consumed, ok := s.consumeCredit(w, r, req.UserID)
	if !ok {
		return
	}

	post, err := s.enricher.GenerateSocialPost(r.Context(), article, platform, tone)
	if err != nil {
		RenderError(w, r, fmt.Errorf("social post: %w", err), upstreamErrorCode(err))
		return
	}

	resp := map[string]interface{}{"post": post, "platform": platform}
	if consumed.Warning != "" {
		resp["warning"] = consumed.Warning
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// keywordsHandler consumes a credit and extracts article keywords.
// Available on paid plans only.
func (s *Server) keywordsHandler(w http.ResponseWriter, r *http.Request) {
	req, article, ok := s.prepareAIRequest(w, r)
	if !ok {
		return
	}

	if !s.requirePaidPlan(w, r, req.UserID, "keyword extraction") {
		return
	}

	consumed, ok := s.consumeCredit(w, r, req.UserID)
	if !ok {
		return
	}

	keywords, err := s.enricher.ExtractKeywords(r.Context(), article)
	if err != nil {
		RenderError(w, r, fmt.Errorf("keywords: %w", err), upstreamErrorCode(err))
		return
	}

	resp := map[string]interface{}{"keywords": keywords}
	if consumed.Warning != "" {
		resp["warning"] = consumed.Warning
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// sentimentHandler consumes a credit and analyzes article sentiment.
// Available on paid plans only.
func (s *Server) sentimentHandler(w http.ResponseWriter, r *http.Request) {
	req, article, ok := s.prepareAIRequest(w, r)
	if !ok {
		return
	}

	if !s.requirePaidPlan(w, r, req.UserID, "sentiment analysis") {
		return
	}

	consumed, ok := s.consumeCredit(w, r, req.UserID)
	if !ok {
		return
	}

	result, err := s.enricher.AnalyzeSentiment(r.Context(), article)
	if err != nil {
		RenderError(w, r, fmt.Errorf("sentiment: %w", err), upstreamErrorCode(err))
		return
	}

	resp := map[string]interface{}{
		"sentiment":  result.Sentiment,
		"confidence": result.Confidence,
	}
	if len(result.Emotions) > 0 {
		resp["emotions"] = result.Emotions
	}
	if consumed.Warning != "" {
		resp["warning"] = consumed.Warning
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// prepareAIRequest decodes an AI request, validates it and loads the article.
// On failure it writes the error response and returns ok=false.
func (s *Server) prepareAIRequest(w http.ResponseWriter, r *http.Request) (aiRequest, llm.Article, bool) {
	var req aiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return req, llm.Article{}, false
	}
	if req.ArticleID == 0 || req.UserID == "" {
		RenderError(w, r, errors.New("article_id and user_id are required"), http.StatusBadRequest)
		return req, llm.Article{}, false
	}

	stored, err := s.articles.GetArticle(r.Context(), req.ArticleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, errors.New("article not found"), http.StatusNotFound)
			return req, llm.Article{}, false
		}
		RenderError(w, r, fmt.Errorf("load article: %w", err), http.StatusInternalServerError)
		return req, llm.Article{}, false
	}

	content := stored.ContentHTML
	if content == "" {
		content = stored.SummaryHTML
	}
	return req, llm.Article{Title: stored.Title, Content: content, URL: stored.URL}, true
}

// requirePaidPlan verifies the user is on a paid plan before a gated AI
// operation. On refusal it writes the error response and returns false.
func (s *Server) requirePaidPlan(w http.ResponseWriter, r *http.Request, userID, feature string) bool {
	plan, err := s.credits.Plan(r.Context(), userID)
	if err != nil {
		RenderError(w, r, fmt.Errorf("plan lookup: %w", err), http.StatusInternalServerError)
		return false
	}
	if !plan.Paid() {
		RenderError(w, r, fmt.Errorf("%s requires a paid plan", feature), http.StatusForbidden)
		return false
	}
	return true
}

// consumeCredit charges one credit before the AI call. On refusal it writes
// the error response and returns ok=false.
func (s *Server) consumeCredit(w http.ResponseWriter, r *http.Request, userID string) (domain.ConsumeResult, bool) {
	res, err := s.credits.Consume(r.Context(), userID)
	if err != nil {
		if errors.Is(err, credits.ErrLimitExceeded) {
			RenderError(w, r, err, http.StatusForbidden)
			return res, false
		}
		RenderError(w, r, fmt.Errorf("consume credit: %w", err), http.StatusInternalServerError)
		return res, false
	}
	return res, true
}

// fetchErrorCode maps feed fetching failures to HTTP codes
func fetchErrorCode(err error) int {
	var fetchErr *feed.FetchError
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// upstreamErrorCode maps AI upstream failures to HTTP codes
func upstreamErrorCode(err error) int {
	if errors.Is(err, llm.ErrUpstreamTimeout) {
		return http.StatusGatewayTimeout
	}
	if errors.Is(err, llm.ErrUpstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
