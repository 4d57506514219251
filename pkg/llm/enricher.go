package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/rivsy/rivsy/pkg/config"
	"github.com/rivsy/rivsy/pkg/domain"
)

// upstream failure sentinels, surfaced to the boundary layer as-is; retry
// policy belongs there, not here
var (
	ErrUpstream        = errors.New("ai upstream request failed")
	ErrUpstreamTimeout = errors.New("ai upstream request timed out")
)

// Article is the content handed to enrichment operations
type Article struct {
	Title   string
	Content string
	URL     string
}

// Enricher calls an OpenAI-compatible upstream for article enrichment:
// summaries, social posts, keywords and sentiment
type Enricher struct {
	client    *openai.Client
	config    config.AIConfig
	systemMsg string
}

const defaultSystemPrompt = "You are a helpful AI assistant that processes news articles and content."

// NewEnricher creates an enrichment gateway from the AI configuration
func NewEnricher(cfg config.AIConfig) *Enricher {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Enricher{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Summarize produces a concise 2-3 sentence summary of the article
func (e *Enricher) Summarize(ctx context.Context, article Article) (string, error) {
	prompt := fmt.Sprintf(`Please provide a concise summary of the following article in 2-3 sentences:

Title: %s

Content: %s

Summary:`, article.Title, clip(article.Content, 4000))

	return e.complete(ctx, prompt, 200)
}

// platformRules shape the request per target network; the character budget is
// enforced by prompt constraints and token budget, never by truncating output
var platformRules = map[domain.Platform]string{
	domain.PlatformTwitter:  "Keep it under 280 characters, use hashtags, make it engaging and shareable",
	domain.PlatformLinkedIn: "Professional tone, can be longer, focus on insights and professional value",
	domain.PlatformReddit:   "Conversational tone, provide context, encourage discussion",
}

var toneInstructions = map[domain.Tone]string{
	domain.ToneProfessional: "Use formal language, focus on business value and insights",
	domain.ToneCasual:       "Use friendly, approachable language, be conversational",
	domain.ToneEngaging:     "Use compelling language, ask questions, encourage interaction",
}

// GenerateSocialPost creates a platform-shaped post for the article
func (e *Enricher) GenerateSocialPost(ctx context.Context, article Article, platform domain.Platform, tone domain.Tone) (string, error) {
	if !platform.Valid() {
		return "", fmt.Errorf("unsupported platform %q", platform)
	}
	if !tone.Valid() {
		tone = domain.ToneEngaging
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a %s post based on this article:\n\n", platform)
	fmt.Fprintf(&sb, "Title: %s\nContent: %s\n", article.Title, clip(article.Content, 3000))
	if article.URL != "" {
		fmt.Fprintf(&sb, "URL: %s\n", article.URL)
	}
	fmt.Fprintf(&sb, "\nPlatform rules: %s\nTone: %s\n\nPost:", platformRules[platform], toneInstructions[tone])

	return e.complete(ctx, sb.String(), postTokenBudget(platform))
}

// postTokenBudget maps a platform's character budget to a response token cap
func postTokenBudget(platform domain.Platform) int {
	switch platform {
	case domain.PlatformTwitter:
		return 100
	case domain.PlatformLinkedIn:
		return 400
	default:
		return 300
	}
}

// ExtractKeywords returns 5-10 keywords describing the article
func (e *Enricher) ExtractKeywords(ctx context.Context, article Article) ([]string, error) {
	prompt := fmt.Sprintf(`Extract 5-10 relevant keywords from this article. Return them as a comma-separated list:

Title: %s
Content: %s

Keywords:`, article.Title, clip(article.Content, 3000))

	result, err := e.complete(ctx, prompt, 100)
	if err != nil {
		return nil, err
	}

	var keywords []string
	for _, kw := range strings.Split(result, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords, nil
}

// AnalyzeSentiment classifies the article's sentiment. A malformed upstream
// reply degrades to a neutral zero-confidence result instead of failing.
func (e *Enricher) AnalyzeSentiment(ctx context.Context, article Article) (domain.SentimentResult, error) {
	prompt := fmt.Sprintf(`Analyze the sentiment of this article and respond with JSON format:

Title: %s
Content: %s

Provide response in this JSON format:
{
  "sentiment": "positive|negative|neutral",
  "confidence": 0.0-1.0,
  "emotions": ["emotion1", "emotion2"]
}

Response:`, article.Title, clip(article.Content, 3000))

	result, err := e.complete(ctx, prompt, 150)
	if err != nil {
		return domain.SentimentResult{}, err
	}

	var parsed domain.SentimentResult
	if err := json.Unmarshal([]byte(extractJSONObject(result)), &parsed); err != nil || parsed.Sentiment == "" {
		return domain.SentimentResult{Sentiment: "neutral", Confidence: 0}, nil
	}
	return parsed, nil
}

// complete sends a single system+user chat completion and returns the text
func (e *Enricher) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Temperature),
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: e.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// clip bounds article content sent upstream, token budgets are per-operation
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// extractJSONObject pulls the first {...} block out of a chatty reply
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || start >= end {
		return s
	}
	return s[start : end+1]
}
