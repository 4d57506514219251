package domain

// Platform is a target social network for generated posts
type Platform string

// supported social platforms
const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformReddit   Platform = "reddit"
)

// Valid reports whether the platform is one of the supported targets
func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformLinkedIn, PlatformReddit:
		return true
	}
	return false
}

// MaxLength returns the platform's character budget for a post
func (p Platform) MaxLength() int {
	switch p {
	case PlatformTwitter:
		return 280
	case PlatformLinkedIn:
		return 3000
	default:
		return 40000
	}
}

// Tone adjusts the voice of generated social posts
type Tone string

// supported post tones
const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneEngaging     Tone = "engaging"
)

// Valid reports whether the tone is one of the supported values
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneEngaging:
		return true
	}
	return false
}

// SentimentResult is the structured outcome of sentiment analysis. A malformed
// upstream reply degrades to a neutral result with zero confidence instead of
// failing the call.
type SentimentResult struct {
	Sentiment  string   `json:"sentiment"`
	Confidence float64  `json:"confidence"`
	Emotions   []string `json:"emotions,omitempty"`
}
