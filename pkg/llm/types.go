package llm

import (
	"github.com/nikogura/creatoros/pkg/website"
)

// ChatRequest is an OpenAI-compatible chat completions request.
type ChatRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

// ChatMessage is one message in a chat request or response.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is an OpenAI-compatible chat completions response.
type ChatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

// ChatChoice is one completion alternative.
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// CalendarRequest asks for a content calendar.
type CalendarRequest struct {
	Niche        string   `json:"niche"`
	Platforms    []string `json:"platforms"`
	StartDate    string   `json:"start_date"`
	Days         int      `json:"days"`
	PostsPerWeek int      `json:"posts_per_week"`
	Goals        string   `json:"goals,omitempty"`
	Audience     string   `json:"audience,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	Ideas        []string `json:"ideas,omitempty"`
}

// CalendarResponse is the generated calendar.
type CalendarResponse struct {
	Strategy string         `json:"strategy"`
	Posts    []CalendarPost `json:"posts"`
}

// CalendarPost is one scheduled post.
type CalendarPost struct {
	Date        string   `json:"date"`
	Platform    string   `json:"platform"`
	ContentType string   `json:"content_type"`
	Title       string   `json:"title"`
	Caption     string   `json:"caption"`
	Hashtags    []string `json:"hashtags"`
	BestTime    string   `json:"best_time,omitempty"`
}

// IdeasRequest asks for new content ideas.
type IdeasRequest struct {
	Niche    string   `json:"niche"`
	Topic    string   `json:"topic,omitempty"`
	Platform string   `json:"platform,omitempty"`
	Count    int      `json:"count"`
	Existing []string `json:"existing,omitempty"`
}

// IdeasResponse holds the suggested ideas.
type IdeasResponse struct {
	Ideas []IdeaSuggestion `json:"ideas"`
}

// IdeaSuggestion is one suggested idea.
type IdeaSuggestion struct {
	Title       string   `json:"title"`
	Hook        string   `json:"hook"`
	Description string   `json:"description"`
	Format      string   `json:"format"`
	Platform    string   `json:"platform,omitempty"`
	Tags        []string `json:"tags"`
}

// RescriptRequest asks to adapt existing content for another platform.
type RescriptRequest struct {
	Content        string `json:"content"`
	SourcePlatform string `json:"source_platform,omitempty"`
	TargetPlatform string `json:"target_platform"`
	Tone           string `json:"tone,omitempty"`
	Seconds        int    `json:"seconds,omitempty"`
}

// RescriptResponse is the adapted script.
type RescriptResponse struct {
	Hook         string   `json:"hook"`
	Script       string   `json:"script"`
	CallToAction string   `json:"call_to_action"`
	Hashtags     []string `json:"hashtags"`
	Notes        string   `json:"notes,omitempty"`
	AppliedFixes []string `json:"applied_fixes,omitempty"`
}

// WebsiteRequest asks for a page description for a creator website.
type WebsiteRequest struct {
	Name        string         `json:"name"`
	Niche       string         `json:"niche"`
	Description string         `json:"description"`
	Audience    string         `json:"audience,omitempty"`
	Offerings   []string       `json:"offerings,omitempty"`
	Links       []website.Link `json:"links,omitempty"`
	Theme       website.Theme  `json:"theme,omitempty"`
}

// PitchRequest asks for a brand pitch email.
type PitchRequest struct {
	CreatorName string   `json:"creator_name"`
	Niche       string   `json:"niche"`
	Audience    string   `json:"audience,omitempty"`
	Followers   int      `json:"followers"`
	Platforms   []string `json:"platforms,omitempty"`
	Brand       string   `json:"brand"`
	Product     string   `json:"product,omitempty"`
	Angle       string   `json:"angle,omitempty"`
	Rate        string   `json:"rate,omitempty"`
}

// PitchResponse is the drafted pitch.
type PitchResponse struct {
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Deliverables []string `json:"deliverables"`
	FollowUp     string   `json:"follow_up,omitempty"`
}

// CollabAnalysisRequest describes an inbound collaboration offer.
type CollabAnalysisRequest struct {
	Niche        string   `json:"niche"`
	Audience     string   `json:"audience,omitempty"`
	Followers    int      `json:"followers"`
	Brand        string   `json:"brand"`
	Offer        string   `json:"offer"`
	Budget       float64  `json:"budget"`
	Currency     string   `json:"currency,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
	Deadline     string   `json:"deadline,omitempty"`
}

// Recommendation values returned by AnalyzeCollab.
const (
	RecommendAccept    = "accept"
	RecommendNegotiate = "negotiate"
	RecommendDecline   = "decline"
)

// CollabAnalysis is the model's read on a collaboration offer.
type CollabAnalysis struct {
	FitScore       int      `json:"fit_score"`
	SuggestedRate  string   `json:"suggested_rate"`
	Strengths      []string `json:"strengths"`
	Risks          []string `json:"risks"`
	Recommendation string   `json:"recommendation"`
	ReplyDraft     string   `json:"reply_draft"`
}
