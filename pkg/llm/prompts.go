package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// systemPrompt is sent with every operation.
const systemPrompt = `You are CreatorOS, an assistant for independent content creators. You plan content, adapt scripts across platforms, build creator websites and handle brand partnerships. Always answer with a single JSON document and nothing else.`

// orNone renders an optional prompt field.
func orNone(value string) (out string) {
	out = strings.TrimSpace(value)
	if out == "" {
		out = "(not specified)"
	}
	return out
}

// bulleted renders a list as "- item" lines.
func bulleted(items []string) (out string) {
	if len(items) == 0 {
		out = "(none)"
		return out
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	out = strings.Join(lines, "\n")
	return out
}

// buildCalendarPrompt creates the content calendar prompt.
func buildCalendarPrompt(req CalendarRequest) (prompt string) {
	prompt = fmt.Sprintf(`Create a content calendar for a creator.

NICHE: %s
PLATFORMS: %s
START DATE: %s
DAYS: %d
POSTS PER WEEK: %d
GOALS: %s
AUDIENCE: %s
TONE: %s

IDEAS FROM THE CREATOR'S SCRAPBOOK (use them where they fit):
%s

Requirements:
1. Spread posts evenly across the %d days, about %d per week
2. Use only the listed platforms
3. Every date must be on or after the start date, formatted YYYY-MM-DD
4. Mix content types (tutorial, behind-the-scenes, story, collab, promo)
5. Captions are ready to post; hashtags carry a leading #

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "strategy": "one paragraph describing the plan",
  "posts": [
    {
      "date": "YYYY-MM-DD",
      "platform": "instagram",
      "content_type": "reel",
      "title": "short working title",
      "caption": "post caption",
      "hashtags": ["#tag"],
      "best_time": "18:00"
    }
  ]
}`, orNone(req.Niche), strings.Join(req.Platforms, ", "), req.StartDate, req.Days, req.PostsPerWeek,
		orNone(req.Goals), orNone(req.Audience), orNone(req.Tone), bulleted(req.Ideas), req.Days, req.PostsPerWeek)

	return prompt
}

// buildIdeasPrompt creates the idea suggestion prompt.
func buildIdeasPrompt(req IdeasRequest) (prompt string) {
	prompt = fmt.Sprintf(`Suggest %d fresh content ideas for a creator.

NICHE: %s
TOPIC: %s
PLATFORM: %s

IDEAS ALREADY IN THE SCRAPBOOK (do not repeat these):
%s

Each idea needs a scroll-stopping hook in the first line and 2-5 lowercase tags without #.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "ideas": [
    {
      "title": "idea title",
      "hook": "opening line",
      "description": "what the piece covers",
      "format": "reel|short|carousel|long-form|thread",
      "platform": "platform name",
      "tags": ["tag"]
    }
  ]
}`, req.Count, orNone(req.Niche), orNone(req.Topic), orNone(req.Platform), bulleted(req.Existing))

	return prompt
}

// buildRescriptPrompt creates the cross-platform re-script prompt.
func buildRescriptPrompt(req RescriptRequest) (prompt string) {
	length := "whatever suits the target platform"
	if req.Seconds > 0 {
		length = fmt.Sprintf("about %d seconds when spoken", req.Seconds)
	}

	prompt = fmt.Sprintf(`Rewrite this content for %s.

SOURCE PLATFORM: %s
TONE: %s
LENGTH: %s

SOURCE CONTENT:
%s

Keep the creator's voice and the core message. Open with a hook native to %s. End with one clear call to action.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "hook": "first line",
  "script": "full script",
  "call_to_action": "closing call to action",
  "hashtags": ["#tag"],
  "notes": "filming or posting notes"
}`, req.TargetPlatform, orNone(req.SourcePlatform), orNone(req.Tone), length, req.Content, req.TargetPlatform)

	return prompt
}

// buildWebsitePrompt creates the website page description prompt.
func buildWebsitePrompt(req WebsiteRequest) (prompt string) {
	linksJSON, _ := json.MarshalIndent(req.Links, "", "  ")
	if len(req.Links) == 0 {
		linksJSON = []byte("[]")
	}

	prompt = fmt.Sprintf(`Design a one-page website for a creator.

NAME: %s
NICHE: %s
DESCRIPTION: %s
AUDIENCE: %s
THEME: %s

OFFERINGS:
%s

EXISTING LINKS (keep them, mark the most important as primary):
%s

Write in the creator's first person. Services are only for listed offerings; mark at most one as popular.
Use feature icons from: rocket, target, heart, star, zap, shield, chart, users, camera, mic, idea, trophy.
Theme must be one of: dark, light, gradient, minimal, neon, warm.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "name": "creator name",
  "headline": "short headline",
  "subheadline": "supporting line",
  "bio": "two sentence bio",
  "about": {"title": "About Me", "content": "paragraph", "highlights": ["highlight"]},
  "links": [{"title": "link title", "url": "https://...", "icon": "instagram", "isPrimary": true}],
  "services": [{"name": "service", "price": "$99", "description": "what it is", "features": ["feature"], "popular": false}],
  "testimonials": [{"name": "client", "role": "role", "content": "quote"}],
  "features": [{"icon": "rocket", "title": "feature", "description": "detail"}],
  "contactIntro": "one line inviting contact",
  "theme": "dark",
  "includeSections": {"hero": true, "links": true, "about": true, "features": true, "services": true, "testimonials": false, "contact": true}
}`, req.Name, orNone(req.Niche), orNone(req.Description), orNone(req.Audience), orNone(string(req.Theme)),
		bulleted(req.Offerings), string(linksJSON))

	return prompt
}

// buildPitchPrompt creates the brand pitch prompt.
func buildPitchPrompt(req PitchRequest) (prompt string) {
	prompt = fmt.Sprintf(`Draft a partnership pitch email from a creator to a brand.

CREATOR: %s
NICHE: %s
AUDIENCE: %s
FOLLOWERS: %d
PLATFORMS: %s
BRAND: %s
PRODUCT: %s
ANGLE: %s
RATE: %s

The email is short, specific to the brand, and proposes concrete deliverables. No generic flattery.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "subject": "email subject",
  "body": "email body",
  "deliverables": ["1 reel", "3 stories"],
  "follow_up": "short follow-up message for one week later"
}`, req.CreatorName, orNone(req.Niche), orNone(req.Audience), req.Followers, strings.Join(req.Platforms, ", "),
		req.Brand, orNone(req.Product), orNone(req.Angle), orNone(req.Rate))

	return prompt
}

// buildCollabAnalysisPrompt creates the collaboration analysis prompt.
func buildCollabAnalysisPrompt(req CollabAnalysisRequest) (prompt string) {
	budget := "(not specified)"
	if req.Budget > 0 {
		budget = strings.TrimSpace(fmt.Sprintf("%.2f %s", req.Budget, req.Currency))
	}

	prompt = fmt.Sprintf(`Evaluate an inbound brand collaboration offer for a creator.

CREATOR NICHE: %s
CREATOR AUDIENCE: %s
FOLLOWERS: %d

BRAND: %s
OFFER:
%s
BUDGET: %s
DEADLINE: %s
REQUESTED DELIVERABLES:
%s

Score brand fit 0-100. Compare the budget with typical market rates for this follower count.
Recommendation must be one of: accept, negotiate, decline.

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "fit_score": 75,
  "suggested_rate": "$1,200",
  "strengths": ["strength"],
  "risks": ["risk"],
  "recommendation": "negotiate",
  "reply_draft": "reply email to the brand"
}`, orNone(req.Niche), orNone(req.Audience), req.Followers, req.Brand, orNone(req.Offer), budget,
		orNone(req.Deadline), bulleted(req.Deliverables))

	return prompt
}
