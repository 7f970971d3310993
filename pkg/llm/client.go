package llm

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultCalendarDays is the calendar length when none is requested.
	DefaultCalendarDays = 7
	// MaxCalendarDays bounds a single calendar request.
	MaxCalendarDays = 31
	// DefaultPostsPerWeek is the posting cadence when none is requested.
	DefaultPostsPerWeek = 5
	// DefaultIdeaCount is the number of ideas suggested when none is requested.
	DefaultIdeaCount = 5
	// MaxIdeaCount bounds a single suggestion request.
	MaxIdeaCount = 20
)

// Client runs the CreatorOS AI operations on top of a Completer.
type Client struct {
	completer Completer
	fixer     *Fixer
	logger    *zap.Logger
	now       func() time.Time
}

// NewClient wraps completer. A nil logger discards logs.
func NewClient(completer Completer, logger *zap.Logger) (client *Client) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client = &Client{
		completer: completer,
		fixer:     NewFixer(),
		logger:    logger,
		now:       time.Now,
	}
	return client
}

// GenerateCalendar plans posts across the requested platforms and date range.
func (c *Client) GenerateCalendar(ctx context.Context, req CalendarRequest) (response CalendarResponse, err error) {
	if strings.TrimSpace(req.Niche) == "" {
		err = errors.Wrap(ErrInvalidRequest, "niche is required")
		return response, err
	}

	if req.Days <= 0 {
		req.Days = DefaultCalendarDays
	}
	if req.Days > MaxCalendarDays {
		err = errors.Wrapf(ErrInvalidRequest, "calendar spans at most %d days, got %d", MaxCalendarDays, req.Days)
		return response, err
	}
	if req.PostsPerWeek <= 0 {
		req.PostsPerWeek = DefaultPostsPerWeek
	}
	if len(req.Platforms) == 0 {
		req.Platforms = []string{"instagram"}
	}
	if req.StartDate == "" {
		req.StartDate = c.now().Format(time.DateOnly)
	}
	_, err = time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		err = errors.Wrapf(ErrInvalidRequest, "invalid start date %q", req.StartDate)
		return response, err
	}

	err = c.run(ctx, "calendar", buildCalendarPrompt(req), "posts", &response)
	if err != nil {
		return response, err
	}

	for i := range response.Posts {
		response.Posts[i].Hashtags = NormalizeHashtags(response.Posts[i].Hashtags)
	}

	// ISO dates sort lexically.
	sort.SliceStable(response.Posts, func(i, j int) bool {
		return response.Posts[i].Date < response.Posts[j].Date
	})

	return response, err
}

// SuggestIdeas proposes new content ideas, never more than requested.
func (c *Client) SuggestIdeas(ctx context.Context, req IdeasRequest) (response IdeasResponse, err error) {
	if strings.TrimSpace(req.Niche) == "" && strings.TrimSpace(req.Topic) == "" {
		err = errors.Wrap(ErrInvalidRequest, "niche or topic is required")
		return response, err
	}

	if req.Count <= 0 {
		req.Count = DefaultIdeaCount
	}
	if req.Count > MaxIdeaCount {
		req.Count = MaxIdeaCount
	}

	err = c.run(ctx, "ideas", buildIdeasPrompt(req), "ideas", &response)
	if err != nil {
		return response, err
	}

	if len(response.Ideas) > req.Count {
		response.Ideas = response.Ideas[:req.Count]
	}

	for i := range response.Ideas {
		tags := make([]string, 0, len(response.Ideas[i].Tags))
		for _, tag := range response.Ideas[i].Tags {
			tag = strings.ToLower(strings.TrimLeft(strings.TrimSpace(tag), "#"))
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		response.Ideas[i].Tags = tags
	}

	return response, err
}

// Rescript adapts content for a target platform and cleans the result with the Fixer.
func (c *Client) Rescript(ctx context.Context, req RescriptRequest) (response RescriptResponse, err error) {
	if strings.TrimSpace(req.Content) == "" {
		err = errors.Wrap(ErrInvalidRequest, "content is required")
		return response, err
	}
	if strings.TrimSpace(req.TargetPlatform) == "" {
		err = errors.Wrap(ErrInvalidRequest, "target platform is required")
		return response, err
	}

	err = c.run(ctx, "rescript", buildRescriptPrompt(req), "", &response)
	if err != nil {
		return response, err
	}

	var hookFixes, scriptFixes []string
	response.Hook, hookFixes = c.fixer.ApplyFixes(response.Hook)
	response.Script, scriptFixes = c.fixer.ApplyFixes(response.Script)
	response.AppliedFixes = mergeFixes(hookFixes, scriptFixes)
	response.Hashtags = NormalizeHashtags(response.Hashtags)

	if len(response.AppliedFixes) > 0 {
		c.logger.Debug("cleaned rescript output", zap.Strings("fixes", response.AppliedFixes))
	}

	return response, err
}

// GenerateWebsite asks the model for a page description and fills anything it left out from the
// request, so the result always validates or the call fails.
func (c *Client) GenerateWebsite(ctx context.Context, req WebsiteRequest) (page website.PageDescription, err error) {
	if strings.TrimSpace(req.Name) == "" {
		err = errors.Wrap(ErrInvalidRequest, "name is required")
		return page, err
	}

	err = c.run(ctx, "website", buildWebsitePrompt(req), "", &page)
	if err != nil {
		return page, err
	}

	if page.Name == "" {
		page.Name = req.Name
	}
	if page.Bio == "" {
		page.Bio = req.Description
	}
	if len(page.Links) == 0 {
		page.Links = append([]website.Link(nil), req.Links...)
	}
	page.Theme = pickTheme(page.Theme, req.Theme)

	err = page.Validate()
	if err != nil {
		err = errors.Wrap(err, "generated website is incomplete")
		return page, err
	}

	return page, err
}

// DraftPitch writes a pitch email to a brand.
func (c *Client) DraftPitch(ctx context.Context, req PitchRequest) (response PitchResponse, err error) {
	if strings.TrimSpace(req.Brand) == "" {
		err = errors.Wrap(ErrInvalidRequest, "brand is required")
		return response, err
	}

	err = c.run(ctx, "pitch", buildPitchPrompt(req), "", &response)
	if err != nil {
		return response, err
	}

	if response.Subject == "" || response.Body == "" {
		err = errors.New("pitch response is missing subject or body")
		return response, err
	}

	return response, err
}

// AnalyzeCollab scores an inbound offer and drafts a reply.
func (c *Client) AnalyzeCollab(ctx context.Context, req CollabAnalysisRequest) (analysis CollabAnalysis, err error) {
	if strings.TrimSpace(req.Brand) == "" {
		err = errors.Wrap(ErrInvalidRequest, "brand is required")
		return analysis, err
	}

	err = c.run(ctx, "collab-analysis", buildCollabAnalysisPrompt(req), "", &analysis)
	if err != nil {
		return analysis, err
	}

	if analysis.FitScore < 0 {
		analysis.FitScore = 0
	}
	if analysis.FitScore > 100 {
		analysis.FitScore = 100
	}

	analysis.Recommendation = strings.ToLower(strings.TrimSpace(analysis.Recommendation))
	switch analysis.Recommendation {
	case RecommendAccept, RecommendNegotiate, RecommendDecline:
	default:
		analysis.Recommendation = RecommendNegotiate
	}

	return analysis, err
}

// run completes prompt, extracts the JSON document and decodes it into out. listKey names the
// field a bare top-level array belongs under.
func (c *Client) run(ctx context.Context, operation, prompt, listKey string, out interface{}) (err error) {
	start := c.now()

	var responseText string
	responseText, err = c.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		err = errors.Wrapf(err, "%s request failed", operation)
		return err
	}

	var raw string
	raw, err = ExtractJSON(responseText)
	if err != nil {
		err = errors.Wrapf(err, "%s response", operation)
		return err
	}

	err = json.Unmarshal([]byte(wrapList(raw, listKey)), out)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse %s response: %s", operation, truncate(responseText, 500))
		return err
	}

	c.logger.Debug("ai operation complete",
		zap.String("operation", operation),
		zap.Int("prompt_bytes", len(prompt)),
		zap.Int("response_bytes", len(responseText)),
		zap.Duration("elapsed", c.now().Sub(start)),
	)

	return err
}

// pickTheme keeps a known generated theme, then the requested one, then dark.
func pickTheme(generated, requested website.Theme) (theme website.Theme) {
	for _, candidate := range []website.Theme{generated, requested} {
		if _, ok := website.Palette(candidate); ok {
			theme = candidate
			return theme
		}
	}
	theme = website.ThemeDark
	return theme
}

func mergeFixes(lists ...[]string) (merged []string) {
	merged = []string{}
	seen := map[string]bool{}
	for _, list := range lists {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				merged = append(merged, name)
			}
		}
	}
	return merged
}
