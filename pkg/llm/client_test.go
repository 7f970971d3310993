package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
)

// fakeCompleter returns a canned reply and records the prompts it saw.
type fakeCompleter struct {
	reply   string
	err     error
	system  string
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, prompt string) (text string, err error) {
	f.system = system
	f.prompts = append(f.prompts, prompt)
	text, err = f.reply, f.err
	return text, err
}

// chatServer answers chat completions with content, checking the request on the way in.
func chatServer(t *testing.T, content string) (server *httptest.Server) {
	t.Helper()

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected /chat/completions, got %s", r.URL.Path)
		}

		var req ChatRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		if len(req.Messages) == 0 || req.Messages[len(req.Messages)-1].Role != "user" {
			t.Errorf("Expected final user message, got %+v", req.Messages)
		}

		resp := ChatResponse{
			ID:    "chatcmpl-1",
			Model: req.Model,
			Choices: []ChatChoice{
				{Message: ChatMessage{Role: "assistant", Content: content}, FinishReason: "stop"},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))

	return server
}

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       GatewayConfig
		wantType  string
		wantError bool
	}{
		{name: "default provider", cfg: GatewayConfig{APIKey: "k"}, wantType: "gateway"},
		{name: "openai", cfg: GatewayConfig{Provider: "OpenAI", APIKey: "k"}, wantType: "gateway"},
		{name: "anthropic", cfg: GatewayConfig{Provider: ProviderAnthropic, APIKey: "k"}, wantType: "anthropic"},
		{name: "missing key", cfg: GatewayConfig{}, wantError: true},
		{name: "unknown provider", cfg: GatewayConfig{Provider: "cohere", APIKey: "k"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer, err := NewCompleter(tt.cfg)
			if tt.wantError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			switch completer.(type) {
			case *GatewayClient:
				if tt.wantType != "gateway" {
					t.Errorf("Expected %s completer, got gateway", tt.wantType)
				}
			case *AnthropicClient:
				if tt.wantType != "anthropic" {
					t.Errorf("Expected %s completer, got anthropic", tt.wantType)
				}
			default:
				t.Errorf("Unexpected completer type %T", completer)
			}
		})
	}
}

func TestGatewayConfigDefaults(t *testing.T) {
	cfg := GatewayConfig{}.withDefaults()
	if cfg.Provider != ProviderOpenAI || cfg.URL != DefaultGatewayURL || cfg.Model != DefaultGatewayModel {
		t.Errorf("Unexpected openai defaults: %+v", cfg)
	}

	if cfg.Timeout != DefaultTimeout || cfg.MaxTokens != DefaultMaxTokens {
		t.Errorf("Unexpected limits: %+v", cfg)
	}

	cfg = GatewayConfig{Provider: ProviderAnthropic}.withDefaults()
	if cfg.Model != DefaultAnthropicModel {
		t.Errorf("Expected model %s, got %s", DefaultAnthropicModel, cfg.Model)
	}

	if cfg.URL != "" {
		t.Errorf("Expected no URL for anthropic, got %s", cfg.URL)
	}
}

func TestGatewayComplete(t *testing.T) {
	server := chatServer(t, "hello creator")
	defer server.Close()

	client := NewGatewayClient(GatewayConfig{URL: server.URL, APIKey: "test-key"})

	text, err := client.Complete(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if text != "hello creator" {
		t.Errorf("Expected 'hello creator', got '%s'", text)
	}
}

func TestRequestHeaders(t *testing.T) {
	// Create test server.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected bearer auth, got '%s'", r.Header.Get("Authorization"))
		}

		if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			t.Errorf("Expected JSON content type, got '%s'", r.Header.Get("Content-Type"))
		}

		var req ChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		if req.Model != "test-model" {
			t.Errorf("Expected model 'test-model', got '%s'", req.Model)
		}

		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[0].Content != "be brief" {
			t.Errorf("Expected system then user message, got %+v", req.Messages)
		}

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	client := NewGatewayClient(GatewayConfig{URL: server.URL + "/", APIKey: "test-key", Model: "test-model"})

	_, err := client.Complete(context.Background(), "be brief", "prompt")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, sentinel: ErrRateLimited},
		{name: "payment required", status: http.StatusPaymentRequired, sentinel: ErrPaymentRequired},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "bad request", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"boom"}`))
			}))
			defer server.Close()

			client := NewGatewayClient(GatewayConfig{URL: server.URL, APIKey: "k"})

			_, err := client.Complete(context.Background(), "", "prompt")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			if tt.sentinel != nil && errors.Cause(err) != tt.sentinel {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}

			if tt.sentinel == nil && !strings.Contains(err.Error(), "boom") {
				t.Errorf("Expected error to carry the response body, got %v", err)
			}
		})
	}
}

func TestInvalidJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewGatewayClient(GatewayConfig{URL: server.URL, APIKey: "k"})

	_, err := client.Complete(context.Background(), "", "prompt")
	if err == nil {
		t.Error("Expected error for invalid JSON response")
	}
}

func TestEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer server.Close()

	client := NewGatewayClient(GatewayConfig{URL: server.URL, APIKey: "k"})

	_, err := client.Complete(context.Background(), "", "prompt")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}

	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("Expected 'no choices' error, got %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer server.Close()

	client := NewGatewayClient(GatewayConfig{URL: server.URL, APIKey: "k"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "", "prompt")
	if err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestHTTPClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer server.Close()

	client := NewGatewayClient(GatewayConfig{URL: server.URL, APIKey: "k", Timeout: 50 * time.Millisecond})

	_, err := client.Complete(context.Background(), "", "prompt")
	if err == nil {
		t.Error("Expected timeout error")
	}
}

func TestAnthropicComplete(t *testing.T) {
	// Create test server.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			t.Errorf("Expected messages endpoint, got %s", r.URL.Path)
		}

		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("Expected API key header, got '%s'", r.Header.Get("X-Api-Key"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-20250514",
			"content": [{"type": "text", "text": "part one, "}, {"type": "text", "text": "part two"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 3, "output_tokens": 4}
		}`))
	}))
	defer server.Close()

	client := NewAnthropicClient(GatewayConfig{URL: server.URL, APIKey: "test-key"})

	text, err := client.Complete(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if text != "part one, part two" {
		t.Errorf("Expected joined text blocks, got '%s'", text)
	}
}

func TestGenerateCalendar(t *testing.T) {
	fake := &fakeCompleter{reply: "```json\n" + `{
		"strategy": "Teach then sell",
		"posts": [
			{"date": "2025-03-04", "platform": "tiktok", "title": "B", "hashtags": ["fitness", "#fitness", "home workout"]},
			{"date": "2025-03-03", "platform": "instagram", "title": "A", "hashtags": ["#gym"]}
		]
	}` + "\n```"}

	client := NewClient(fake, nil)

	resp, err := client.GenerateCalendar(context.Background(), CalendarRequest{
		Niche:     "fitness",
		Platforms: []string{"instagram", "tiktok"},
		StartDate: "2025-03-03",
		Ideas:     []string{"Morning mobility"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(resp.Posts))
	}

	if resp.Posts[0].Title != "A" {
		t.Errorf("Expected posts sorted by date, got %s first", resp.Posts[0].Title)
	}

	want := []string{"#fitness", "#homeworkout"}
	got := resp.Posts[1].Hashtags
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected hashtags %v, got %v", want, got)
	}

	if fake.system != systemPrompt {
		t.Error("Expected system prompt to be sent")
	}

	if !strings.Contains(fake.prompts[0], "DAYS: 7") || !strings.Contains(fake.prompts[0], "Morning mobility") {
		t.Error("Expected defaults and scrapbook ideas in prompt")
	}
}

func TestGenerateCalendarValidation(t *testing.T) {
	client := NewClient(&fakeCompleter{reply: "{}"}, nil)

	tests := []struct {
		name string
		req  CalendarRequest
	}{
		{name: "missing niche", req: CalendarRequest{}},
		{name: "too many days", req: CalendarRequest{Niche: "x", Days: 90}},
		{name: "bad date", req: CalendarRequest{Niche: "x", StartDate: "03/03/2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GenerateCalendar(context.Background(), tt.req)
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestGenerateCalendarBareArray(t *testing.T) {
	fake := &fakeCompleter{reply: `Here is your plan: [{"date": "2025-01-01", "platform": "youtube", "title": "Intro"}]`}
	client := NewClient(fake, nil)

	resp, err := client.GenerateCalendar(context.Background(), CalendarRequest{Niche: "cooking", StartDate: "2025-01-01"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Posts) != 1 || resp.Posts[0].Title != "Intro" {
		t.Errorf("Expected bare array to decode as posts, got %+v", resp.Posts)
	}
}

func TestSuggestIdeas(t *testing.T) {
	fake := &fakeCompleter{reply: `{"ideas": [
		{"title": "One", "tags": ["#Recipes", " quick "]},
		{"title": "Two"},
		{"title": "Three"}
	]}`}
	client := NewClient(fake, nil)

	resp, err := client.SuggestIdeas(context.Background(), IdeasRequest{Niche: "cooking", Count: 2, Existing: []string{"Old idea"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(resp.Ideas) != 2 {
		t.Fatalf("Expected ideas truncated to 2, got %d", len(resp.Ideas))
	}

	if strings.Join(resp.Ideas[0].Tags, ",") != "recipes,quick" {
		t.Errorf("Expected normalized tags, got %v", resp.Ideas[0].Tags)
	}

	if !strings.Contains(fake.prompts[0], "- Old idea") {
		t.Error("Expected existing ideas in prompt")
	}

	_, err = client.SuggestIdeas(context.Background(), IdeasRequest{})
	if err == nil {
		t.Error("Expected error without niche or topic")
	}
}

func TestRescript(t *testing.T) {
	fake := &fakeCompleter{reply: `{
		"hook": "**Stop** scrolling",
		"script": "Script: Three moves you can do anywhere.\n\n\n\nTry them today.",
		"call_to_action": "Follow for more",
		"hashtags": ["# fitness", "fitness"]
	}`}
	client := NewClient(fake, nil)

	resp, err := client.Rescript(context.Background(), RescriptRequest{Content: "long video", TargetPlatform: "tiktok", Seconds: 30})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Hook != "Stop scrolling" {
		t.Errorf("Expected bold stripped from hook, got '%s'", resp.Hook)
	}

	if resp.Script != "Three moves you can do anywhere.\n\nTry them today." {
		t.Errorf("Unexpected script: %q", resp.Script)
	}

	if len(resp.Hashtags) != 1 || resp.Hashtags[0] != "#fitness" {
		t.Errorf("Expected [#fitness], got %v", resp.Hashtags)
	}

	if len(resp.AppliedFixes) == 0 {
		t.Error("Expected applied fixes to be reported")
	}

	if !strings.Contains(fake.prompts[0], "about 30 seconds") {
		t.Error("Expected length in prompt")
	}
}

func TestRescriptValidation(t *testing.T) {
	client := NewClient(&fakeCompleter{}, nil)

	_, err := client.Rescript(context.Background(), RescriptRequest{TargetPlatform: "tiktok"})
	if err == nil {
		t.Error("Expected error without content")
	}

	_, err = client.Rescript(context.Background(), RescriptRequest{Content: "x"})
	if err == nil {
		t.Error("Expected error without target platform")
	}
}

func TestGenerateWebsite(t *testing.T) {
	fake := &fakeCompleter{reply: `{
		"headline": "Strength for busy people",
		"bio": "I help busy people get strong.",
		"theme": "sepia",
		"services": [{"name": "Coaching", "price": "$99", "description": "Weekly calls", "popular": true}]
	}`}
	client := NewClient(fake, nil)

	links := []website.Link{{Title: "Instagram", URL: "https://instagram.com/jane"}}
	page, err := client.GenerateWebsite(context.Background(), WebsiteRequest{
		Name:  "Jane Doe",
		Niche: "fitness",
		Links: links,
		Theme: website.ThemeWarm,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.Name != "Jane Doe" {
		t.Errorf("Expected name from request, got '%s'", page.Name)
	}

	if page.Theme != website.ThemeWarm {
		t.Errorf("Expected requested theme for unknown generated theme, got '%s'", page.Theme)
	}

	if len(page.Links) != 1 || page.Links[0].URL != links[0].URL {
		t.Errorf("Expected request links, got %+v", page.Links)
	}

	if !strings.Contains(fake.prompts[0], "instagram.com/jane") {
		t.Error("Expected links in prompt")
	}
}

func TestGenerateWebsiteIncomplete(t *testing.T) {
	client := NewClient(&fakeCompleter{reply: `{"headline": "Hi"}`}, nil)

	_, err := client.GenerateWebsite(context.Background(), WebsiteRequest{Name: "Jane"})
	if err == nil {
		t.Error("Expected error for page without bio or links")
	}
}

func TestPickTheme(t *testing.T) {
	tests := []struct {
		generated website.Theme
		requested website.Theme
		want      website.Theme
	}{
		{generated: website.ThemeNeon, requested: website.ThemeWarm, want: website.ThemeNeon},
		{generated: "", requested: website.ThemeLight, want: website.ThemeLight},
		{generated: "sepia", requested: "", want: website.ThemeDark},
	}

	for _, tt := range tests {
		if got := pickTheme(tt.generated, tt.requested); got != tt.want {
			t.Errorf("pickTheme(%q, %q): expected %q, got %q", tt.generated, tt.requested, tt.want, got)
		}
	}
}

func TestDraftPitch(t *testing.T) {
	client := NewClient(&fakeCompleter{reply: `{"subject": "Partnership", "body": "Hi team", "deliverables": ["1 reel"]}`}, nil)

	resp, err := client.DraftPitch(context.Background(), PitchRequest{CreatorName: "Jane", Brand: "Acme", Followers: 12000})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Subject != "Partnership" || len(resp.Deliverables) != 1 {
		t.Errorf("Unexpected pitch: %+v", resp)
	}

	client = NewClient(&fakeCompleter{reply: `{"subject": ""}`}, nil)
	_, err = client.DraftPitch(context.Background(), PitchRequest{Brand: "Acme"})
	if err == nil {
		t.Error("Expected error for empty pitch")
	}
}

func TestAnalyzeCollab(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantScore int
		wantRec   string
	}{
		{name: "passthrough", reply: `{"fit_score": 80, "recommendation": "Accept"}`, wantScore: 80, wantRec: RecommendAccept},
		{name: "clamped high", reply: `{"fit_score": 140, "recommendation": "decline"}`, wantScore: 100, wantRec: RecommendDecline},
		{name: "clamped low", reply: `{"fit_score": -5, "recommendation": "maybe"}`, wantScore: 0, wantRec: RecommendNegotiate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&fakeCompleter{reply: tt.reply}, nil)

			analysis, err := client.AnalyzeCollab(context.Background(), CollabAnalysisRequest{Brand: "Acme", Budget: 500, Currency: "USD"})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if analysis.FitScore != tt.wantScore {
				t.Errorf("Expected score %d, got %d", tt.wantScore, analysis.FitScore)
			}

			if analysis.Recommendation != tt.wantRec {
				t.Errorf("Expected recommendation %s, got %s", tt.wantRec, analysis.Recommendation)
			}
		})
	}
}

func TestOperationErrors(t *testing.T) {
	client := NewClient(&fakeCompleter{err: ErrRateLimited}, nil)

	_, err := client.DraftPitch(context.Background(), PitchRequest{Brand: "Acme"})
	if errors.Cause(err) != ErrRateLimited {
		t.Errorf("Expected rate limit to surface, got %v", err)
	}

	client = NewClient(&fakeCompleter{reply: "I cannot help with that."}, nil)

	_, err = client.AnalyzeCollab(context.Background(), CollabAnalysisRequest{Brand: "Acme"})
	if errors.Cause(err) != ErrNoJSON {
		t.Errorf("Expected ErrNoJSON, got %v", err)
	}
}

func TestInvalidRequests(t *testing.T) {
	client := NewClient(&fakeCompleter{reply: "{}"}, nil)
	ctx := context.Background()

	errs := map[string]error{}
	_, errs["calendar"] = client.GenerateCalendar(ctx, CalendarRequest{})
	_, errs["calendar days"] = client.GenerateCalendar(ctx, CalendarRequest{Niche: "x", Days: MaxCalendarDays + 1})
	_, errs["calendar date"] = client.GenerateCalendar(ctx, CalendarRequest{Niche: "x", StartDate: "next week"})
	_, errs["ideas"] = client.SuggestIdeas(ctx, IdeasRequest{})
	_, errs["rescript"] = client.Rescript(ctx, RescriptRequest{Content: "x"})
	_, errs["website"] = client.GenerateWebsite(ctx, WebsiteRequest{})
	_, errs["pitch"] = client.DraftPitch(ctx, PitchRequest{})
	_, errs["collab"] = client.AnalyzeCollab(ctx, CollabAnalysisRequest{})

	for name, err := range errs {
		if errors.Cause(err) != ErrInvalidRequest {
			t.Errorf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}
}
