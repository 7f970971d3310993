package sanitize

import (
	"strings"
	"testing"

	"github.com/nikogura/creatoros/pkg/website"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Hello there", expected: "Hello there"},
		{name: "script stripped", input: `Hi<script>alert(1)</script>`, expected: "Hi"},
		{name: "tags stripped", input: `<b>Bold</b> move`, expected: "Bold move"},
		{name: "ampersand escaped", input: "Salt & pepper", expected: "Salt &amp; pepper"},
		{name: "quotes escaped", input: `say "hi"`, expected: "say &#34;hi&#34;"},
		{name: "idempotent", input: "Salt &amp; pepper", expected: "Salt &amp; pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "https", input: "https://example.com/x", expected: "https://example.com/x"},
		{name: "query escaped", input: "https://example.com/?a=1&b=2", expected: "https://example.com/?a=1&amp;b=2"},
		{name: "mailto", input: "mailto:jane@example.com", expected: "mailto:jane@example.com"},
		{name: "tel", input: "tel:+15551234", expected: "tel:+15551234"},
		{name: "fragment", input: "#contact", expected: "#contact"},
		{name: "relative", input: "/shop", expected: "/shop"},
		{name: "javascript", input: "javascript:alert(1)", expected: BlockedURL},
		{name: "mixed case javascript", input: "JaVaScRiPt:alert(1)", expected: BlockedURL},
		{name: "data", input: "data:text/html;base64,xyz", expected: BlockedURL},
		{name: "empty", input: "  ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "#ff0066", expected: "#ff0066"},
		{input: "rgb(10, 20, 30)", expected: "rgb(10, 20, 30)"},
		{input: "linear-gradient(135deg, #000 0%, #fff 100%)", expected: "linear-gradient(135deg, #000 0%, #fff 100%)"},
		{input: "red; } body { display: none", expected: "fallback"},
		{input: "</style><script>", expected: "fallback"},
		{input: "url(https://evil.example/x.png)", expected: "fallback"},
		{input: "", expected: "fallback"},
	}

	for _, tt := range tests {
		if got := Color(tt.input, "fallback"); got != tt.expected {
			t.Errorf("Color(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestPage(t *testing.T) {
	page := website.PageDescription{
		Name:  `Jane <img src=x onerror=alert(1)>`,
		Bio:   "Coach & author",
		Theme: website.ThemeLight,
		Links: []website.Link{
			{Title: "Site", URL: "https://example.com", IsPrimary: true},
			{Title: "Bad", URL: "javascript:alert(1)"},
		},
		About:        &website.About{Title: "<i>About</i>", Highlights: []string{"<b>10 years</b>"}},
		Testimonials: []website.Testimonial{{Name: "Sam", Content: "Great", Avatar: "javascript:x"}},
		SocialLinks:  &website.SocialLinks{Instagram: "https://instagram.com/jane", TikTok: "vbscript:x"},
		ColorScheme: &website.ColorScheme{
			Primary:    "#123456",
			Secondary:  "red;}</style>",
			Background: website.SolidBackground("expression(alert(1))}"),
		},
		IncludeSections: map[website.Section]bool{website.SectionAbout: false},
	}

	clean := Page(page)

	if clean.Name != "Jane " {
		t.Errorf("Expected markup stripped from name, got %q", clean.Name)
	}

	if clean.Bio != "Coach &amp; author" {
		t.Errorf("Expected escaped bio, got %q", clean.Bio)
	}

	if clean.Links[1].URL != BlockedURL || !clean.Links[0].IsPrimary {
		t.Errorf("Unexpected links: %+v", clean.Links)
	}

	if clean.About.Title != "About" || clean.About.Highlights[0] != "10 years" {
		t.Errorf("Unexpected about: %+v", clean.About)
	}

	if clean.Testimonials[0].Avatar != BlockedURL {
		t.Errorf("Expected blocked avatar, got %q", clean.Testimonials[0].Avatar)
	}

	if clean.SocialLinks.TikTok != BlockedURL || clean.SocialLinks.Instagram == BlockedURL {
		t.Errorf("Unexpected social links: %+v", clean.SocialLinks)
	}

	light, _ := website.Palette(website.ThemeLight)
	if clean.ColorScheme.Primary != "#123456" {
		t.Errorf("Expected safe primary kept, got %q", clean.ColorScheme.Primary)
	}

	if clean.ColorScheme.Secondary != light.Secondary {
		t.Errorf("Expected palette secondary, got %q", clean.ColorScheme.Secondary)
	}

	if clean.ColorScheme.Background != light.Background {
		t.Errorf("Expected palette background, got %+v", clean.ColorScheme.Background)
	}

	if clean.ColorScheme.Muted != light.Muted {
		t.Errorf("Expected empty muted replaced by palette, got %q", clean.ColorScheme.Muted)
	}

	if clean.SectionEnabled(website.SectionAbout) {
		t.Error("Expected section flags carried over")
	}

	// The input is not modified.
	if page.Links[1].URL != "javascript:alert(1)" {
		t.Error("Expected original page untouched")
	}
}

func TestSanitizedPageRendersWithoutMarkupInjection(t *testing.T) {
	page := website.PageDescription{
		Name:  `<script>alert("x")</script>Jane`,
		Bio:   `"><script>steal()</script>`,
		Theme: website.ThemeDark,
		Links: []website.Link{{Title: "x", URL: `https://example.com/"onmouseover="alert(1)`}},
	}

	document := website.RenderYear(Page(page), 2025)

	if strings.Contains(document, "<script>") {
		t.Error("Expected no script tags in rendered document")
	}

	if strings.Contains(document, `"onmouseover="`) {
		t.Error("Expected quotes in URLs to be escaped")
	}
}
