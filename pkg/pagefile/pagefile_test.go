package pagefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/creatoros/pkg/website"
)

const samplePageYAML = `name: Jane Doe
headline: Strength for busy people
bio: I help busy parents get strong at home.
theme: gradient
links:
  - title: Instagram
    url: https://instagram.com/janedoe
    isPrimary: true
  - title: Shop
    url: https://shop.example.com
services:
  - name: Coaching
    price: $99/mo
    description: Weekly check-ins
    popular: true
colorScheme:
  primary: "#ff0066"
  background: "linear-gradient(135deg, #000 0%, #333 100%)"
includeSections:
  testimonials: false
`

const samplePageJSON = `{
  "name": "Jane Doe",
  "bio": "Coach",
  "theme": "light",
  "links": [{"title": "Site", "url": "https://example.com"}],
  "colorScheme": {"primary": "#111", "background": {"kind": "color", "value": "#fafafa"}}
}`

func writeFile(t *testing.T, name, content string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	return path
}

func TestLoadYAML(t *testing.T) {
	page, err := Load(writeFile(t, "page.yaml", samplePageYAML))
	if err != nil {
		t.Fatalf("Failed to load page: %v", err)
	}

	if page.Name != "Jane Doe" || page.Theme != website.ThemeGradient {
		t.Errorf("Unexpected page: %s / %s", page.Name, page.Theme)
	}

	if len(page.Links) != 2 || !page.Links[0].IsPrimary {
		t.Errorf("Expected 2 links with the first primary, got %+v", page.Links)
	}

	if len(page.Services) != 1 || !page.Services[0].Popular {
		t.Errorf("Expected popular service, got %+v", page.Services)
	}

	if page.ColorScheme == nil || !page.ColorScheme.Background.IsGradient() {
		t.Error("Expected gradient background in color scheme")
	}

	if page.SectionEnabled(website.SectionTestimonials) {
		t.Error("Expected testimonials disabled")
	}
}

func TestLoadJSON(t *testing.T) {
	page, err := Load(writeFile(t, "page.json", samplePageJSON))
	if err != nil {
		t.Fatalf("Failed to load page: %v", err)
	}

	if page.ColorScheme == nil || page.ColorScheme.Background.Kind != website.BackgroundColor {
		t.Errorf("Expected tagged color background, got %+v", page.ColorScheme)
	}

	if page.ColorScheme.Background.Value != "#fafafa" {
		t.Errorf("Expected #fafafa, got %s", page.ColorScheme.Background.Value)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: "  \n"},
		{name: "malformed", content: "name: [unclosed"},
		{name: "unknown field", content: "name: Jane\nbio: x\ntheme: dark\nlinks: [{title: a, url: b}]\nfavouriteColour: red\n"},
		{name: "invalid page", content: "name: Jane\ntheme: dark\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "page.yaml", tt.content))
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	_, err := Load("/nonexistent/page.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	original, err := Parse([]byte(samplePageYAML))
	if err != nil {
		t.Fatalf("Failed to parse sample: %v", err)
	}

	for _, name := range []string{"out/page.yaml", "out/page.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			err := Save(path, original)
			if err != nil {
				t.Fatalf("Failed to save: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Failed to reload: %v", err)
			}

			if website.RenderYear(loaded, 2025) != website.RenderYear(original, 2025) {
				t.Error("Expected reloaded page to render identically")
			}
		})
	}
}
