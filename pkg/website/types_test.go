package website

import (
	"testing"
)

func TestSectionEnabled(t *testing.T) {
	page := PageDescription{}
	for _, section := range AllSections() {
		if !page.SectionEnabled(section) {
			t.Errorf("Expected %s enabled with no flags", section)
		}
	}

	page.IncludeSections = map[Section]bool{SectionAbout: false, SectionHero: true}
	if page.SectionEnabled(SectionAbout) {
		t.Error("Expected about disabled")
	}
	if !page.SectionEnabled(SectionHero) {
		t.Error("Expected hero enabled")
	}
	if !page.SectionEnabled(SectionContact) {
		t.Error("Expected absent key to default to enabled")
	}
}

func TestValidate(t *testing.T) {
	valid := PageDescription{
		Name:  "Jane",
		Bio:   "Coach",
		Links: []Link{{Title: "Site", URL: "https://example.com"}},
		Theme: ThemeWarm,
	}

	tests := []struct {
		name      string
		mutate    func(p *PageDescription)
		wantError bool
	}{
		{name: "valid", mutate: func(p *PageDescription) {}, wantError: false},
		{name: "missing name", mutate: func(p *PageDescription) { p.Name = "" }, wantError: true},
		{name: "missing bio", mutate: func(p *PageDescription) { p.Bio = "" }, wantError: true},
		{name: "no links", mutate: func(p *PageDescription) { p.Links = nil }, wantError: true},
		{name: "link without url", mutate: func(p *PageDescription) { p.Links = []Link{{Title: "x"}} }, wantError: true},
		{name: "missing theme", mutate: func(p *PageDescription) { p.Theme = "" }, wantError: true},
		{name: "unknown theme", mutate: func(p *PageDescription) { p.Theme = "sepia" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := valid
			page.Links = append([]Link(nil), valid.Links...)
			tt.mutate(&page)

			err := page.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSocialLinksEntriesOrder(t *testing.T) {
	social := &SocialLinks{
		Twitter:   "https://twitter.com/j",
		Instagram: "https://instagram.com/j",
	}

	entries := social.entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Platform != "instagram" || entries[1].Platform != "twitter" {
		t.Errorf("Expected instagram then twitter, got %s then %s", entries[0].Platform, entries[1].Platform)
	}

	var none *SocialLinks
	if len(none.entries()) != 0 {
		t.Error("Expected no entries for nil social links")
	}
}
