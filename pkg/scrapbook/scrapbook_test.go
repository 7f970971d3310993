package scrapbook

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" #Fitness", "fitness", "", "#", "Home Workout", "gym"})
	want := "fitness,home workout,gym"

	if strings.Join(got, ",") != want {
		t.Errorf("Expected %s, got %v", want, got)
	}
}

func TestNewIdea(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	idea := NewIdea("  Desk stretches ", " for office workers ", "TikTok", []string{"#Mobility"}, now)

	if idea.Title != "Desk stretches" || idea.Notes != "for office workers" {
		t.Errorf("Expected trimmed text, got %+v", idea)
	}

	if idea.Platform != "tiktok" || idea.Status != StatusIdea {
		t.Errorf("Unexpected platform or status: %s %s", idea.Platform, idea.Status)
	}

	if len(idea.Tags) != 1 || idea.Tags[0] != "mobility" {
		t.Errorf("Expected [mobility], got %v", idea.Tags)
	}

	if !idea.CreatedAt.Equal(now) || !idea.UpdatedAt.Equal(now) {
		t.Error("Expected timestamps set to now")
	}

	err := idea.Validate()
	if err != nil {
		t.Errorf("Expected valid idea, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	idea := Idea{Status: StatusIdea}
	if idea.Validate() == nil {
		t.Error("Expected error for missing title")
	}

	idea = Idea{Title: "x", Status: "archived"}
	if idea.Validate() == nil {
		t.Error("Expected error for unknown status")
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Scheduled ")
	if err != nil || status != StatusScheduled {
		t.Errorf("Expected scheduled, got %s (%v)", status, err)
	}

	_, err = ParseStatus("done")
	if err == nil {
		t.Error("Expected error for unknown status")
	}
}

func TestApply(t *testing.T) {
	ideas := []Idea{
		{ID: "1", Title: "Morning mobility", Tags: []string{"fitness"}, Platform: "tiktok", Status: StatusIdea, Favorite: true},
		{ID: "2", Title: "Meal prep Sunday", Notes: "budget friendly", Tags: []string{"food"}, Platform: "youtube", Status: StatusDrafting},
		{ID: "3", Title: "Desk stretches", Tags: []string{"fitness", "office"}, Platform: "instagram", Status: StatusPosted, Favorite: true},
	}

	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{name: "empty filter", filter: Filter{}, want: "1,2,3"},
		{name: "tag", filter: Filter{Tag: "#Fitness"}, want: "1,3"},
		{name: "status", filter: Filter{Status: StatusDrafting}, want: "2"},
		{name: "platform", filter: Filter{Platform: "TikTok"}, want: "1"},
		{name: "favorites", filter: Filter{FavoritesOnly: true}, want: "1,3"},
		{name: "query in notes", filter: Filter{Query: "BUDGET"}, want: "2"},
		{name: "combined", filter: Filter{Tag: "fitness", FavoritesOnly: true, Status: StatusPosted}, want: "3"},
		{name: "no match", filter: Filter{Tag: "travel"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, idea := range Apply(ideas, tt.filter) {
				ids = append(ids, idea.ID)
			}

			if strings.Join(ids, ",") != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, strings.Join(ids, ","))
			}
		})
	}
}

func TestRelated(t *testing.T) {
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	recent := now.Add(-24 * time.Hour)
	old := now.Add(-90 * 24 * time.Hour)

	ideas := []Idea{
		{ID: "tag-old", Title: "Kettlebell basics", Tags: []string{"fitness"}, CreatedAt: old},
		{ID: "all", Title: "Mobility for runners", Tags: []string{"fitness"}, CreatedAt: recent},
		{ID: "topic-recent", Title: "Mobility routine", CreatedAt: recent},
		{ID: "topic-old", Title: "Mobility drills", CreatedAt: old},
		{ID: "recent-only", Title: "Sourdough", CreatedAt: recent},
		{ID: "tag-newer", Title: "Jump rope", Tags: []string{"fitness"}, CreatedAt: old.Add(time.Hour)},
	}

	retriever := NewRetriever()
	retriever.now = func() time.Time { return now }

	related := retriever.Related(ideas, "mobility", []string{"#Fitness"}, 0)

	ids := []string{}
	for _, s := range related {
		ids = append(ids, s.Idea.ID)
	}

	// all=1.0; topic-recent=0.5; tag-newer and tag-old=0.5 ordered by recency.
	want := "all,topic-recent,tag-newer,tag-old"
	if strings.Join(ids, ",") != want {
		t.Errorf("Expected %s, got %s", want, strings.Join(ids, ","))
	}

	limited := retriever.Related(ideas, "mobility", []string{"fitness"}, 2)
	if len(limited) != 2 || limited[0].Idea.ID != "all" {
		t.Errorf("Expected top 2 with 'all' first, got %+v", limited)
	}
}

func TestTopicTerms(t *testing.T) {
	got := topicTerms("How to cook: one-pot pasta!")
	want := "how,cook,one,pot,pasta"

	if strings.Join(got, ",") != want {
		t.Errorf("Expected %s, got %v", want, got)
	}
}

func TestTitles(t *testing.T) {
	lines := Titles([]Scored{{Idea: Idea{Title: "Desk stretches", Status: StatusPosted}}})
	if len(lines) != 1 || lines[0] != "Desk stretches (posted)" {
		t.Errorf("Unexpected lines: %v", lines)
	}
}
