package collab

import (
	"strings"
	"testing"
	"time"

	"github.com/nikogura/creatoros/pkg/profile"
)

func fixedScorer(now time.Time) (scorer *Scorer) {
	scorer = NewScorer()
	scorer.now = func() time.Time { return now }
	return scorer
}

func TestScore(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	creator := profile.Profile{
		Name:      "Jane",
		Niche:     "home fitness",
		Platforms: []profile.Platform{{Name: "instagram", Followers: 20000}},
	}

	// 20k followers at 10 per thousand expects 200 per deliverable.
	tests := []struct {
		name      string
		collab    Collaboration
		wantTotal int
		wantRules []string
	}{
		{
			name: "strong fit",
			collab: Collaboration{
				Brand: "Acme", ContactEmail: "a@acme.com", Offer: "Fitness app launch",
				Budget: 400, Deliverables: []string{"1 reel", "1 story"}, Deadline: "2025-04-01",
			},
			wantTotal: 90,
			wantRules: []string{"BUDGET_STRONG", "NICHE_MATCH"},
		},
		{
			name: "fair budget tight deadline",
			collab: Collaboration{
				Brand: "Acme", ContactEmail: "a@acme.com", Offer: "Snack brand",
				Budget: 150, Deadline: "2025-03-12",
			},
			wantTotal: 50,
			wantRules: []string{"BUDGET_FAIR", "DEADLINE_TIGHT"},
		},
		{
			name:      "lowball with no contact",
			collab:    Collaboration{Brand: "Acme", Budget: 50, Deadline: "2025-03-01"},
			wantTotal: 0,
			wantRules: []string{"BUDGET_LOW", "DEADLINE_PASSED", "MISSING_CONTACT"},
		},
		{
			name: "no budget heavy scope",
			collab: Collaboration{
				Brand: "Acme", ContactEmail: "a@acme.com",
				Deliverables: []string{"a", "b", "c", "d", "e", "f"},
			},
			wantTotal: 30,
			wantRules: []string{"BUDGET_MISSING", "SCOPE_HEAVY"},
		},
	}

	scorer := fixedScorer(now)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.collab, creator)

			if result.Total != tt.wantTotal {
				t.Errorf("Expected score %d, got %d (%v)", tt.wantTotal, result.Total, result.Rules)
			}

			if strings.Join(result.Rules, ",") != strings.Join(tt.wantRules, ",") {
				t.Errorf("Expected rules %v, got %v", tt.wantRules, result.Rules)
			}
		})
	}
}

func TestScoreWithoutFollowers(t *testing.T) {
	result := NewScorer().Score(Collaboration{Brand: "Acme", ContactEmail: "a@b.c", Budget: 1}, profile.Profile{Niche: "chess"})

	if result.Total != BaseScore {
		t.Errorf("Expected base score without follower data, got %d (%v)", result.Total, result.Rules)
	}
}

func TestRank(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	creator := profile.Profile{Niche: "cooking", Platforms: []profile.Platform{{Name: "tiktok", Followers: 10000}}}

	collabs := []Collaboration{
		{ID: "low", Brand: "A", Budget: 10, CreatedAt: now},
		{ID: "high", Brand: "B", Budget: 500, ContactEmail: "b@b.com", Offer: "cooking class", CreatedAt: now},
		{ID: "mid-old", Brand: "C", Budget: 500, ContactEmail: "c@c.com", CreatedAt: now.Add(-time.Hour)},
		{ID: "mid-new", Brand: "D", Budget: 500, ContactEmail: "d@d.com", CreatedAt: now.Add(time.Hour)},
	}

	ranked := fixedScorer(now).Rank(collabs, creator)

	order := make([]string, 0, len(ranked))
	for _, c := range ranked {
		order = append(order, c.ID)
	}

	if strings.Join(order, ",") != "high,mid-old,mid-new,low" {
		t.Errorf("Unexpected order: %v", order)
	}

	if ranked[0].Score == 0 {
		t.Error("Expected scores stored on ranked collaborations")
	}

	if collabs[0].Score != 0 {
		t.Error("Expected input slice untouched")
	}
}

func TestScoringRulesNamed(t *testing.T) {
	for key, rule := range ScoringRules {
		if rule.Name != key {
			t.Errorf("Rule %s has mismatched name %s", key, rule.Name)
		}
		if rule.Weight == 0 {
			t.Errorf("Rule %s has zero weight", key)
		}
	}
}
