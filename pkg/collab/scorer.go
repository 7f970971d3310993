package collab

import (
	"sort"
	"strings"
	"time"

	"github.com/nikogura/creatoros/pkg/profile"
)

// Scorer ranks collaborations by how worthwhile they look.
type Scorer struct {
	now func() time.Time
}

// Result is a score with the rules that produced it.
type Result struct {
	Total int      `json:"total"`
	Rules []string `json:"rules"`
}

// NewScorer creates a new scorer instance.
func NewScorer() (scorer *Scorer) {
	scorer = &Scorer{now: time.Now}
	return scorer
}

// Score rates c for the creator in p on a 0-100 scale.
func (s *Scorer) Score(c Collaboration, p profile.Profile) (result Result) {
	result.Rules = []string{}

	apply := func(name string) {
		result.Total += ScoringRules[name].Weight
		result.Rules = append(result.Rules, name)
	}

	result.Total = BaseScore

	if name := budgetRule(c, p.TotalFollowers()); name != "" {
		apply(name)
	}

	if nicheMatches(c, p.Niche) {
		apply("NICHE_MATCH")
	}

	if name := s.deadlineRule(c.Deadline); name != "" {
		apply(name)
	}

	if strings.TrimSpace(c.ContactEmail) == "" {
		apply("MISSING_CONTACT")
	}

	if len(c.Deliverables) > HeavyScopeDeliverables {
		apply("SCOPE_HEAVY")
	}

	if result.Total < 0 {
		result.Total = 0
	}
	if result.Total > 100 {
		result.Total = 100
	}

	return result
}

// Rank scores every collaboration, stores the score on it, and orders by score (highest first),
// then by creation time.
func (s *Scorer) Rank(collabs []Collaboration, p profile.Profile) (ranked []Collaboration) {
	ranked = make([]Collaboration, len(collabs))
	copy(ranked, collabs)

	for i := range ranked {
		ranked[i].Score = s.Score(ranked[i], p).Total
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
	})

	return ranked
}

func budgetRule(c Collaboration, followers int) (name string) {
	if c.Budget <= 0 {
		name = "BUDGET_MISSING"
		return name
	}

	// Without an audience figure there is no rate to compare against.
	if followers <= 0 {
		return name
	}

	deliverables := len(c.Deliverables)
	if deliverables == 0 {
		deliverables = 1
	}

	perDeliverable := c.Budget / float64(deliverables)
	expected := float64(followers) / 1000 * RatePerThousand

	switch {
	case perDeliverable >= expected:
		name = "BUDGET_STRONG"
	case perDeliverable >= expected/2:
		name = "BUDGET_FAIR"
	default:
		name = "BUDGET_LOW"
	}

	return name
}

// nicheMatches reports whether any significant niche word appears in the offer or deliverables.
func nicheMatches(c Collaboration, niche string) (match bool) {
	text := strings.ToLower(c.Offer + " " + strings.Join(c.Deliverables, " "))

	for _, word := range strings.Fields(strings.ToLower(niche)) {
		word = strings.Trim(word, ".,;:!?&-")
		if len(word) < 4 {
			continue
		}
		if strings.Contains(text, word) {
			match = true
			return match
		}
	}

	return match
}

func (s *Scorer) deadlineRule(deadline string) (name string) {
	if deadline == "" {
		return name
	}

	due, err := time.Parse(time.DateOnly, deadline)
	if err != nil {
		return name
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		name = "DEADLINE_PASSED"
	case days <= TightDeadlineDays:
		name = "DEADLINE_TIGHT"
	}

	return name
}
