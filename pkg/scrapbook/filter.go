package scrapbook

import (
	"strings"
)

// Filter selects ideas. Zero-valued fields match everything.
type Filter struct {
	Tag           string
	Status        Status
	Platform      string
	FavoritesOnly bool
	Query         string
}

// Matches reports whether idea passes every set criterion.
func (f Filter) Matches(idea Idea) (match bool) {
	if f.Tag != "" && !idea.HasTag(f.Tag) {
		return match
	}

	if f.Status != "" && idea.Status != f.Status {
		return match
	}

	if f.Platform != "" && !strings.EqualFold(idea.Platform, f.Platform) {
		return match
	}

	if f.FavoritesOnly && !idea.Favorite {
		return match
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(idea.Title + "\n" + idea.Notes)
		if !strings.Contains(haystack, q) {
			return match
		}
	}

	match = true
	return match
}

// Apply returns the ideas that match f, in input order.
func Apply(ideas []Idea, f Filter) (filtered []Idea) {
	filtered = make([]Idea, 0, len(ideas))
	for _, idea := range ideas {
		if f.Matches(idea) {
			filtered = append(filtered, idea)
		}
	}
	return filtered
}
