package scrapbook

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// TagWeight is added when an idea shares any tag with the query.
	TagWeight = 0.5
	// TopicWeight is added when a topic term appears in the idea's title or notes.
	TopicWeight = 0.3
	// RecencyWeight is added for ideas created within RecencyWindow.
	RecencyWeight = 0.2
	// RelevanceThreshold is the score an idea must exceed to count as related.
	RelevanceThreshold = 0.3
	// RecencyWindow is how long an idea counts as recent.
	RecencyWindow = 30 * 24 * time.Hour
)

// Retriever finds scrapbook ideas related to a new request, for use as prompt context.
type Retriever struct {
	now func() time.Time
}

// Scored is an idea with its relevance score.
type Scored struct {
	Idea  Idea
	Score float64
}

// NewRetriever creates a new retriever instance.
func NewRetriever() (retriever *Retriever) {
	retriever = &Retriever{now: time.Now}
	return retriever
}

// Related scores ideas against topic and tags and returns those above RelevanceThreshold, best
// first, newest first among equals. limit <= 0 returns them all.
func (r *Retriever) Related(ideas []Idea, topic string, tags []string, limit int) (related []Scored) {
	wantTags := NormalizeTags(tags)
	terms := topicTerms(topic)
	now := r.now()

	for _, idea := range ideas {
		score := r.calculateSimilarity(idea, wantTags, terms, now)
		if score > RelevanceThreshold {
			related = append(related, Scored{Idea: idea, Score: score})
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		if related[i].Score != related[j].Score {
			return related[i].Score > related[j].Score
		}
		return related[i].Idea.CreatedAt.After(related[j].Idea.CreatedAt)
	})

	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}

	return related
}

func (r *Retriever) calculateSimilarity(idea Idea, tags, terms []string, now time.Time) (score float64) {
	for _, tag := range tags {
		if idea.HasTag(tag) {
			score += TagWeight
			break
		}
	}

	text := strings.ToLower(idea.Title + " " + idea.Notes)
	for _, term := range terms {
		if strings.Contains(text, term) {
			score += TopicWeight
			break
		}
	}

	if !idea.CreatedAt.IsZero() && now.Sub(idea.CreatedAt) <= RecencyWindow {
		score += RecencyWeight
	}

	return score
}

// topicTerms splits a topic into lowercase words of three letters or more.
func topicTerms(topic string) (terms []string) {
	for _, word := range strings.FieldsFunc(strings.ToLower(topic), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r < 0x80
	}) {
		if len([]rune(word)) >= 3 {
			terms = append(terms, word)
		}
	}
	return terms
}

// Titles formats related ideas as prompt lines, noting their status.
func Titles(related []Scored) (lines []string) {
	lines = make([]string, 0, len(related))
	for _, s := range related {
		lines = append(lines, fmt.Sprintf("%s (%s)", s.Idea.Title, s.Idea.Status))
	}
	return lines
}
