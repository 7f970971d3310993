package scrapbook

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Status tracks an idea from first note to published post.
type Status string

const (
	StatusIdea      Status = "idea"
	StatusDrafting  Status = "drafting"
	StatusScheduled Status = "scheduled"
	StatusPosted    Status = "posted"
)

// Statuses lists every status in workflow order.
func Statuses() (statuses []Status) {
	statuses = []Status{StatusIdea, StatusDrafting, StatusScheduled, StatusPosted}
	return statuses
}

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (status Status, err error) {
	status = Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses() {
		if status == known {
			return status, err
		}
	}
	err = errors.Errorf("unknown idea status %q", s)
	return status, err
}

// Idea is one scrapbook entry.
type Idea struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	Tags      []string  `json:"tags"`
	Platform  string    `json:"platform,omitempty"`
	Status    Status    `json:"status"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewIdea creates an idea in the idea status with normalized tags.
func NewIdea(title, notes, platform string, tags []string, now time.Time) (idea Idea) {
	idea = Idea{
		Title:     strings.TrimSpace(title),
		Notes:     strings.TrimSpace(notes),
		Platform:  strings.ToLower(strings.TrimSpace(platform)),
		Tags:      NormalizeTags(tags),
		Status:    StatusIdea,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return idea
}

// NormalizeTags lowercases and trims tags, strips leading #, and drops empties and duplicates
// while keeping first-seen order.
func NormalizeTags(tags []string) (normalized []string) {
	normalized = make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimLeft(strings.TrimSpace(tag), "#"))
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}

	return normalized
}

// Validate checks that the idea is well-formed.
func (i *Idea) Validate() (err error) {
	if strings.TrimSpace(i.Title) == "" {
		err = errors.New("idea title is required")
		return err
	}

	_, err = ParseStatus(string(i.Status))
	return err
}

// HasTag reports whether the idea carries tag, ignoring case and a leading #.
func (i Idea) HasTag(tag string) (found bool) {
	want := strings.ToLower(strings.TrimLeft(strings.TrimSpace(tag), "#"))
	for _, t := range i.Tags {
		if t == want {
			found = true
			return found
		}
	}
	return found
}
