package store

import (
	"encoding/json"

	"github.com/nikogura/creatoros/pkg/scrapbook"
	"github.com/pkg/errors"
)

// CreateIdea validates idea, assigns an ID and timestamps where unset, and stores it.
func (s *Store) CreateIdea(idea scrapbook.Idea) (created scrapbook.Idea, err error) {
	created = idea
	created.Tags = scrapbook.NormalizeTags(created.Tags)
	if created.Status == "" {
		created.Status = scrapbook.StatusIdea
	}

	err = created.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid idea")
		return created, err
	}

	if created.ID == "" {
		created.ID = s.newID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = s.now()
	}
	created.UpdatedAt = created.CreatedAt

	err = s.put(IdeaTable, created.ID, created)
	return created, err
}

// GetIdea loads one idea.
func (s *Store) GetIdea(id string) (idea scrapbook.Idea, err error) {
	err = s.get(IdeaTable, id, &idea)
	return idea, err
}

// ListIdeas returns every idea, oldest first.
func (s *Store) ListIdeas() (ideas []scrapbook.Idea, err error) {
	ideas = []scrapbook.Idea{}
	err = s.scan("ideas_created", func(val string) (decodeErr error) {
		var idea scrapbook.Idea
		decodeErr = json.Unmarshal([]byte(val), &idea)
		if decodeErr == nil {
			ideas = append(ideas, idea)
		}
		return decodeErr
	})
	return ideas, err
}

// UpdateIdea replaces an existing idea, keeping its creation time.
func (s *Store) UpdateIdea(idea scrapbook.Idea) (updated scrapbook.Idea, err error) {
	var existing scrapbook.Idea
	existing, err = s.GetIdea(idea.ID)
	if err != nil {
		return updated, err
	}

	updated = idea
	updated.Tags = scrapbook.NormalizeTags(updated.Tags)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now()

	err = updated.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid idea")
		return updated, err
	}

	err = s.put(IdeaTable, updated.ID, updated)
	return updated, err
}

// ToggleFavorite flips an idea's favorite flag.
func (s *Store) ToggleFavorite(id string) (idea scrapbook.Idea, err error) {
	idea, err = s.GetIdea(id)
	if err != nil {
		return idea, err
	}

	idea.Favorite = !idea.Favorite
	idea.UpdatedAt = s.now()

	err = s.put(IdeaTable, idea.ID, idea)
	return idea, err
}

// DeleteIdea removes an idea.
func (s *Store) DeleteIdea(id string) (err error) {
	err = s.remove(IdeaTable, id)
	return err
}
