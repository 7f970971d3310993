package store

import (
	"encoding/json"

	"github.com/nikogura/creatoros/pkg/collab"
	"github.com/pkg/errors"
)

// CreateCollab validates c, assigns an ID and timestamps where unset, and stores it.
func (s *Store) CreateCollab(c collab.Collaboration) (created collab.Collaboration, err error) {
	created = c
	if created.Status == "" {
		created.Status = collab.StatusInbox
	}

	err = created.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid collaboration")
		return created, err
	}

	if created.ID == "" {
		created.ID = s.newID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = s.now()
	}
	created.UpdatedAt = created.CreatedAt

	err = s.put(CollabTable, created.ID, created)
	return created, err
}

// GetCollab loads one collaboration.
func (s *Store) GetCollab(id string) (c collab.Collaboration, err error) {
	err = s.get(CollabTable, id, &c)
	return c, err
}

// ListCollabs returns every collaboration, oldest first.
func (s *Store) ListCollabs() (collabs []collab.Collaboration, err error) {
	collabs = []collab.Collaboration{}
	err = s.scan("collabs_created", func(val string) (decodeErr error) {
		var c collab.Collaboration
		decodeErr = json.Unmarshal([]byte(val), &c)
		if decodeErr == nil {
			collabs = append(collabs, c)
		}
		return decodeErr
	})
	return collabs, err
}

// UpdateCollab replaces the editable fields of an existing collaboration. Status changes go
// through UpdateCollabStatus.
func (s *Store) UpdateCollab(c collab.Collaboration) (updated collab.Collaboration, err error) {
	var existing collab.Collaboration
	existing, err = s.GetCollab(c.ID)
	if err != nil {
		return updated, err
	}

	updated = c
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now()

	err = updated.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid collaboration")
		return updated, err
	}

	err = s.put(CollabTable, updated.ID, updated)
	return updated, err
}

// UpdateCollabStatus advances a collaboration through the pipeline.
func (s *Store) UpdateCollabStatus(id string, status collab.Status) (c collab.Collaboration, err error) {
	c, err = s.GetCollab(id)
	if err != nil {
		return c, err
	}

	err = c.Advance(status, s.now())
	if err != nil {
		return c, err
	}

	err = s.put(CollabTable, c.ID, c)
	return c, err
}

// DeleteCollab removes a collaboration.
func (s *Store) DeleteCollab(id string) (err error) {
	err = s.remove(CollabTable, id)
	return err
}
