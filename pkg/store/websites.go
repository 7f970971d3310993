package store

import (
	"encoding/json"
	"time"

	"github.com/nikogura/creatoros/pkg/publish"
	"github.com/nikogura/creatoros/pkg/sanitize"
	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"
)

// Website is a saved page description, addressable by ID and by slug. HTML holds the sanitized
// render served at /sites/{slug}.
type Website struct {
	ID        string                  `json:"id"`
	Slug      string                  `json:"slug"`
	Page      website.PageDescription `json:"page"`
	HTML      string                  `json:"html"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// SaveWebsite validates the page, renders it and stores it. A site with an ID updates that record;
// without one, saving to an existing slug replaces that site. The slug is derived from the page name
// when empty and must be unique.
func (s *Store) SaveWebsite(site Website) (saved Website, err error) {
	err = site.Page.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid website")
		return saved, err
	}

	saved = site
	if saved.Slug == "" {
		saved.Slug = publish.Slug(saved.Page.Name)
	}
	if publish.Slug(saved.Slug) != saved.Slug {
		err = errors.Errorf("invalid slug %q", saved.Slug)
		return saved, err
	}

	now := s.now()
	saved.CreatedAt = now

	if saved.ID != "" {
		var existing Website
		existing, err = s.GetWebsite(saved.ID)
		switch {
		case err == nil:
			saved.CreatedAt = existing.CreatedAt
		case errors.Cause(err) == ErrNotFound:
			err = nil
		default:
			return saved, err
		}
	}

	bySlug, lookupErr := s.GetWebsiteBySlug(saved.Slug)
	switch {
	case lookupErr == nil && saved.ID == "":
		saved.ID = bySlug.ID
		saved.CreatedAt = bySlug.CreatedAt
	case lookupErr == nil && bySlug.ID != saved.ID:
		err = errors.Wrapf(ErrSlugTaken, "%s is used by website %s", saved.Slug, bySlug.ID)
		return saved, err
	case lookupErr != nil && errors.Cause(lookupErr) != ErrNotFound:
		err = lookupErr
		return saved, err
	}

	if saved.ID == "" {
		saved.ID = s.newID()
	}
	saved.HTML = website.Render(sanitize.Page(saved.Page))
	saved.UpdatedAt = now

	err = s.put(WebsiteTable, saved.ID, saved)
	return saved, err
}

// GetWebsite loads a site by ID.
func (s *Store) GetWebsite(id string) (site Website, err error) {
	err = s.get(WebsiteTable, id, &site)
	return site, err
}

// GetWebsiteBySlug loads a site by slug.
func (s *Store) GetWebsiteBySlug(slug string) (site Website, err error) {
	pivot, _ := json.Marshal(map[string]string{"slug": slug})

	found := false
	err = s.db.View(func(tx *buntdb.Tx) (txErr error) {
		iterErr := tx.AscendEqual("websites_slug", string(pivot), func(_, val string) bool {
			txErr = json.Unmarshal([]byte(val), &site)
			found = txErr == nil
			return false
		})
		if txErr == nil {
			txErr = iterErr
		}
		return txErr
	})
	if err != nil {
		err = errors.Wrapf(err, "failed to look up website %s", slug)
		return site, err
	}

	if !found {
		err = errors.Wrapf(ErrNotFound, "website %s", slug)
		return site, err
	}

	return site, err
}

// ListWebsites returns every saved site, oldest first.
func (s *Store) ListWebsites() (sites []Website, err error) {
	sites = []Website{}
	err = s.scan("websites_created", func(val string) (decodeErr error) {
		var site Website
		decodeErr = json.Unmarshal([]byte(val), &site)
		if decodeErr == nil {
			sites = append(sites, site)
		}
		return decodeErr
	})
	return sites, err
}

// DeleteWebsite removes a site by ID.
func (s *Store) DeleteWebsite(id string) (err error) {
	err = s.remove(WebsiteTable, id)
	return err
}
