package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Load reads a creator profile from a JSON file.
func Load(path string) (p Profile, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return p, err
	}

	err = json.Unmarshal(fileData, &p)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile JSON: %s", path)
		return p, err
	}

	err = p.Validate()
	if err != nil {
		err = errors.Wrap(err, "profile validation failed")
		return p, err
	}

	return p, err
}

// Save writes the profile as indented JSON, creating parent directories.
func Save(path string, p Profile) (err error) {
	err = os.MkdirAll(filepath.Dir(path), 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create profile directory for %s", path)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(p, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal profile")
		return err
	}

	err = os.WriteFile(path, append(data, '\n'), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write profile file: %s", path)
		return err
	}

	return err
}

// Validate checks that the profile is well-formed.
func (p *Profile) Validate() (err error) {
	if strings.TrimSpace(p.Name) == "" {
		err = errors.New("profile name is required")
		return err
	}

	if strings.TrimSpace(p.Niche) == "" {
		err = errors.New("profile niche is required")
		return err
	}

	for i, platform := range p.Platforms {
		if strings.TrimSpace(platform.Name) == "" {
			err = errors.Errorf("platform at index %d missing name", i)
			return err
		}
		if platform.Followers < 0 {
			err = errors.Errorf("platform %s has negative followers", platform.Name)
			return err
		}
	}

	return err
}

// TotalFollowers sums followers across platforms.
func (p Profile) TotalFollowers() (total int) {
	for _, platform := range p.Platforms {
		total += platform.Followers
	}
	return total
}

// PlatformNames lists the platform names in profile order.
func (p Profile) PlatformNames() (names []string) {
	names = make([]string, 0, len(p.Platforms))
	for _, platform := range p.Platforms {
		names = append(names, strings.ToLower(platform.Name))
	}
	return names
}

// PlatformURL is the platform's explicit URL, else one derived from its handle for known platforms.
func (pl Platform) PlatformURL() (url string) {
	url = strings.TrimSpace(pl.URL)
	if url != "" {
		return url
	}

	handle := strings.TrimPrefix(strings.TrimSpace(pl.Handle), "@")
	if handle == "" {
		return url
	}

	switch strings.ToLower(pl.Name) {
	case "instagram":
		url = "https://instagram.com/" + handle
	case "youtube":
		url = "https://youtube.com/@" + handle
	case "tiktok":
		url = "https://tiktok.com/@" + handle
	case "twitter", "x":
		url = "https://x.com/" + handle
	case "twitch":
		url = "https://twitch.tv/" + handle
	case "linkedin":
		url = "https://linkedin.com/in/" + handle
	}

	return url
}

// PageDescription builds a starter website for the profile: one link per reachable platform (the
// first marked primary), social icons for the platforms the hero knows, and an email link.
// Unknown themes fall back to dark.
func (p Profile) PageDescription(theme website.Theme) (page website.PageDescription) {
	titler := cases.Title(language.English)

	if _, ok := website.Palette(theme); !ok {
		theme = website.ThemeDark
	}

	page = website.PageDescription{
		Name:     p.Name,
		Headline: p.Headline,
		Bio:      p.Bio,
		Theme:    theme,
	}

	if page.Headline == "" {
		page.Headline = titler.String(p.Niche) + " Creator"
	}

	if page.Bio == "" {
		page.Bio = fmt.Sprintf("Creating %s content", p.Niche)
		if p.Audience != "" {
			page.Bio += " for " + p.Audience
		}
		page.Bio += "."
	}

	if p.Location != "" {
		page.Subheadline = "Based in " + p.Location
	}

	social := &website.SocialLinks{}
	for _, platform := range p.Platforms {
		url := platform.PlatformURL()
		if url == "" {
			continue
		}

		name := strings.ToLower(platform.Name)
		page.Links = append(page.Links, website.Link{
			Title:     titler.String(platform.Name),
			URL:       url,
			Icon:      name,
			IsPrimary: len(page.Links) == 0,
		})

		switch name {
		case "instagram":
			social.Instagram = url
		case "youtube":
			social.YouTube = url
		case "tiktok":
			social.TikTok = url
		case "twitter", "x":
			social.Twitter = url
		}
	}

	if *social != (website.SocialLinks{}) {
		page.SocialLinks = social
	}

	if p.Email != "" {
		page.Links = append(page.Links, website.Link{
			Title:     "Email Me",
			URL:       "mailto:" + p.Email,
			Icon:      "email",
			IsPrimary: len(page.Links) == 0,
		})
	}

	return page
}
