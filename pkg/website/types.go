package website

import (
	"github.com/pkg/errors"
)

// Theme names a built-in color palette.
type Theme string

const (
	ThemeDark     Theme = "dark"
	ThemeLight    Theme = "light"
	ThemeGradient Theme = "gradient"
	ThemeMinimal  Theme = "minimal"
	ThemeNeon     Theme = "neon"
	ThemeWarm     Theme = "warm"
)

// Section names one independently toggleable block of the page.
type Section string

const (
	SectionHero         Section = "hero"
	SectionLinks        Section = "links"
	SectionAbout        Section = "about"
	SectionFeatures     Section = "features"
	SectionServices     Section = "services"
	SectionTestimonials Section = "testimonials"
	SectionContact      Section = "contact"
)

// AllSections returns every section in document order.
func AllSections() (sections []Section) {
	sections = []Section{
		SectionHero,
		SectionLinks,
		SectionAbout,
		SectionFeatures,
		SectionServices,
		SectionTestimonials,
		SectionContact,
	}
	return sections
}

// PageDescription is everything needed to render a creator's personal page.
type PageDescription struct {
	Name            string           `json:"name" yaml:"name"`
	Headline        string           `json:"headline,omitempty" yaml:"headline,omitempty"`
	Subheadline     string           `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	Bio             string           `json:"bio" yaml:"bio"`
	About           *About           `json:"about,omitempty" yaml:"about,omitempty"`
	Links           []Link           `json:"links" yaml:"links"`
	Services        []Service        `json:"services,omitempty" yaml:"services,omitempty"`
	Testimonials    []Testimonial    `json:"testimonials,omitempty" yaml:"testimonials,omitempty"`
	Features        []Feature        `json:"features,omitempty" yaml:"features,omitempty"`
	ContactIntro    string           `json:"contactIntro,omitempty" yaml:"contactIntro,omitempty"`
	SocialLinks     *SocialLinks     `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	ColorScheme     *ColorScheme     `json:"colorScheme,omitempty" yaml:"colorScheme,omitempty"`
	Theme           Theme            `json:"theme" yaml:"theme"`
	IncludeSections map[Section]bool `json:"includeSections,omitempty" yaml:"includeSections,omitempty"`
}

// About is the optional long-form block.
type About struct {
	Title      string   `json:"title,omitempty" yaml:"title,omitempty"`
	Content    string   `json:"content,omitempty" yaml:"content,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Link is one entry of the link-in-bio list.
type Link struct {
	Title     string `json:"title" yaml:"title"`
	URL       string `json:"url" yaml:"url"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	IsPrimary bool   `json:"isPrimary,omitempty" yaml:"isPrimary,omitempty"`
}

// Service is a paid offer. Popular only affects styling; several services may set it.
type Service struct {
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
	Popular     bool     `json:"popular,omitempty" yaml:"popular,omitempty"`
}

// Testimonial is a quote from a client or collaborator.
type Testimonial struct {
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Avatar  string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Feature is a short callout card.
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// SocialLinks holds optional profile URLs for the main platforms.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty" yaml:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty" yaml:"tiktok,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
}

// socialLink is one resolved social profile in display order.
type socialLink struct {
	Platform string
	Label    string
	URL      string
}

// entries returns the configured social profiles in fixed platform order.
func (s *SocialLinks) entries() (links []socialLink) {
	if s == nil {
		return links
	}

	candidates := []socialLink{
		{Platform: "instagram", Label: "Instagram", URL: s.Instagram},
		{Platform: "youtube", Label: "YouTube", URL: s.YouTube},
		{Platform: "tiktok", Label: "TikTok", URL: s.TikTok},
		{Platform: "twitter", Label: "Twitter", URL: s.Twitter},
	}

	for _, c := range candidates {
		if c.URL != "" {
			links = append(links, c)
		}
	}

	return links
}

// SectionEnabled reports whether a section is switched on. Absent keys default to on.
func (p PageDescription) SectionEnabled(section Section) (enabled bool) {
	enabled = true
	if p.IncludeSections == nil {
		return enabled
	}

	value, ok := p.IncludeSections[section]
	if ok {
		enabled = value
	}

	return enabled
}

// Validate checks the fields a caller must supply. Render itself never fails and does not call this.
func (p PageDescription) Validate() (err error) {
	if p.Name == "" {
		err = errors.New("name is required")
		return err
	}

	if p.Bio == "" {
		err = errors.New("bio is required")
		return err
	}

	if len(p.Links) == 0 {
		err = errors.New("at least one link is required")
		return err
	}

	for i, link := range p.Links {
		if link.Title == "" {
			err = errors.Errorf("link at index %d missing title", i)
			return err
		}
		if link.URL == "" {
			err = errors.Errorf("link %q missing url", link.Title)
			return err
		}
	}

	if p.Theme == "" {
		err = errors.New("theme is required")
		return err
	}

	if _, ok := Palette(p.Theme); !ok {
		err = errors.Errorf("unknown theme %q", p.Theme)
		return err
	}

	return err
}
