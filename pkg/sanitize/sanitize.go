// Package sanitize escapes untrusted page content before it reaches the website renderer, which
// interpolates every field verbatim.
package sanitize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/nikogura/creatoros/pkg/website"
)

// BlockedURL replaces any link whose scheme is not allowed.
const BlockedURL = "#"

//nolint:gochecknoglobals // Policies are safe for concurrent use once built
var strict = bluemonday.StrictPolicy()

//nolint:gochecknoglobals // Scheme allow-list
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// colorPattern admits hex, named, rgb()/hsl() and gradient values, and nothing that can close a
// declaration or a style block.
var colorPattern = regexp.MustCompile(`^[#a-zA-Z0-9(),.%\s-]+$`)

// Text strips markup from s and escapes what remains for use in HTML text or attributes.
func Text(s string) (clean string) {
	clean = strict.Sanitize(s)
	return clean
}

// URL returns an attribute-safe link, or BlockedURL when the scheme is not http, https, mailto or
// tel. Relative links pass.
func URL(raw string) (clean string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clean
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		clean = BlockedURL
		return clean
	}

	if parsed.Scheme != "" && !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		clean = BlockedURL
		return clean
	}

	// Escaping keeps entity-encoded schemes such as "javascript&#58;" literal.
	clean = Text(raw)
	return clean
}

// Color returns value when it is a safe CSS color or gradient, else fallback.
func Color(value, fallback string) (clean string) {
	clean = fallback
	value = strings.TrimSpace(value)
	if value != "" && colorPattern.MatchString(value) {
		clean = value
	}
	return clean
}

// Page returns a copy of page with every rendered field made safe: text escaped, links limited to
// allowed schemes, colors limited to a safe character set with the theme palette as fallback.
func Page(page website.PageDescription) (clean website.PageDescription) {
	clean = website.PageDescription{
		Name:         Text(page.Name),
		Headline:     Text(page.Headline),
		Subheadline:  Text(page.Subheadline),
		Bio:          Text(page.Bio),
		ContactIntro: Text(page.ContactIntro),
		Theme:        page.Theme,
	}

	if page.About != nil {
		clean.About = &website.About{
			Title:      Text(page.About.Title),
			Content:    Text(page.About.Content),
			Highlights: texts(page.About.Highlights),
		}
	}

	for _, link := range page.Links {
		clean.Links = append(clean.Links, website.Link{
			Title:     Text(link.Title),
			URL:       URL(link.URL),
			Icon:      Text(link.Icon),
			IsPrimary: link.IsPrimary,
		})
	}

	for _, service := range page.Services {
		clean.Services = append(clean.Services, website.Service{
			Name:        Text(service.Name),
			Price:       Text(service.Price),
			Description: Text(service.Description),
			Features:    texts(service.Features),
			Popular:     service.Popular,
		})
	}

	for _, testimonial := range page.Testimonials {
		clean.Testimonials = append(clean.Testimonials, website.Testimonial{
			Name:    Text(testimonial.Name),
			Role:    Text(testimonial.Role),
			Content: Text(testimonial.Content),
			Avatar:  URL(testimonial.Avatar),
		})
	}

	for _, feature := range page.Features {
		clean.Features = append(clean.Features, website.Feature{
			Icon:        Text(feature.Icon),
			Title:       Text(feature.Title),
			Description: Text(feature.Description),
		})
	}

	if page.SocialLinks != nil {
		clean.SocialLinks = &website.SocialLinks{
			Instagram: URL(page.SocialLinks.Instagram),
			YouTube:   URL(page.SocialLinks.YouTube),
			TikTok:    URL(page.SocialLinks.TikTok),
			Twitter:   URL(page.SocialLinks.Twitter),
		}
	}

	if page.ColorScheme != nil {
		clean.ColorScheme = colors(*page.ColorScheme, page.Theme)
	}

	if page.IncludeSections != nil {
		clean.IncludeSections = make(map[website.Section]bool, len(page.IncludeSections))
		for section, enabled := range page.IncludeSections {
			clean.IncludeSections[section] = enabled
		}
	}

	return clean
}

func texts(in []string) (out []string) {
	if in == nil {
		return out
	}

	out = make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, Text(s))
	}
	return out
}

// colors keeps safe values and substitutes the theme palette (dark for unknown themes) for the rest.
func colors(scheme website.ColorScheme, theme website.Theme) (clean *website.ColorScheme) {
	palette, ok := website.Palette(theme)
	if !ok {
		palette, _ = website.Palette(website.ThemeDark)
	}

	background := palette.Background
	if value := Color(scheme.Background.Value, ""); value != "" {
		background = scheme.Background
	}

	clean = &website.ColorScheme{
		Primary:    Color(scheme.Primary, palette.Primary),
		Secondary:  Color(scheme.Secondary, palette.Secondary),
		Accent:     Color(scheme.Accent, palette.Accent),
		Background: background,
		Surface:    Color(scheme.Surface, palette.Surface),
		Text:       Color(scheme.Text, palette.Text),
		Muted:      Color(scheme.Muted, palette.Muted),
	}
	return clean
}
