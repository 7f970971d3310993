package website

import (
	"fmt"
	"strings"
	"time"
)

// Render produces a complete, self-contained HTML document for the page, stamping the footer with
// the current calendar year.
//
// Text fields are interpolated verbatim. Callers must escape anything sourced from untrusted input
// before calling Render.
func Render(page PageDescription) (document string) {
	document = RenderYear(page, time.Now().Year())
	return document
}

// RenderYear is Render with a fixed copyright year. Identical inputs produce identical output.
func RenderYear(page PageDescription, year int) (document string) {
	colors := ResolveColors(page)

	fragments := make([]fragment, 0, len(AllSections()))
	for _, section := range AllSections() {
		if !shouldRender(page, section) {
			continue
		}

		frag := buildSection(page, section)
		if frag.empty() {
			continue
		}

		fragments = append(fragments, frag)
	}

	var css strings.Builder
	css.WriteString(baseCSS(colors))
	for _, frag := range fragments {
		css.WriteString(frag.CSS)
	}
	css.WriteString(responsiveCSS)

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(`<html lang="en">` + "\n")
	sb.WriteString(renderHead(page, colors, css.String()))
	sb.WriteString("<body>\n")
	sb.WriteString("<main>\n")
	for _, frag := range fragments {
		sb.WriteString(frag.HTML)
	}
	sb.WriteString("</main>\n")
	sb.WriteString(renderFooter(page, year))
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	document = sb.String()
	return document
}

// shouldRender is the inclusion policy: the section is enabled and, for content-dependent
// sections, its backing data is present. Hero and contact render whenever enabled.
func shouldRender(page PageDescription, section Section) (render bool) {
	if !page.SectionEnabled(section) {
		return render
	}

	switch section {
	case SectionHero, SectionContact:
		render = true
	case SectionLinks:
		render = len(page.Links) > 0
	case SectionAbout:
		render = page.About != nil
	case SectionFeatures:
		render = len(page.Features) > 0
	case SectionServices:
		render = len(page.Services) > 0
	case SectionTestimonials:
		render = len(page.Testimonials) > 0
	}

	return render
}

// buildSection dispatches to the section's builder.
func buildSection(page PageDescription, section Section) (frag fragment) {
	switch section {
	case SectionHero:
		frag = renderHero(page)
	case SectionLinks:
		frag = renderLinks(page.Links)
	case SectionAbout:
		frag = renderAbout(page.About, page.Bio)
	case SectionFeatures:
		frag = renderFeatures(page.Features)
	case SectionServices:
		href, _ := callToAction(page)
		frag = renderServices(page.Services, href)
	case SectionTestimonials:
		frag = renderTestimonials(page.Testimonials)
	case SectionContact:
		frag = renderContact(page.ContactIntro)
	}
	return frag
}

// Title is the document title: the name, followed by the headline when there is one.
func Title(page PageDescription) (title string) {
	title = page.Name
	if page.Headline != "" {
		title = fmt.Sprintf("%s | %s", page.Name, page.Headline)
	}
	return title
}

func metaDescription(page PageDescription) (description string) {
	description = page.Bio
	if description == "" {
		description = page.Subheadline
	}
	if description == "" {
		description = page.Headline
	}
	return description
}

func renderHead(page PageDescription, colors ColorScheme, css string) (head string) {
	title := Title(page)
	description := metaDescription(page)

	var sb strings.Builder

	sb.WriteString("<head>\n")
	sb.WriteString(`<meta charset="UTF-8">` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	sb.WriteString(fmt.Sprintf(`<meta name="description" content="%s">`+"\n", description))
	sb.WriteString(fmt.Sprintf(`<meta name="theme-color" content="%s">`+"\n", colors.Background.Solid()))
	sb.WriteString(fmt.Sprintf(`<meta property="og:title" content="%s">`+"\n", title))
	sb.WriteString(fmt.Sprintf(`<meta property="og:description" content="%s">`+"\n", description))
	sb.WriteString(`<meta property="og:type" content="website">` + "\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", title))
	sb.WriteString("<style>\n")
	sb.WriteString(css)
	sb.WriteString("</style>\n")
	sb.WriteString("</head>\n")

	head = sb.String()
	return head
}
