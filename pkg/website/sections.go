package website

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fragment is the output of one section builder: its markup and the CSS only it needs.
type fragment struct {
	HTML string
	CSS  string
}

func (f fragment) empty() (empty bool) {
	empty = f.HTML == ""
	return empty
}

// staggerDelay is the presentation-only animation offset for the i-th card of a list.
func staggerDelay(index int) (delay string) {
	delay = fmt.Sprintf("%.1fs", float64(index)*0.1)
	return delay
}

// avatarInitial is the uppercased first character of a name, or "" for an empty name.
func avatarInitial(name string) (initial string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return initial
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	initial = cases.Upper(language.Und).String(string(r))
	return initial
}

// externalAttrs opens absolute links in a new tab.
func externalAttrs(href string) (attrs string) {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		attrs = ` target="_blank" rel="noopener noreferrer"`
	}
	return attrs
}

// callToAction picks where the page's buttons point: the contact form when it renders, else the
// first primary link, else the first link.
func callToAction(page PageDescription) (href, label string) {
	if page.SectionEnabled(SectionContact) {
		href = "#contact"
		label = "Get In Touch"
		return href, label
	}

	for _, link := range page.Links {
		if link.IsPrimary {
			href = link.URL
			label = link.Title
			return href, label
		}
	}

	if len(page.Links) > 0 {
		href = page.Links[0].URL
		label = page.Links[0].Title
	}

	return href, label
}

const heroCSS = `.hero-section { padding: 6rem 0 4rem; text-align: center; }
.hero-avatar { width: 112px; height: 112px; margin: 0 auto 1.5rem; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 3rem; font-weight: 800; color: #ffffff; background: linear-gradient(135deg, var(--primary), var(--secondary)); box-shadow: 0 10px 40px rgba(0, 0, 0, 0.25); }
.hero-name { font-size: 3rem; font-weight: 900; letter-spacing: -0.02em; line-height: 1.1; }
.hero-headline { font-size: 1.35rem; font-weight: 600; color: var(--primary); margin-top: 0.75rem; }
.hero-subheadline { font-size: 1.1rem; color: var(--muted); margin-top: 0.5rem; }
.hero-bio { max-width: 640px; margin: 1.5rem auto 0; color: var(--muted); }
.hero-social { display: flex; justify-content: center; gap: 0.75rem; margin-top: 1.5rem; }
.social-icon { width: 44px; height: 44px; border-radius: 50%; display: flex; align-items: center; justify-content: center; background: var(--surface); font-size: 1.25rem; transition: transform 0.2s ease; }
.social-icon:hover { transform: scale(1.1); }
.hero-actions { margin-top: 2rem; }
@media (max-width: 768px) { .hero-name { font-size: 2.25rem; } }
`

func renderHero(page PageDescription) (frag fragment) {
	var sb strings.Builder

	sb.WriteString(`<section class="hero-section" id="home">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")
	sb.WriteString(fmt.Sprintf(`<div class="hero-avatar animate">%s</div>`+"\n", avatarInitial(page.Name)))
	sb.WriteString(fmt.Sprintf(`<h1 class="hero-name animate" style="animation-delay: 0.1s">%s</h1>`+"\n", page.Name))

	if page.Headline != "" {
		sb.WriteString(fmt.Sprintf(`<p class="hero-headline animate" style="animation-delay: 0.2s">%s</p>`+"\n", page.Headline))
	}

	if page.Subheadline != "" {
		sb.WriteString(fmt.Sprintf(`<p class="hero-subheadline animate" style="animation-delay: 0.3s">%s</p>`+"\n", page.Subheadline))
	}

	if page.Bio != "" {
		sb.WriteString(fmt.Sprintf(`<p class="hero-bio animate" style="animation-delay: 0.4s">%s</p>`+"\n", page.Bio))
	}

	social := page.SocialLinks.entries()
	if len(social) > 0 {
		sb.WriteString(`<div class="hero-social animate" style="animation-delay: 0.5s">` + "\n")
		for _, s := range social {
			sb.WriteString(fmt.Sprintf(`<a href="%s" class="social-icon" aria-label="%s"%s>%s</a>`+"\n",
				s.URL, s.Label, externalAttrs(s.URL), LinkIcon(s.Platform)))
		}
		sb.WriteString(`</div>` + "\n")
	}

	href, label := callToAction(page)
	if href != "" {
		sb.WriteString(`<div class="hero-actions animate" style="animation-delay: 0.6s">` + "\n")
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="btn btn-primary"%s>%s</a>`+"\n", href, externalAttrs(href), label))
		sb.WriteString(`</div>` + "\n")
	}

	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: heroCSS}
	return frag
}

const linksCSS = `.links-section { padding: 2rem 0 4rem; }
.links-list { max-width: 640px; margin: 0 auto; display: flex; flex-direction: column; gap: 1rem; }
.link-card { display: flex; align-items: center; gap: 1rem; padding: 1.1rem 1.5rem; border-radius: var(--radius); background: var(--surface); border: 1px solid rgba(127, 127, 127, 0.15); font-weight: 600; transition: transform 0.2s ease, border-color 0.2s ease; }
.link-card:hover { transform: translateY(-2px); border-color: var(--primary); }
.link-card.primary { background: linear-gradient(135deg, var(--primary), var(--secondary)); color: #ffffff; border: none; }
.link-icon { font-size: 1.35rem; }
.link-title { flex: 1; }
.link-arrow { opacity: 0.6; }
`

func renderLinks(links []Link) (frag fragment) {
	if len(links) == 0 {
		return frag
	}

	var sb strings.Builder

	sb.WriteString(`<section class="links-section" id="links">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")
	sb.WriteString(`<div class="links-list">` + "\n")

	for i, link := range links {
		class := "link-card"
		if link.IsPrimary {
			class += " primary"
		}
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="%s animate" style="animation-delay: %s"%s>`+"\n",
			link.URL, class, staggerDelay(i), externalAttrs(link.URL)))
		sb.WriteString(fmt.Sprintf(`<span class="link-icon">%s</span>`+"\n", GuessLinkIcon(link)))
		sb.WriteString(fmt.Sprintf(`<span class="link-title">%s</span>`+"\n", link.Title))
		sb.WriteString(`<span class="link-arrow">→</span>` + "\n")
		sb.WriteString(`</a>` + "\n")
	}

	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: linksCSS}
	return frag
}

const aboutCSS = `.about-content { max-width: 760px; margin: 0 auto; }
.about-text { font-size: 1.1rem; color: var(--muted); white-space: pre-line; }
.about-highlights { list-style: none; margin-top: 2rem; display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 0.75rem; }
.about-highlights li { padding: 0.75rem 1rem; border-radius: 12px; background: var(--surface); }
.about-highlights li::before { content: "✓ "; color: var(--accent); font-weight: 700; }
`

func renderAbout(about *About, bio string) (frag fragment) {
	if about == nil {
		return frag
	}

	title := about.Title
	if title == "" {
		title = "About Me"
	}

	content := about.Content
	if content == "" {
		content = bio
	}

	var sb strings.Builder

	sb.WriteString(`<section class="section about-section" id="about">` + "\n")
	sb.WriteString(`<div class="container about-content">` + "\n")
	sb.WriteString(fmt.Sprintf(`<h2 class="section-title"><span>%s</span></h2>`+"\n", title))

	if content != "" {
		sb.WriteString(fmt.Sprintf(`<p class="about-text">%s</p>`+"\n", content))
	}

	if len(about.Highlights) > 0 {
		sb.WriteString(`<ul class="about-highlights">` + "\n")
		for i, highlight := range about.Highlights {
			sb.WriteString(fmt.Sprintf(`<li class="animate" style="animation-delay: %s">%s</li>`+"\n", staggerDelay(i), highlight))
		}
		sb.WriteString(`</ul>` + "\n")
	}

	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: aboutCSS}
	return frag
}

const featuresCSS = `.features-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.5rem; }
.feature-card { text-align: center; }
.feature-icon { font-size: 2.5rem; margin-bottom: 1rem; }
.feature-card h3 { font-size: 1.2rem; margin-bottom: 0.5rem; }
.feature-card p { color: var(--muted); }
`

func renderFeatures(features []Feature) (frag fragment) {
	if len(features) == 0 {
		return frag
	}

	var sb strings.Builder

	sb.WriteString(`<section class="section features-section" id="features">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")
	sb.WriteString(`<h2 class="section-title"><span>Why Work With Me</span></h2>` + "\n")
	sb.WriteString(`<div class="features-grid">` + "\n")

	for i, feature := range features {
		sb.WriteString(fmt.Sprintf(`<div class="card feature-card animate" style="animation-delay: %s">`+"\n", staggerDelay(i)))
		sb.WriteString(fmt.Sprintf(`<div class="feature-icon">%s</div>`+"\n", FeatureIcon(feature.Icon)))
		sb.WriteString(fmt.Sprintf(`<h3>%s</h3>`+"\n", feature.Title))
		sb.WriteString(fmt.Sprintf(`<p>%s</p>`+"\n", feature.Description))
		sb.WriteString(`</div>` + "\n")
	}

	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: featuresCSS}
	return frag
}

const servicesCSS = `.services-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1.5rem; align-items: stretch; }
.service-card { position: relative; display: flex; flex-direction: column; }
.service-card.popular { border: 2px solid var(--primary); }
.popular-badge { position: absolute; top: -12px; left: 50%; transform: translateX(-50%); padding: 0.25rem 1rem; border-radius: 999px; font-size: 0.75rem; font-weight: 700; text-transform: uppercase; letter-spacing: 0.05em; color: #ffffff; background: linear-gradient(135deg, var(--primary), var(--secondary)); }
.service-name { font-size: 1.3rem; margin-bottom: 0.5rem; }
.service-price { font-size: 2rem; font-weight: 800; color: var(--primary); margin-bottom: 1rem; }
.service-description { color: var(--muted); margin-bottom: 1.5rem; }
.service-features { list-style: none; margin-bottom: 2rem; flex: 1; }
.service-features li { padding: 0.4rem 0; border-bottom: 1px solid rgba(127, 127, 127, 0.15); }
.service-features li::before { content: "✓ "; color: var(--accent); }
`

func renderServices(services []Service, ctaHref string) (frag fragment) {
	if len(services) == 0 {
		return frag
	}

	var sb strings.Builder

	sb.WriteString(`<section class="section services-section" id="services">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")
	sb.WriteString(`<h2 class="section-title"><span>Services</span></h2>` + "\n")
	sb.WriteString(`<div class="services-grid">` + "\n")

	for i, service := range services {
		class := "card service-card"
		if service.Popular {
			class += " popular"
		}
		sb.WriteString(fmt.Sprintf(`<div class="%s animate" style="animation-delay: %s">`+"\n", class, staggerDelay(i)))

		// Every flagged service gets its own badge.
		if service.Popular {
			sb.WriteString(`<span class="popular-badge">Most Popular</span>` + "\n")
		}

		sb.WriteString(fmt.Sprintf(`<h3 class="service-name">%s</h3>`+"\n", service.Name))
		sb.WriteString(fmt.Sprintf(`<div class="service-price">%s</div>`+"\n", service.Price))
		sb.WriteString(fmt.Sprintf(`<p class="service-description">%s</p>`+"\n", service.Description))

		if len(service.Features) > 0 {
			sb.WriteString(`<ul class="service-features">` + "\n")
			for _, feature := range service.Features {
				sb.WriteString(fmt.Sprintf(`<li>%s</li>`+"\n", feature))
			}
			sb.WriteString(`</ul>` + "\n")
		}

		if ctaHref != "" {
			buttonClass := "btn btn-outline"
			if service.Popular {
				buttonClass = "btn btn-primary"
			}
			sb.WriteString(fmt.Sprintf(`<a href="%s" class="%s"%s>Get Started</a>`+"\n", ctaHref, buttonClass, externalAttrs(ctaHref)))
		}

		sb.WriteString(`</div>` + "\n")
	}

	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: servicesCSS}
	return frag
}

const testimonialsCSS = `.testimonials-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 1.5rem; }
.testimonial-content { font-style: italic; margin-bottom: 1.5rem; }
.testimonial-author { display: flex; align-items: center; gap: 0.75rem; }
.testimonial-avatar { width: 48px; height: 48px; border-radius: 50%; object-fit: cover; display: flex; align-items: center; justify-content: center; font-weight: 700; color: #ffffff; background: linear-gradient(135deg, var(--accent), var(--primary)); }
.testimonial-name { font-weight: 700; }
.testimonial-role { font-size: 0.875rem; color: var(--muted); }
`

func renderTestimonials(testimonials []Testimonial) (frag fragment) {
	if len(testimonials) == 0 {
		return frag
	}

	var sb strings.Builder

	sb.WriteString(`<section class="section testimonials-section" id="testimonials">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")
	sb.WriteString(`<h2 class="section-title"><span>What People Say</span></h2>` + "\n")
	sb.WriteString(`<div class="testimonials-grid">` + "\n")

	for i, t := range testimonials {
		sb.WriteString(fmt.Sprintf(`<div class="card testimonial-card animate" style="animation-delay: %s">`+"\n", staggerDelay(i)))
		sb.WriteString(fmt.Sprintf(`<p class="testimonial-content">&ldquo;%s&rdquo;</p>`+"\n", t.Content))
		sb.WriteString(`<div class="testimonial-author">` + "\n")
		if t.Avatar != "" {
			sb.WriteString(fmt.Sprintf(`<img class="testimonial-avatar" src="%s" alt="%s">`+"\n", t.Avatar, t.Name))
		} else {
			sb.WriteString(fmt.Sprintf(`<div class="testimonial-avatar">%s</div>`+"\n", avatarInitial(t.Name)))
		}
		sb.WriteString(`<div>` + "\n")
		sb.WriteString(fmt.Sprintf(`<div class="testimonial-name">%s</div>`+"\n", t.Name))
		if t.Role != "" {
			sb.WriteString(fmt.Sprintf(`<div class="testimonial-role">%s</div>`+"\n", t.Role))
		}
		sb.WriteString(`</div>` + "\n")
		sb.WriteString(`</div>` + "\n")
		sb.WriteString(`</div>` + "\n")
	}

	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: testimonialsCSS}
	return frag
}

// DefaultContactIntro is used when the page has no contact intro of its own.
const DefaultContactIntro = "Have a project or collaboration in mind? Send me a message and I'll get back to you."

const contactCSS = `.contact-intro { text-align: center; color: var(--muted); max-width: 560px; margin: -1.5rem auto 2rem; }
.contact-form { max-width: 560px; margin: 0 auto; display: flex; flex-direction: column; gap: 1rem; }
.contact-form input, .contact-form textarea { width: 100%; padding: 0.9rem 1.1rem; border-radius: 12px; border: 1px solid rgba(127, 127, 127, 0.25); background: var(--surface); color: var(--text); font: inherit; }
.contact-form textarea { min-height: 140px; resize: vertical; }
.contact-form input:focus, .contact-form textarea:focus { outline: 2px solid var(--primary); border-color: transparent; }
`

// renderContact always renders a static form; it has no data precondition.
func renderContact(intro string) (frag fragment) {
	if intro == "" {
		intro = DefaultContactIntro
	}

	var sb strings.Builder

	sb.WriteString(`<section class="section contact-section" id="contact">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")
	sb.WriteString(`<h2 class="section-title"><span>Get In Touch</span></h2>` + "\n")
	sb.WriteString(fmt.Sprintf(`<p class="contact-intro">%s</p>`+"\n", intro))
	sb.WriteString(`<form class="contact-form" onsubmit="event.preventDefault(); this.reset(); alert('Thanks! Your message has been sent.');">` + "\n")
	sb.WriteString(`<input type="text" name="name" placeholder="Your name" required>` + "\n")
	sb.WriteString(`<input type="email" name="email" placeholder="Your email" required>` + "\n")
	sb.WriteString(`<textarea name="message" placeholder="Your message" required></textarea>` + "\n")
	sb.WriteString(`<button type="submit" class="btn btn-primary">Send Message</button>` + "\n")
	sb.WriteString(`</form>` + "\n")
	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</section>` + "\n")

	frag = fragment{HTML: sb.String(), CSS: contactCSS}
	return frag
}

// renderFooter is always present. Its CSS lives in the base stylesheet.
func renderFooter(page PageDescription, year int) (html string) {
	var sb strings.Builder

	sb.WriteString(`<footer class="site-footer">` + "\n")
	sb.WriteString(`<div class="container">` + "\n")

	social := page.SocialLinks.entries()
	if len(social) > 0 {
		sb.WriteString(`<div class="footer-social">` + "\n")
		for _, s := range social {
			sb.WriteString(fmt.Sprintf(`<a href="%s" aria-label="%s"%s>%s</a>`+"\n", s.URL, s.Label, externalAttrs(s.URL), LinkIcon(s.Platform)))
		}
		sb.WriteString(`</div>` + "\n")
	}

	sb.WriteString(fmt.Sprintf(`<p>&copy; %d %s. All rights reserved.</p>`+"\n", year, page.Name))
	sb.WriteString(`<p class="footer-credit">Built with CreatorOS</p>` + "\n")
	sb.WriteString(`</div>` + "\n")
	sb.WriteString(`</footer>` + "\n")

	html = sb.String()
	return html
}
