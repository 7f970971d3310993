package website

import (
	"net/url"
	"strings"
)

const (
	// DefaultLinkIcon is shown for unrecognized link keys.
	DefaultLinkIcon = "🔗"
	// DefaultFeatureIcon is shown for unrecognized feature keys.
	DefaultFeatureIcon = "✨"
)

//nolint:gochecknoglobals // Icon lookup table
var linkIcons = map[string]string{
	"instagram":  "📸",
	"youtube":    "▶️",
	"tiktok":     "🎵",
	"twitter":    "🐦",
	"x":          "𝕏",
	"linkedin":   "💼",
	"facebook":   "👍",
	"twitch":     "🎮",
	"spotify":    "🎧",
	"podcast":    "🎙️",
	"website":    "🌐",
	"blog":       "✍️",
	"email":      "✉️",
	"newsletter": "📰",
	"shop":       "🛍️",
	"store":      "🛍️",
	"calendar":   "📅",
	"booking":    "📅",
	"course":     "🎓",
	"patreon":    "❤️",
	"link":       DefaultLinkIcon,
}

//nolint:gochecknoglobals // Icon lookup table
var featureIcons = map[string]string{
	"star":      "⭐",
	"rocket":    "🚀",
	"heart":     "❤️",
	"lightning": "⚡",
	"zap":       "⚡",
	"target":    "🎯",
	"chart":     "📈",
	"growth":    "📈",
	"camera":    "📷",
	"video":     "🎬",
	"mic":       "🎤",
	"palette":   "🎨",
	"design":    "🎨",
	"trophy":    "🏆",
	"users":     "👥",
	"community": "👥",
	"shield":    "🛡️",
	"clock":     "⏰",
	"money":     "💰",
	"idea":      "💡",
	"check":     "✅",
	"sparkles":  DefaultFeatureIcon,
}

//nolint:gochecknoglobals // Host to link icon key table
var hostIcons = map[string]string{
	"instagram.com": "instagram",
	"youtube.com":   "youtube",
	"youtu.be":      "youtube",
	"tiktok.com":    "tiktok",
	"twitter.com":   "twitter",
	"x.com":         "x",
	"linkedin.com":  "linkedin",
	"facebook.com":  "facebook",
	"twitch.tv":     "twitch",
	"spotify.com":   "spotify",
	"patreon.com":   "patreon",
	"calendly.com":  "calendar",
	"substack.com":  "newsletter",
}

func normalizeIconKey(key string) (normalized string) {
	normalized = strings.ToLower(strings.TrimSpace(key))
	return normalized
}

// LinkIcon maps a platform or category key to a glyph. Never returns an empty string.
func LinkIcon(key string) (glyph string) {
	glyph, ok := linkIcons[normalizeIconKey(key)]
	if !ok {
		glyph = DefaultLinkIcon
	}
	return glyph
}

// FeatureIcon maps a concept key to a glyph. Never returns an empty string.
func FeatureIcon(key string) (glyph string) {
	glyph, ok := featureIcons[normalizeIconKey(key)]
	if !ok {
		glyph = DefaultFeatureIcon
	}
	return glyph
}

// GuessLinkIcon returns the glyph for a link, inferring the platform from the URL host when the
// link has no explicit icon key.
func GuessLinkIcon(link Link) (glyph string) {
	if link.Icon != "" {
		glyph = LinkIcon(link.Icon)
		return glyph
	}

	if strings.HasPrefix(link.URL, "mailto:") {
		glyph = LinkIcon("email")
		return glyph
	}

	parsed, err := url.Parse(link.URL)
	if err != nil || parsed.Host == "" {
		glyph = DefaultLinkIcon
		return glyph
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	key, ok := hostIcons[host]
	if !ok {
		glyph = DefaultLinkIcon
		return glyph
	}

	glyph = LinkIcon(key)
	return glyph
}
