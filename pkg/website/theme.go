package website

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// BackgroundKind distinguishes flat colors from CSS gradients.
type BackgroundKind string

const (
	BackgroundColor    BackgroundKind = "color"
	BackgroundGradient BackgroundKind = "gradient"
)

// GradientFallback is the solid tone painted underneath gradient backgrounds.
const GradientFallback = "#1a1a2e"

// Background is a page background: either a CSS color or a CSS gradient.
type Background struct {
	Kind  BackgroundKind `json:"kind"`
	Value string         `json:"value"`
}

// SolidBackground returns a flat color background.
func SolidBackground(value string) (bg Background) {
	bg = Background{Kind: BackgroundColor, Value: value}
	return bg
}

// GradientBackground returns a gradient background.
func GradientBackground(value string) (bg Background) {
	bg = Background{Kind: BackgroundGradient, Value: value}
	return bg
}

// ParseBackground classifies a raw CSS value.
func ParseBackground(value string) (bg Background) {
	if isGradientValue(value) {
		bg = GradientBackground(value)
		return bg
	}
	bg = SolidBackground(value)
	return bg
}

func isGradientValue(value string) (gradient bool) {
	gradient = strings.Contains(strings.ToLower(value), "gradient(")
	return gradient
}

// IsGradient reports whether the background is a gradient. An unset Kind is inferred from the value.
func (b Background) IsGradient() (gradient bool) {
	switch b.Kind {
	case BackgroundGradient:
		gradient = true
	case BackgroundColor:
		gradient = false
	default:
		gradient = isGradientValue(b.Value)
	}
	return gradient
}

// CSS returns the value for the CSS background property.
func (b Background) CSS() (value string) {
	value = b.Value
	return value
}

// Solid returns a flat color usable wherever a gradient is not allowed.
func (b Background) Solid() (color string) {
	if b.IsGradient() {
		color = GradientFallback
		return color
	}
	color = b.Value
	return color
}

// MarshalJSON writes the background as the plain CSS string callers supply.
func (b Background) MarshalJSON() (data []byte, err error) {
	data, err = json.Marshal(b.Value)
	return data, err
}

// UnmarshalJSON accepts a plain CSS string or a {"kind","value"} object.
func (b *Background) UnmarshalJSON(data []byte) (err error) {
	var raw string
	if json.Unmarshal(data, &raw) == nil {
		*b = ParseBackground(raw)
		return err
	}

	var tagged struct {
		Kind  BackgroundKind `json:"kind"`
		Value string         `json:"value"`
	}
	err = json.Unmarshal(data, &tagged)
	if err != nil {
		err = errors.Wrap(err, "background must be a string or {kind, value}")
		return err
	}

	*b = Background{Kind: tagged.Kind, Value: tagged.Value}
	if b.Kind == "" {
		*b = ParseBackground(tagged.Value)
	}

	return err
}

// MarshalYAML writes the background as a plain string.
func (b Background) MarshalYAML() (out interface{}, err error) {
	out = b.Value
	return out, err
}

// UnmarshalYAML accepts a plain CSS string or a kind/value mapping.
func (b *Background) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var raw string
	if unmarshal(&raw) == nil {
		*b = ParseBackground(raw)
		return err
	}

	var tagged struct {
		Kind  BackgroundKind `yaml:"kind"`
		Value string         `yaml:"value"`
	}
	err = unmarshal(&tagged)
	if err != nil {
		err = errors.Wrap(err, "background must be a string or {kind, value}")
		return err
	}

	*b = Background{Kind: tagged.Kind, Value: tagged.Value}
	if b.Kind == "" {
		*b = ParseBackground(tagged.Value)
	}

	return err
}

// ColorScheme is the resolved palette exposed to CSS as custom properties.
type ColorScheme struct {
	Primary    string     `json:"primary" yaml:"primary"`
	Secondary  string     `json:"secondary" yaml:"secondary"`
	Accent     string     `json:"accent" yaml:"accent"`
	Background Background `json:"background" yaml:"background"`
	Surface    string     `json:"surface" yaml:"surface"`
	Text       string     `json:"text" yaml:"text"`
	Muted      string     `json:"muted" yaml:"muted"`
}

//nolint:gochecknoglobals // Built-in palette table
var palettes = map[Theme]ColorScheme{
	ThemeDark: {
		Primary:    "#8b5cf6",
		Secondary:  "#ec4899",
		Accent:     "#06b6d4",
		Background: SolidBackground("#0a0a0f"),
		Surface:    "#16161f",
		Text:       "#f5f5f7",
		Muted:      "#a1a1aa",
	},
	ThemeLight: {
		Primary:    "#4f46e5",
		Secondary:  "#ec4899",
		Accent:     "#0ea5e9",
		Background: SolidBackground("#ffffff"),
		Surface:    "#f8fafc",
		Text:       "#0f172a",
		Muted:      "#64748b",
	},
	ThemeGradient: {
		Primary:    "#f472b6",
		Secondary:  "#a78bfa",
		Accent:     "#fbbf24",
		Background: GradientBackground("linear-gradient(135deg, #667eea 0%, #764ba2 100%)"),
		Surface:    "rgba(255, 255, 255, 0.1)",
		Text:       "#ffffff",
		Muted:      "rgba(255, 255, 255, 0.75)",
	},
	ThemeMinimal: {
		Primary:    "#111111",
		Secondary:  "#555555",
		Accent:     "#e11d48",
		Background: SolidBackground("#fafafa"),
		Surface:    "#ffffff",
		Text:       "#111111",
		Muted:      "#6b7280",
	},
	ThemeNeon: {
		Primary:    "#00ff88",
		Secondary:  "#ff00ff",
		Accent:     "#00d4ff",
		Background: SolidBackground("#050505"),
		Surface:    "#111111",
		Text:       "#ffffff",
		Muted:      "#9ca3af",
	},
	ThemeWarm: {
		Primary:    "#ea580c",
		Secondary:  "#db2777",
		Accent:     "#f59e0b",
		Background: SolidBackground("#fffbf5"),
		Surface:    "#ffffff",
		Text:       "#292524",
		Muted:      "#78716c",
	},
}

// Themes returns the built-in theme names in a stable order.
func Themes() (themes []Theme) {
	themes = []Theme{ThemeDark, ThemeLight, ThemeGradient, ThemeMinimal, ThemeNeon, ThemeWarm}
	return themes
}

// Palette returns the built-in palette for a theme.
func Palette(theme Theme) (scheme ColorScheme, ok bool) {
	scheme, ok = palettes[theme]
	return scheme, ok
}

// ResolveColors picks the palette for a page: the explicit scheme verbatim, else the theme's
// palette, else the dark palette.
func ResolveColors(page PageDescription) (scheme ColorScheme) {
	if page.ColorScheme != nil {
		scheme = *page.ColorScheme
		return scheme
	}

	scheme, ok := Palette(page.Theme)
	if !ok {
		scheme = palettes[ThemeDark]
	}

	return scheme
}
