package llm

import (
	"regexp"
	"strings"
)

// Fixer cleans up model-written scripts before they reach the creator.
type Fixer struct {
	patterns []FixPattern
}

// FixPattern defines a search-and-fix pattern.
type FixPattern struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// NewFixer creates a new fixer with predefined fix patterns.
func NewFixer() (fixer *Fixer) {
	fixer = &Fixer{
		patterns: buildScriptPatterns(),
	}
	return fixer
}

// ApplyFixes runs every pattern over text and returns the names of those that changed it.
func (f *Fixer) ApplyFixes(text string) (fixed string, appliedFixes []string) {
	fixed = text
	appliedFixes = []string{}

	for _, pattern := range f.patterns {
		next := pattern.Pattern.ReplaceAllString(fixed, pattern.Replacement)
		if next != fixed {
			fixed = next
			appliedFixes = append(appliedFixes, pattern.Name)
		}
	}

	fixed = strings.TrimSpace(fixed)
	return fixed, appliedFixes
}

// NormalizeHashtags gives every tag a single leading #, drops spaces and duplicates, and keeps order.
func NormalizeHashtags(tags []string) (normalized []string) {
	normalized = make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, tag := range tags {
		tag = strings.Join(strings.Fields(tag), "")
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}

		tag = "#" + tag
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true

		normalized = append(normalized, tag)
	}

	return normalized
}

func buildScriptPatterns() (patterns []FixPattern) {
	patterns = []FixPattern{
		{
			Name:        "Assistant preamble",
			Pattern:     regexp.MustCompile(`(?i)^\s*(?:sure|certainly|absolutely|of course|here(?:'s| is))\b[^\n]*:[ \t]*\n+`),
			Replacement: "",
		},
		{
			Name:        "Section labels",
			Pattern:     regexp.MustCompile(`(?im)^[ \t]*\*{0,2}(?:script|caption|hook)\*{0,2}:\*{0,2}[ \t]*`),
			Replacement: "",
		},
		{
			Name:        "Markdown bold",
			Pattern:     regexp.MustCompile(`\*\*([^*\n]+)\*\*`),
			Replacement: "$1",
		},
		{
			Name:        "Spaced hashtags",
			Pattern:     regexp.MustCompile(`#[ \t]+(\w)`),
			Replacement: "#$1",
		},
		{
			Name:        "Trailing whitespace",
			Pattern:     regexp.MustCompile(`(?m)[ \t]+$`),
			Replacement: "",
		},
		{
			Name:        "Blank lines",
			Pattern:     regexp.MustCompile(`\n{3,}`),
			Replacement: "\n\n",
		},
	}
	return patterns
}
