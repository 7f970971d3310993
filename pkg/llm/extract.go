package llm

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrNoJSON is returned when a model reply contains no parseable JSON.
var ErrNoJSON = errors.New("no JSON found in model response")

// ExtractJSON pulls the JSON document out of a model reply. Code fences are stripped first; if the
// rest is not valid JSON on its own, the widest {...} span is tried, then the widest [...] span;
// when a [ opens before any {, the array span goes first.
func ExtractJSON(text string) (raw string, err error) {
	cleaned := strings.TrimSpace(stripMarkdownCodeFences(strings.TrimSpace(text)))

	if isDocument(cleaned) {
		raw = cleaned
		return raw, err
	}

	order := [][2]string{{"{", "}"}, {"[", "]"}}
	if arr, obj := strings.Index(cleaned, "["), strings.Index(cleaned, "{"); arr >= 0 && (obj < 0 || arr < obj) {
		order[0], order[1] = order[1], order[0]
	}

	for _, delims := range order {
		start := strings.Index(cleaned, delims[0])
		end := strings.LastIndex(cleaned, delims[1])
		if start < 0 || end <= start {
			continue
		}

		candidate := cleaned[start : end+1]
		if gjson.Valid(candidate) {
			raw = candidate
			return raw, err
		}
	}

	err = errors.Wrapf(ErrNoJSON, "response: %s", truncate(text, 200))
	return raw, err
}

// isDocument reports whether s is a valid JSON object or array.
func isDocument(s string) (ok bool) {
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return ok
	}
	ok = gjson.Valid(s)
	return ok
}

// wrapList turns a bare top-level array into {"key": [...]}, so replies that skip the wrapper
// object still decode into the response type.
func wrapList(raw, key string) (wrapped string) {
	wrapped = raw
	if key == "" || !gjson.Parse(raw).IsArray() {
		return wrapped
	}
	wrapped = `{"` + key + `":` + raw + `}`
	return wrapped
}

// stripMarkdownCodeFences removes a surrounding ``` or ```json fence.
func stripMarkdownCodeFences(text string) (cleaned string) {
	cleaned = text

	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	// Skip the opening fence and its language tag.
	start := strings.IndexByte(cleaned, '\n')
	if start < 0 {
		cleaned = strings.TrimPrefix(cleaned, "```")
		return cleaned
	}
	start++

	end := len(cleaned)
	if idx := strings.LastIndex(cleaned, "```"); idx >= start {
		end = idx
	}

	cleaned = strings.TrimRight(cleaned[start:end], " \r\n")
	return cleaned
}

func truncate(s string, limit int) (out string) {
	out = s
	if len(out) > limit {
		out = out[:limit] + "..."
	}
	return out
}
