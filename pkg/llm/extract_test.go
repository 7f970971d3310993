package llm

import (
	"testing"

	"github.com/pkg/errors"
)

func TestStripMarkdownCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "bare fence",
			input:    "```\n[1, 2]\n```",
			expected: "[1, 2]",
		},
		{
			name:     "no fence",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "unterminated fence",
			input:    "```json\n{\"a\": 1}",
			expected: `{"a": 1}`,
		},
		{
			name:     "trailing whitespace before fence",
			input:    "```json\n{\"a\": 1}  \r\n```",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripMarkdownCodeFences(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain object", input: `{"a": 1}`, expected: `{"a": 1}`},
		{name: "plain array", input: ` [1, 2] `, expected: `[1, 2]`},
		{name: "fenced", input: "```json\n{\"a\": 1}\n```", expected: `{"a": 1}`},
		{name: "prose around object", input: "Sure! Here it is:\n{\"a\": {\"b\": 2}}\nEnjoy.", expected: `{"a": {"b": 2}}`},
		{name: "prose around array", input: `Ideas: [{"t": 1}, {"t": 2}] done`, expected: `[{"t": 1}, {"t": 2}]`},
		{name: "object containing array", input: `Result {"posts": [1]} end`, expected: `{"posts": [1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ExtractJSON(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if raw != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, raw)
			}
		})
	}
}

func TestExtractJSONFailures(t *testing.T) {
	inputs := []string{
		"",
		"no json here",
		"{broken: json",
		"42",
		"} backwards {",
	}

	for _, input := range inputs {
		_, err := ExtractJSON(input)
		if errors.Cause(err) != ErrNoJSON {
			t.Errorf("ExtractJSON(%q): expected ErrNoJSON, got %v", input, err)
		}
	}
}

func TestWrapList(t *testing.T) {
	if got := wrapList(`[1]`, "posts"); got != `{"posts":[1]}` {
		t.Errorf("Expected wrapped array, got %s", got)
	}

	if got := wrapList(`{"posts":[1]}`, "posts"); got != `{"posts":[1]}` {
		t.Errorf("Expected object untouched, got %s", got)
	}

	if got := wrapList(`[1]`, ""); got != `[1]` {
		t.Errorf("Expected no wrapping without key, got %s", got)
	}
}
