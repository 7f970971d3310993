package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/creatoros/pkg/config"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "first wins", values: []string{"a", "b"}, expected: "a"},
		{name: "skips blanks", values: []string{"", "  ", "b"}, expected: "b"},
		{name: "none", values: []string{"", ""}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonEmpty(tt.values...); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSiteRenderCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	configPath, err := config.InitConfig(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	pages := map[string]string{
		"jane.yaml": "name: Jane Doe\nbio: Coach\ntheme: warm\nlinks:\n  - title: Shop\n    url: https://shop.example.com\n",
		"sam.json":  `{"name":"Sam Lee","bio":"Baker","theme":"dark","links":[{"title":"Blog","url":"https://sam.example.com"}]}`,
	}

	args := []string{"--config", configPath, "site", "render", "--out-dir", filepath.Join(dir, "out"), "--year", "2030"}
	for name, content := range pages {
		path := filepath.Join(dir, name)
		err = os.WriteFile(path, []byte(content), 0600)
		if err != nil {
			t.Fatalf("Failed to write page: %v", err)
		}
		args = append(args, path)
	}

	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	if err != nil {
		t.Fatalf("Expected render to succeed, got %v", err)
	}

	for slug, want := range map[string]string{"jane-doe": "Jane Doe", "sam-lee": "Sam Lee"} {
		data, readErr := os.ReadFile(filepath.Join(dir, "out", slug, "index.html"))
		if readErr != nil {
			t.Fatalf("Expected %s to be rendered: %v", slug, readErr)
		}

		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %s page to contain %q", slug, want)
		}

		if !strings.Contains(string(data), "2030") {
			t.Errorf("Expected %s page to use the requested year", slug)
		}
	}
}
