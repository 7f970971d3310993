package source

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// FetchTimeout bounds a URL fetch started through Fetch.
const FetchTimeout = 30 * time.Second

// UserAgent identifies CreatorOS to remote sites.
const UserAgent = "creatoros/1.0"

// Fetch retrieves source content for re-scripting from a file or URL.
func Fetch(input string) (content string, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	content, err = FetchWithContext(ctx, input)
	return content, err
}

// FetchWithContext retrieves source content with context. URLs are fetched over HTTP and reduced
// to text; anything else is read from disk, with .html files reduced the same way.
func FetchWithContext(ctx context.Context, input string) (content string, err error) {
	parsedURL, urlErr := url.Parse(input)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch source from URL: %s", input)
			return content, err
		}
		return content, err
	}

	content, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch source from file: %s", input)
		return content, err
	}

	return content, err
}

// fetchFromFile reads source content from a file.
func fetchFromFile(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return content, err
	}

	content = string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		content, err = HTMLToText(content)
		if err != nil {
			return content, err
		}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		err = errors.New("file is empty")
		return content, err
	}

	return content, err
}

// fetchFromURL retrieves a page and reduces it to text.
func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	client := resty.New().
		SetTimeout(FetchTimeout).
		SetHeader("User-Agent", UserAgent)

	var resp *resty.Response
	resp, err = client.R().SetContext(ctx).Get(urlStr)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}

	if resp.StatusCode() != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode())
		return content, err
	}

	content = resp.String()
	if strings.Contains(strings.ToLower(resp.Header().Get("Content-Type")), "html") || looksLikeHTML(content) {
		content, err = HTMLToText(content)
		if err != nil {
			return content, err
		}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		err = errors.New("fetched content is empty after processing")
		return content, err
	}

	return content, err
}

func looksLikeHTML(s string) (ok bool) {
	head := strings.ToLower(strings.TrimSpace(s))
	if len(head) > 512 {
		head = head[:512]
	}
	ok = strings.HasPrefix(head, "<!doctype html") || strings.Contains(head, "<html")
	return ok
}

// skipped elements contribute no text.
var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
	"head":     true,
}

// block elements end the current line.
var block = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true, "main": true,
	"blockquote": true, "pre": true, "tr": true, "table": true, "hr": true,
}

// HTMLToText parses markup and returns its visible text, one line per block element.
func HTMLToText(markup string) (text string, err error) {
	var doc *html.Node
	doc, err = html.Parse(strings.NewReader(markup))
	if err != nil {
		err = errors.Wrap(err, "failed to parse HTML")
		return text, err
	}

	var buf bytes.Buffer
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipped[n.Data] {
			return
		}

		if n.Type == html.TextNode {
			buf.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}

		if n.Type == html.ElementNode && block[n.Data] {
			buf.WriteByte('\n')
		}
	}
	walk(doc)

	text = collapseWhitespace(buf.String())
	return text, err
}

// collapseWhitespace squeezes runs of spaces inside lines and drops blank lines.
func collapseWhitespace(s string) (out string) {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}

	out = strings.Join(kept, "\n")
	return out
}
