// Package publish writes rendered websites to disk.
package publish

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IndexFile is the document name inside a site directory.
const IndexFile = "index.html"

// DefaultSlug names pages whose name has no usable characters.
const DefaultSlug = "website"

// WriteHTML writes a rendered document, creating parent directories.
func WriteHTML(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write HTML file: %s", outputPath)
		return err
	}

	return err
}

// WriteSite writes content as dir/index.html and returns the file path.
func WriteSite(dir, content string) (path string, err error) {
	path = filepath.Join(dir, IndexFile)
	err = WriteHTML(content, path)
	return path, err
}

// Cleanup removes files written by earlier calls. Missing files are not an error.
func Cleanup(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			err = errors.Wrapf(err, "failed to remove file: %s", path)
			return err
		}
		err = nil
	}
	return err
}

// Slug turns a display name into a lowercase ASCII path segment: accents dropped, every other run
// of non-alphanumerics collapsed to a single hyphen.
func Slug(name string) (slug string) {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug = sb.String()
	if slug == "" {
		slug = DefaultSlug
	}
	return slug
}

// Filename is the download name for a page.
func Filename(name string) (filename string) {
	filename = Slug(name) + ".html"
	return filename
}

// Job is one page to publish into Dir.
type Job struct {
	Page website.PageDescription
	Dir  string
}

// Batch renders and writes jobs concurrently, at most limit at a time (unlimited when limit <= 0).
// Paths come back in job order. The first failure cancels jobs that have not started.
func Batch(ctx context.Context, jobs []Job, year, limit int) (paths []string, err error) {
	paths = make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() (jobErr error) {
			jobErr = gctx.Err()
			if jobErr != nil {
				return jobErr
			}

			document := website.RenderYear(job.Page, year)

			var path string
			path, jobErr = WriteSite(job.Dir, document)
			if jobErr != nil {
				jobErr = errors.Wrapf(jobErr, "failed to publish %s", job.Page.Name)
				return jobErr
			}

			paths[i] = path
			return jobErr
		})
	}

	err = g.Wait()
	if err != nil {
		return paths, err
	}

	return paths, err
}
