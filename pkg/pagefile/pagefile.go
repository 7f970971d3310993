// Package pagefile reads and writes website page descriptions on disk.
package pagefile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikogura/creatoros/pkg/website"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a page description from a YAML or JSON file and validates it.
func Load(path string) (page website.PageDescription, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read page file: %s", path)
		return page, err
	}

	page, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "invalid page file: %s", path)
		return page, err
	}

	return page, err
}

// Parse decodes and validates a page description. JSON is a subset of YAML, so one decoder serves both.
func Parse(data []byte) (page website.PageDescription, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		err = errors.New("page description is empty")
		return page, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err = decoder.Decode(&page)
	if err != nil {
		err = errors.Wrap(err, "failed to parse page description")
		return page, err
	}

	err = page.Validate()
	if err != nil {
		err = errors.Wrap(err, "page validation failed")
		return page, err
	}

	return page, err
}

// Save writes page to path as JSON when the extension is .json and as YAML otherwise.
func Save(path string, page website.PageDescription) (err error) {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(page, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(page)
	}
	if err != nil {
		err = errors.Wrap(err, "failed to encode page description")
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create directory for %s", path)
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write page file: %s", path)
		return err
	}

	return err
}
