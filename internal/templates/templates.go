// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package templates lists and loads LaTeX templates from a flat directory.
// Template files use the .txt or .tex extension and are read as UTF-8; a
// leading byte order mark is dropped.
package templates

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNoTemplateDir reports a missing template directory.
	ErrNoTemplateDir = errors.New("template directory not found")
	// ErrNoTemplates reports a template directory with no template files.
	ErrNoTemplates = errors.New("no templates found")
	// ErrTemplateNotFound reports a template name that does not resolve to
	// a file in the template directory.
	ErrTemplateNotFound = errors.New("template not found")
)

var extensions = map[string]bool{".txt": true, ".tex": true}

// IsTemplate reports whether name has a template extension.
func IsTemplate(name string) bool {
	return extensions[strings.ToLower(filepath.Ext(name))]
}

// List returns the template file names in dir, sorted. Subdirectories are
// not descended into.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoTemplateDir, dir)
		}
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !IsTemplate(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTemplates, dir)
	}
	sort.Strings(names)
	return names, nil
}

// Numbered returns the listing keyed "1", "2", ... in sorted order, the
// shape served to clients that pick a template by number.
func Numbered(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for i, n := range names {
		m[fmt.Sprintf("%d", i+1)] = n
	}
	return m
}

// Load reads the named template from dir. name must be a bare file name.
func Load(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: invalid name %q", ErrTemplateNotFound, name)
	}
	if !IsTemplate(name) {
		return "", fmt.Errorf("%w: %q is not a .txt or .tex file", ErrTemplateNotFound, name)
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("opening template %s: %w", name, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a template body as UTF-8, dropping a UTF-8 or UTF-16 byte
// order mark if one is present.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("decoding template: %w", err)
	}
	return string(data), nil
}
