// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document loads render payloads and batch files from YAML or JSON.
// The format is chosen by file extension.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/writer/internal/render"
	"github.com/pdiddy/writer/pkg/types"
)

// Format is a payload encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported data file %s: use .yaml, .yml, or .json", path)
	}
}

// Decode reads r into v. YAML input rejects unknown keys, so a misspelled
// key in a hand-written file fails instead of rendering an empty section.
// JSON input ignores unknown fields, as web clients send extra form state.
func Decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func decodeFile(path string, v any) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if err := Decode(f, format, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// DecodeFor decodes the payload shape used by family.
func DecodeFor(family string, r io.Reader, format Format) (types.Document, error) {
	var doc types.Document
	switch family {
	case render.FamilyResume:
		doc.Resume = &types.ResumeData{}
		return doc, Decode(r, format, doc.Resume)
	case render.FamilyReport, render.FamilyReportGrid:
		doc.Report = &types.ReportData{}
		return doc, Decode(r, format, doc.Report)
	case render.FamilyLetter:
		doc.Letter = &types.LetterData{}
		return doc, Decode(r, format, doc.Letter)
	default:
		_, err := render.Lookup(family)
		return doc, err
	}
}

// Load reads the payload file at path for family.
func Load(path, family string) (types.Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return types.Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := DecodeFor(family, f, format)
	if err != nil {
		return types.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadBatch reads a batch file. Data paths are resolved against the batch
// file's directory.
func LoadBatch(path string) (types.BatchFile, error) {
	var bf types.BatchFile
	if err := decodeFile(path, &bf); err != nil {
		return types.BatchFile{}, err
	}
	if len(bf.Jobs) == 0 {
		return types.BatchFile{}, fmt.Errorf("%s: no jobs", path)
	}

	base := filepath.Dir(path)
	for i := range bf.Jobs {
		j := &bf.Jobs[i]
		if j.Family == "" {
			return types.BatchFile{}, fmt.Errorf("%s: job %d: family is required", path, i+1)
		}
		if j.Data == "" {
			return types.BatchFile{}, fmt.Errorf("%s: job %d: data is required", path, i+1)
		}
		if !filepath.IsAbs(j.Data) {
			j.Data = filepath.Join(base, j.Data)
		}
	}
	return bf, nil
}

// JoinParagraphs joins the non-blank lines of a typed letter body with blank
// lines, so each line becomes a LaTeX paragraph.
func JoinParagraphs(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n\n")
}
