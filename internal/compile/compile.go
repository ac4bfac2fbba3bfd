// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compile typesets rendered LaTeX source into PDF with pdflatex,
// either from the local TeX installation or inside a TeX Live container.
package compile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/writer/pkg/types"
)

// ErrCompilerNotFound reports that the typesetting program (or a container
// runtime able to run it) is not installed.
var ErrCompilerNotFound = errors.New("latex compiler not found")

// Job is one document to compile.
type Job struct {
	// Source is the LaTeX source.
	Source string
	// Name is the output base name, without directory or .pdf suffix.
	Name string
	// Passes is the number of compiler runs. Documents with cross
	// references need two. Values below one mean one.
	Passes int
}

// Result describes a successful compile.
type Result struct {
	TeXPath string `json:"tex_path" yaml:"tex_path"`
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`
	Passes  int    `json:"passes" yaml:"passes"`
	// Log is the compiler's standard output from the final pass.
	Log string `json:"-" yaml:"-"`
}

// Compiler turns LaTeX source into a PDF.
type Compiler interface {
	Compile(ctx context.Context, job Job) (Result, error)
}

// CompileError reports a compile that did not produce a PDF.
type CompileError struct {
	Name string
	// LogPath is the <name>_error.log written for the failing pass, if any.
	LogPath string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("PDF %s.pdf not generated", e.Name)
	if e.LogPath != "" {
		msg += "; see " + e.LogPath
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CompileError) Unwrap() error { return e.Err }

// Options configures a compiler backend.
type Options struct {
	// Binary is the typesetting program (default "pdflatex").
	Binary string
	// OutputDir receives the .tex and .pdf files.
	OutputDir string
	// Timeout bounds each pass. Zero means no limit.
	Timeout time.Duration
	// AuxExtensions are removed after a successful compile.
	AuxExtensions []string
	// Image is the TeX Live image used by the container backend.
	Image string

	Logger logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Binary == "" {
		o.Binary = "pdflatex"
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.AuxExtensions == nil {
		o.AuxExtensions = []string{".aux", ".log", ".out"}
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// New returns the backend selected by cfg. The container backend detects a
// runtime up front and fails with ErrCompilerNotFound when there is none.
func New(ctx context.Context, cfg types.CompilerConfig, outputDir string, log logrus.FieldLogger) (Compiler, error) {
	opts := Options{
		Binary:        cfg.Binary,
		OutputDir:     outputDir,
		Timeout:       cfg.Timeout,
		AuxExtensions: cfg.AuxExtensions,
		Image:         cfg.Image,
		Logger:        log,
	}
	switch cfg.Backend {
	case "", types.BackendLocal:
		return NewLocal(opts), nil
	case types.BackendContainer:
		return NewContainer(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown compiler backend %q (use %s or %s)",
			cfg.Backend, types.BackendLocal, types.BackendContainer)
	}
}

// OutputName normalises a requested output file name to a base name.
// A trailing .pdf is dropped and an empty name becomes fallback. Names
// that would escape the output directory are rejected.
func OutputName(requested, fallback string) (string, error) {
	name := strings.TrimSpace(requested)
	name = strings.TrimSuffix(name, ".pdf")
	if name == "" {
		name = fallback
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid output filename %q: must not contain path separators", requested)
	}
	return name, nil
}
