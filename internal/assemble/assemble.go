// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble drives one document from payload to PDF: it loads the
// template, renders the family, compiles the result, and records the
// outcome in history and metrics. The CLI, the HTTP API, and the prompt
// share it.
package assemble

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/writer/internal/compile"
	"github.com/pdiddy/writer/internal/metrics"
	"github.com/pdiddy/writer/internal/render"
	"github.com/pdiddy/writer/internal/templates"
	"github.com/pdiddy/writer/pkg/types"
)

// ErrInvalidRequest reports a request that names no template or whose
// payload does not belong to its family.
var ErrInvalidRequest = errors.New("invalid request")

// Recorder stores render outcomes. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, rec types.RenderRecord) (types.RenderRecord, error)
}

// Request is one document to generate.
type Request struct {
	Family   string
	Document types.Document

	// Template overrides the template named in the payload.
	Template string
	// Output overrides the output filename named in the payload.
	Output string
	// DryRun writes the .tex source without compiling it.
	DryRun bool
}

// Outcome describes a generated document.
type Outcome struct {
	Family    string        `json:"family" yaml:"family"`
	Template  string        `json:"template" yaml:"template"`
	Name      string        `json:"name" yaml:"name"`
	TeXPath   string        `json:"tex_path" yaml:"tex_path"`
	PDFPath   string        `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`
	Passes    int           `json:"passes" yaml:"passes"`
	Fallbacks []string      `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	DryRun    bool          `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Service generates documents.
type Service struct {
	templatesDir string
	outputDir    string
	opts         render.Options

	compiler compile.Compiler
	history  Recorder
	log      logrus.FieldLogger
}

// New returns a Service. history may be nil to skip recording. compiler may
// be nil when only dry runs are requested.
func New(cfg types.Config, compiler compile.Compiler, history Recorder, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		templatesDir: cfg.TemplatesDir,
		outputDir:    cfg.OutputDir,
		opts:         render.Options{StrictAnchors: cfg.Render.StrictAnchors},
		compiler:     compiler,
		history:      history,
		log:          log,
	}
}

// DefaultOutput is the output base name used when a payload names none.
func DefaultOutput(family string) string {
	switch family {
	case render.FamilyReport, render.FamilyReportGrid:
		return "report"
	case render.FamilyLetter:
		return "cover_letter"
	default:
		return "output"
	}
}

// Passes is the number of compiler runs for family. Reports carry cross
// references and need a second pass.
func Passes(family string) int {
	switch family {
	case render.FamilyReport, render.FamilyReportGrid:
		return 2
	default:
		return 1
	}
}

// templateFor returns the template file name for req.
func templateFor(req Request) string {
	if req.Template != "" {
		return req.Template
	}
	return req.Document.TemplateName()
}

// inputFor maps the payload to render input, checking it matches family.
func inputFor(family string, doc types.Document) (render.Input, error) {
	switch family {
	case render.FamilyResume:
		if doc.Resume != nil {
			return render.ResumeInput(*doc.Resume), nil
		}
	case render.FamilyReport, render.FamilyReportGrid:
		if doc.Report != nil {
			return render.ReportInput(*doc.Report), nil
		}
	case render.FamilyLetter:
		if doc.Letter != nil {
			return render.LetterInput(*doc.Letter), nil
		}
	}
	return render.Input{}, fmt.Errorf("%w: payload does not match family %q", ErrInvalidRequest, family)
}

// RenderOnly produces the LaTeX source for req without writing or
// compiling it.
func (s *Service) RenderOnly(req Request) (render.Result, error) {
	family, err := render.Lookup(req.Family)
	if err != nil {
		return render.Result{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	in, err := inputFor(family.Name(), req.Document)
	if err != nil {
		return render.Result{}, err
	}

	name := templateFor(req)
	if name == "" {
		return render.Result{}, fmt.Errorf("%w: no template named", ErrInvalidRequest)
	}
	tmpl, err := templates.Load(s.templatesDir, name)
	if err != nil {
		return render.Result{}, err
	}

	res, err := family.Render(tmpl, in, s.opts)
	if err != nil {
		return render.Result{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	for _, section := range res.Fallbacks {
		s.log.WithFields(logrus.Fields{
			"family":   family.Name(),
			"template": name,
			"section":  section,
		}).Warn("section anchor missing from template; inserted at fallback")
		metrics.SpliceFallbacks.WithLabelValues(family.Name(), section).Inc()
	}
	return res, nil
}

// Generate renders req and compiles it to PDF, or writes only the .tex
// source when req.DryRun is set. Every attempt is recorded in history.
func (s *Service) Generate(ctx context.Context, req Request) (out Outcome, err error) {
	start := time.Now()
	out = Outcome{Family: req.Family, Template: templateFor(req), DryRun: req.DryRun}

	label := metrics.UnknownFamily
	if f, lerr := render.Lookup(req.Family); lerr == nil {
		label = f.Name()
	}
	defer func() {
		out.Duration = time.Since(start)
		metrics.ObserveWithStatus(metrics.RenderDuration, start, err, label)
		s.record(ctx, out, err)
	}()

	requested := req.Output
	if requested == "" {
		requested = req.Document.OutputFilename()
	}
	out.Name, err = compile.OutputName(requested, DefaultOutput(req.Family))
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	res, err := s.RenderOnly(req)
	if err != nil {
		return out, err
	}
	out.Fallbacks = res.Fallbacks

	if req.DryRun {
		out.TeXPath, err = s.writeSource(out.Name, res.Source)
		return out, err
	}

	if s.compiler == nil {
		return out, compile.ErrCompilerNotFound
	}
	cres, err := s.compiler.Compile(ctx, compile.Job{
		Source: res.Source,
		Name:   out.Name,
		Passes: Passes(req.Family),
	})
	out.TeXPath = cres.TeXPath
	out.PDFPath = cres.PDFPath
	out.Passes = cres.Passes
	metrics.CompilePasses.Add(float64(cres.Passes))
	if err != nil {
		return out, fmt.Errorf("compiling %s: %w", out.Name, err)
	}

	s.log.WithFields(logrus.Fields{
		"family": req.Family,
		"pdf":    out.PDFPath,
		"passes": out.Passes,
	}).Info("document generated")
	return out, nil
}

func (s *Service) writeSource(name, source string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(s.outputDir, name+".tex")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// record stores the outcome. History failures are logged, never returned.
func (s *Service) record(ctx context.Context, out Outcome, genErr error) {
	if s.history == nil {
		return
	}
	rec := types.RenderRecord{
		Family:    out.Family,
		Template:  out.Template,
		Status:    types.RenderSucceeded,
		Fallbacks: out.Fallbacks,
		Duration:  out.Duration,
	}
	switch {
	case genErr != nil:
		rec.Status = types.RenderFailed
		rec.Error = genErr.Error()
	case out.DryRun:
		rec.Status = types.RenderDryRun
		rec.Output = out.TeXPath
	default:
		rec.Output = out.PDFPath
	}
	// A canceled request still gets its row.
	if _, err := s.history.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.log.WithError(err).Warn("could not record render history")
	}
}
