// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// passRunner runs one compiler pass over texFile, which lives in dir.
type passRunner interface {
	backend() string
	runPass(ctx context.Context, dir, texFile string, stdout, stderr io.Writer) error
}

// engine holds the compile steps shared by every backend.
type engine struct {
	opts   Options
	runner passRunner
}

func (e *engine) Compile(ctx context.Context, job Job) (Result, error) {
	name, err := OutputName(job.Name, "output")
	if err != nil {
		return Result{}, err
	}
	dir := e.opts.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	texPath := filepath.Join(dir, name+".tex")
	pdfPath := filepath.Join(dir, name+".pdf")
	if err := os.WriteFile(texPath, []byte(normalizeNewlines(job.Source)), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", texPath, err)
	}
	// A PDF left by an earlier run must not pass for this one.
	if err := os.Remove(pdfPath); err != nil && !os.IsNotExist(err) {
		return Result{}, fmt.Errorf("removing stale %s: %w", pdfPath, err)
	}

	passes := max(job.Passes, 1)
	log := e.opts.Logger.WithFields(logrus.Fields{"backend": e.runner.backend(), "name": name})

	var (
		stdout, stderr bytes.Buffer
		failure        error
		logPath        string
	)
	for pass := 1; pass <= passes; pass++ {
		stdout.Reset()
		stderr.Reset()

		passCtx, cancel := e.passContext(ctx)
		err := e.runner.runPass(passCtx, dir, name+".tex", &stdout, &stderr)
		cancel()

		if errors.Is(err, ErrCompilerNotFound) {
			return Result{}, err
		}
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("compiling %s: %w", name, ctx.Err())
		}
		if err != nil {
			failure = err
			logPath = filepath.Join(dir, name+"_error.log")
			if werr := writeErrorLog(logPath, stdout.String(), stderr.String()); werr != nil {
				log.WithError(werr).Warn("could not write error log")
			}
			log.WithError(err).WithField("pass", pass).Warn("latex pass failed")
			continue
		}
		log.WithField("pass", pass).Debug("latex pass complete")
	}

	if _, err := os.Stat(pdfPath); err != nil {
		return Result{}, &CompileError{
			Name:    name,
			LogPath: logPath,
			Stdout:  stdout.String(),
			Stderr:  stderr.String(),
			Err:     failure,
		}
	}

	e.cleanup(dir, name, log)
	return Result{TeXPath: texPath, PDFPath: pdfPath, Passes: passes, Log: stdout.String()}, nil
}

func (e *engine) passContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.opts.Timeout > 0 {
		return context.WithTimeout(ctx, e.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

func (e *engine) cleanup(dir, name string, log logrus.FieldLogger) {
	for _, ext := range e.opts.AuxExtensions {
		path := filepath.Join(dir, name+ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("file", path).Debug("could not remove auxiliary file")
		}
	}
}

func writeErrorLog(path, stdout, stderr string) error {
	var b strings.Builder
	b.WriteString("STDOUT:\n")
	b.WriteString(stdout)
	b.WriteString("\n\nSTDERR:\n")
	b.WriteString(stderr)
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// normalizeNewlines writes LF line endings regardless of how the template
// was saved.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
