// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compile

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

type localRunner struct {
	binary string
	exec   executor
}

func (l *localRunner) backend() string { return "local" }

func (l *localRunner) runPass(ctx context.Context, dir, texFile string, stdout, stderr io.Writer) error {
	if _, err := l.exec.LookPath(l.binary); err != nil {
		return fmt.Errorf("%w: %s is not on PATH (install TeX Live or MiKTeX)", ErrCompilerNotFound, l.binary)
	}
	args := []string{"-interaction=nonstopmode", "-output-directory", dir, filepath.Join(dir, texFile)}
	if err := l.exec.Run(ctx, l.binary, args, stdout, stderr); err != nil {
		return fmt.Errorf("running %s: %w", l.binary, err)
	}
	return nil
}

// NewLocal returns a compiler that runs the typesetting binary from PATH.
func NewLocal(opts Options) Compiler {
	return newLocal(opts, osExecutor{})
}

func newLocal(opts Options, ex executor) *engine {
	opts = opts.withDefaults()
	return &engine{opts: opts, runner: &localRunner{binary: opts.Binary, exec: ex}}
}
