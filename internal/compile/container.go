// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compile

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sync"

	"github.com/pdiddy/writer/internal/container"
)

const workdir = "/work"

type containerRunner struct {
	rt     container.Runtime
	binary string
	image  string

	imageOnce sync.Once
	opts      Options
}

func (c *containerRunner) backend() string { return c.rt.Name() }

func (c *containerRunner) runPass(ctx context.Context, dir, texFile string, stdout, stderr io.Writer) error {
	c.imageOnce.Do(func() {
		if err := c.rt.ImageExists(ctx, c.image); err != nil {
			c.opts.Logger.WithField("image", c.image).Info("image not present locally; it will be pulled on first run")
		}
	})

	host, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	spec := container.RunSpec{
		Image:   c.image,
		Mounts:  []container.Mount{{Host: host, Container: workdir}},
		Workdir: workdir,
		Args:    []string{c.binary, "-interaction=nonstopmode", "-output-directory", workdir, path.Join(workdir, texFile)},
	}
	return c.rt.Run(ctx, spec, stdout, stderr)
}

// NewContainer returns a compiler that runs the typesetting binary inside
// opts.Image using docker, or podman when docker is unavailable.
func NewContainer(ctx context.Context, opts Options) (Compiler, error) {
	rt, err := container.DetectRuntime(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompilerNotFound, err)
	}
	return newContainer(opts, rt), nil
}

func newContainer(opts Options, rt container.Runtime) *engine {
	opts = opts.withDefaults()
	if opts.Image == "" {
		opts.Image = "texlive/texlive:latest"
	}
	return &engine{opts: opts, runner: &containerRunner{rt: rt, binary: opts.Binary, image: opts.Image, opts: opts}}
}
