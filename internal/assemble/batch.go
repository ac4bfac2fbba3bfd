// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/writer/internal/compile"
	"github.com/pdiddy/writer/internal/document"
	"github.com/pdiddy/writer/pkg/types"
)

// JobResult is the outcome of one batch job.
type JobResult struct {
	Job     types.BatchJob
	Outcome Outcome
	Err     error
}

// BatchResult holds the outcome of a batch run, in job order.
type BatchResult struct {
	Succeeded int
	Failed    int
	Jobs      []JobResult
}

// Total returns the number of jobs in the batch.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch generates every job with at most concurrency running at once. Jobs
// are independent: one failure does not stop the others. Progress lines
// are written to w as jobs finish.
//
// A job that names no output file is written under its data file's base
// name. Jobs that resolve to an output already claimed by an earlier job
// fail without running.
func (s *Service) Batch(ctx context.Context, jobs []types.BatchJob, concurrency int, dryRun bool, w io.Writer) BatchResult {
	if concurrency < 1 {
		concurrency = 1
	}
	planned := s.plan(ctx, jobs)
	results := make([]JobResult, len(jobs))
	lines := make(chan string)
	done := make(chan struct{})
	go func() {
		for l := range lines {
			fmt.Fprintln(w, l)
		}
		close(done)
	}()

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			out, err := s.runJob(ctx, job, planned[i], dryRun)
			results[i] = JobResult{Job: job, Outcome: out, Err: err}
			if err != nil {
				lines <- fmt.Sprintf("  [%d/%d] %s: failed: %v", i+1, len(jobs), job.Data, err)
			} else {
				lines <- fmt.Sprintf("  [%d/%d] %s: %s", i+1, len(jobs), job.Data, outcomePath(out))
			}
			return nil
		})
	}
	_ = g.Wait()
	close(lines)
	<-done

	result := BatchResult{Jobs: results}
	for _, r := range results {
		if r.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	return result
}

// plannedJob is a loaded batch job with its resolved output name.
type plannedJob struct {
	doc    types.Document
	output string
	err    error
}

// plan loads every job's data and resolves its output name in job order,
// so duplicate detection does not depend on scheduling.
func (s *Service) plan(ctx context.Context, jobs []types.BatchJob) []plannedJob {
	planned := make([]plannedJob, len(jobs))
	claimed := make(map[string]int)
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			planned[i].err = err
			continue
		}
		doc, err := document.Load(job.Data, job.Family)
		if err != nil {
			planned[i].err = err
			continue
		}

		output := job.Output
		if output == "" {
			output = doc.OutputFilename()
		}
		if output == "" {
			base := filepath.Base(job.Data)
			output = strings.TrimSuffix(base, filepath.Ext(base))
		}
		planned[i] = plannedJob{doc: doc, output: output}

		name, err := compile.OutputName(output, DefaultOutput(job.Family))
		if err != nil {
			continue
		}
		if prev, ok := claimed[name]; ok {
			planned[i].err = fmt.Errorf("%w: output %q is already written by job %d", ErrInvalidRequest, name, prev+1)
			continue
		}
		claimed[name] = i
	}
	return planned
}

func (s *Service) runJob(ctx context.Context, job types.BatchJob, p plannedJob, dryRun bool) (Outcome, error) {
	if p.err != nil {
		return Outcome{Family: job.Family, Name: p.output}, p.err
	}
	if err := ctx.Err(); err != nil {
		return Outcome{Family: job.Family}, err
	}
	return s.Generate(ctx, Request{
		Family:   job.Family,
		Document: p.doc,
		Template: job.Template,
		Output:   p.output,
		DryRun:   dryRun,
	})
}

func outcomePath(out Outcome) string {
	if out.PDFPath != "" {
		return out.PDFPath
	}
	return out.TeXPath
}
