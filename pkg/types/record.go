// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RenderStatus indicates how a document generation ended.
type RenderStatus string

const (
	RenderSucceeded RenderStatus = "succeeded"
	RenderFailed    RenderStatus = "failed"
	// RenderDryRun marks a render that produced LaTeX source without
	// invoking the compiler.
	RenderDryRun RenderStatus = "dry-run"
)

// RenderRecord is one row of the render history.
type RenderRecord struct {
	// ID is the history row identifier, assigned by the store.
	ID int64 `json:"id" yaml:"id"`

	// Family is the template family (resume, report, report-grid, letter).
	Family string `json:"family" yaml:"family"`

	// Template is the template file name.
	Template string `json:"template" yaml:"template"`

	// Output is the PDF (or .tex for dry runs) path produced, if any.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Status RenderStatus `json:"status" yaml:"status"`

	// Fallbacks lists sections placed by fallback insertion rather than
	// by their anchor.
	Fallbacks []string `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`

	// Error is the failure message for failed renders.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	Duration  time.Duration `json:"duration" yaml:"duration"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}
