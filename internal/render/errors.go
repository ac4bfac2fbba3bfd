// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The concrete types below carry the context.
var (
	ErrValidation        = errors.New("validation failed")
	ErrMalformedTemplate = errors.New("malformed template")
	ErrNoInsertionPoint  = errors.New("no insertion point")
)

// ValidationError reports structured input that violates a precondition of
// a section generator, such as an empty author list for the grid layout.
type ValidationError struct {
	Section string
	Count   int
	Max     int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("invalid %s: %s (got %d, max %d)", e.Section, e.Message, e.Count, e.Max)
	}
	return fmt.Sprintf("invalid %s: %s (got %d)", e.Section, e.Message, e.Count)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// MalformedTemplateError reports a balanced block whose opening brace is
// never closed.
type MalformedTemplateError struct {
	// Opener is the delimiter literal that started the block.
	Opener string
	// Offset is the byte offset of Opener in the template.
	Offset int
	// Depth is the nesting depth still open at end of input.
	Depth int
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed template: %q at offset %d is not closed (%d brace(s) open at end of input)",
		e.Opener, e.Offset, e.Depth)
}

// Is matches ErrMalformedTemplate.
func (e *MalformedTemplateError) Is(target error) bool { return target == ErrMalformedTemplate }

// NoInsertionPointError reports that neither a section's anchor nor its
// fallback anchor occurs in the template.
type NoInsertionPointError struct {
	Section  string
	Anchor   Anchor
	Fallback string
}

func (e *NoInsertionPointError) Error() string {
	name := e.Section
	if name == "" {
		name = "section"
	}
	if e.Fallback == "" {
		return fmt.Sprintf("no insertion point for %s: anchor %s not found", name, e.Anchor)
	}
	return fmt.Sprintf("no insertion point for %s: anchor %s and fallback %q not found", name, e.Anchor, e.Fallback)
}

// Is matches ErrNoInsertionPoint.
func (e *NoInsertionPointError) Is(target error) bool { return target == ErrNoInsertionPoint }
