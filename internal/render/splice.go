// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
)

// Anchor tells SpliceSection where a section lives in a template. Literal
// is an exact example block, matched byte for byte including whitespace.
// Opener is a directive whose balanced body is replaced, e.g. `\author{`.
// Either may be empty.
type Anchor struct {
	Literal string
	Opener  string
}

func (a Anchor) String() string {
	switch {
	case a.Literal != "" && a.Opener != "":
		return fmt.Sprintf("literal(%d bytes)|block(%q)", len(a.Literal), a.Opener)
	case a.Opener != "":
		return fmt.Sprintf("block(%q)", a.Opener)
	default:
		return fmt.Sprintf("literal(%d bytes)", len(a.Literal))
	}
}

// Placement records which strategy placed a fragment.
type Placement int

const (
	PlacedNone Placement = iota
	PlacedLiteral
	PlacedBlock
	PlacedFallback
)

func (p Placement) String() string {
	switch p {
	case PlacedLiteral:
		return "literal"
	case PlacedBlock:
		return "block"
	case PlacedFallback:
		return "fallback"
	default:
		return "none"
	}
}

// SpliceSection places fragment into template, trying in order:
//
//  1. every exact occurrence of anchor.Literal is replaced;
//  2. the balanced block starting at anchor.Opener is replaced;
//  3. fragment and a blank line are inserted before the first occurrence
//     of fallback. An empty fragment leaves the template unchanged.
//
// When none applies the result is *NoInsertionPointError. A malformed
// balanced block is returned as is and is not recovered by the fallback.
func SpliceSection(template, fragment string, anchor Anchor, fallback string) (string, Placement, error) {
	if anchor.Literal != "" && strings.Contains(template, anchor.Literal) {
		return strings.ReplaceAll(template, anchor.Literal, fragment), PlacedLiteral, nil
	}

	if anchor.Opener != "" {
		span, ok, err := LocateBalancedBlock(template, anchor.Opener)
		if err != nil {
			return "", PlacedNone, err
		}
		if ok {
			return template[:span.Start] + fragment + template[span.End:], PlacedBlock, nil
		}
	}

	if fallback != "" {
		if idx := strings.Index(template, fallback); idx >= 0 {
			if fragment == "" {
				return template, PlacedFallback, nil
			}
			return template[:idx] + fragment + "\n\n" + template[idx:], PlacedFallback, nil
		}
	}

	return "", PlacedNone, &NoInsertionPointError{Anchor: anchor, Fallback: fallback}
}
