// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
)

const (
	openBrace  = '{'
	closeBrace = '}'
)

// Span is a half-open byte range [Start, End) of a template.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (s Span) Len() int { return s.End - s.Start }

type scanState int

const (
	scanOpener scanState = iota
	scanDepth
	scanDone
)

// LocateBalancedBlock finds the first occurrence of opener (which must end
// with an opening brace, e.g. `\author{`) and returns the span from the
// start of opener through the brace that closes it. Braces nested inside
// the body are counted, so `\author{A{B}C}` is matched whole.
//
// ok is false when opener does not occur. A block that is still open at
// end of input yields *MalformedTemplateError.
func LocateBalancedBlock(text, opener string) (span Span, ok bool, err error) {
	if opener == "" || opener[len(opener)-1] != openBrace {
		return Span{}, false, fmt.Errorf("balanced block opener %q must end with %q", opener, string(openBrace))
	}

	var (
		state = scanOpener
		depth int
		pos   int
	)
	for state != scanDone {
		switch state {
		case scanOpener:
			idx := strings.Index(text, opener)
			if idx < 0 {
				return Span{}, false, nil
			}
			span.Start = idx
			pos = idx + len(opener) - 1
			state = scanDepth

		case scanDepth:
			if pos >= len(text) {
				return Span{}, false, &MalformedTemplateError{Opener: opener, Offset: span.Start, Depth: depth}
			}
			switch text[pos] {
			case openBrace:
				depth++
			case closeBrace:
				depth--
				if depth == 0 {
					span.End = pos + 1
					state = scanDone
				}
			}
			pos++
		}
	}
	return span, true, nil
}
