// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/writer/pkg/types"
)

func TestLocateBalancedBlock(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opener   string
		wantSpan Span
		wantOK   bool
	}{
		{
			name:     "nested braces are counted",
			text:     `\author{A{B}C}`,
			opener:   `\author{`,
			wantSpan: Span{Start: 0, End: len(`\author{A{B}C}`)},
			wantOK:   true,
		},
		{
			name:     "block inside surrounding text",
			text:     `\title{T} \author{x{y{z}}} \maketitle`,
			opener:   `\author{`,
			wantSpan: Span{Start: 10, End: 10 + len(`\author{x{y{z}}}`)},
			wantOK:   true,
		},
		{
			name:     "first occurrence wins",
			text:     `\author{one} \author{two}`,
			opener:   `\author{`,
			wantSpan: Span{Start: 0, End: len(`\author{one}`)},
			wantOK:   true,
		},
		{
			name:     "empty body",
			text:     `\author{}`,
			opener:   `\author{`,
			wantSpan: Span{Start: 0, End: 9},
			wantOK:   true,
		},
		{
			name:   "opener absent",
			text:   `\title{T} \maketitle`,
			opener: `\author{`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok, err := LocateBalancedBlock(tt.text, tt.opener)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSpan, span)
		})
	}
}

func TestLocateBalancedBlockUnterminated(t *testing.T) {
	_, ok, err := LocateBalancedBlock(`\author{A{B}`, `\author{`)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrMalformedTemplate))

	var merr *MalformedTemplateError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, `\author{`, merr.Opener)
	assert.Equal(t, 0, merr.Offset)
	assert.Equal(t, 1, merr.Depth)
}

func TestLocateBalancedBlockBadOpener(t *testing.T) {
	_, _, err := LocateBalancedBlock(`\author{A}`, `\author`)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedTemplate))
}

func TestSpliceSectionEndToEnd(t *testing.T) {
	template := "Hi NAME, edu: EDU_BLOCK"
	withScalars := SubstituteScalars(template, map[string]string{})
	fragment := RenderEducationSection([]types.EducationEntry{{
		Education: "MIT", Course: "CS", Location: "Boston",
		StartMonth: "Sep", StartYear: "2020", EndMonth: "Jun", EndYear: "2024",
	}})

	got, placement, err := SpliceSection(withScalars, fragment, Anchor{Literal: "EDU_BLOCK"}, `\maketitle`)
	require.NoError(t, err)
	assert.Equal(t, PlacedLiteral, placement)

	assert.True(t, strings.HasPrefix(got, "Hi NAME, edu: \\resumeSubHeadingListStart\n"))
	assert.True(t, strings.HasSuffix(got, "\\resumeSubHeadingListEnd"))
	assert.Contains(t, got, "{MIT}")
	assert.Contains(t, got, "{Sep 2020 -- Jun 2024}")
	assert.Less(t, strings.Index(got, "MIT"), strings.Index(got, "Sep 2020 -- Jun 2024"))
	assert.NotContains(t, got, "EDU_BLOCK")
}

func TestSpliceSection(t *testing.T) {
	tests := []struct {
		name          string
		template      string
		anchor        Anchor
		fallback      string
		want          string
		wantPlacement Placement
	}{
		{
			name:          "literal replaced at every occurrence",
			template:      "A EXAMPLE B EXAMPLE",
			anchor:        Anchor{Literal: "EXAMPLE"},
			want:          "A FRAG B FRAG",
			wantPlacement: PlacedLiteral,
		},
		{
			name:          "balanced block replaced",
			template:      "\\title{T}\n\\author{old {nested}}\n\\maketitle",
			anchor:        Anchor{Opener: `\author{`},
			fallback:      `\maketitle`,
			want:          "\\title{T}\nFRAG\n\\maketitle",
			wantPlacement: PlacedBlock,
		},
		{
			name:          "literal preferred over block",
			template:      `EXAMPLE \author{x}`,
			anchor:        Anchor{Literal: "EXAMPLE", Opener: `\author{`},
			want:          `FRAG \author{x}`,
			wantPlacement: PlacedLiteral,
		},
		{
			name:          "fallback inserts before anchor",
			template:      "\\title{T}\n\\maketitle\nbody",
			anchor:        Anchor{Opener: `\author{`},
			fallback:      `\maketitle`,
			want:          "\\title{T}\nFRAG\n\n\\maketitle\nbody",
			wantPlacement: PlacedFallback,
		},
		{
			name:          "whitespace drift degrades to fallback",
			template:      "  EXAMPLE\n\\end{document}",
			anchor:        Anchor{Literal: " EXAMPLE \n"},
			fallback:      `\end{document}`,
			want:          "  EXAMPLE\nFRAG\n\n\\end{document}",
			wantPlacement: PlacedFallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, placement, err := SpliceSection(tt.template, "FRAG", tt.anchor, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPlacement, placement)
		})
	}
}

func TestSpliceSectionNoInsertionPoint(t *testing.T) {
	tests := []struct {
		name     string
		anchor   Anchor
		fallback string
	}{
		{name: "nothing matches", anchor: Anchor{Literal: "EXAMPLE"}, fallback: `\maketitle`},
		{name: "empty anchor and fallback", anchor: Anchor{}},
		{name: "block absent and no fallback", anchor: Anchor{Opener: `\author{`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, placement, err := SpliceSection("plain text", "FRAG", tt.anchor, tt.fallback)
			require.Error(t, err)
			assert.Equal(t, PlacedNone, placement)
			assert.True(t, errors.Is(err, ErrNoInsertionPoint))
		})
	}
}

func TestSpliceSectionEmptyFragmentAtFallback(t *testing.T) {
	template := "\\title{T}\n\\maketitle\n"
	got, placement, err := SpliceSection(template, "", Anchor{Opener: `\author{`}, `\maketitle`)
	require.NoError(t, err)
	assert.Equal(t, PlacedFallback, placement)
	assert.Equal(t, template, got)
}

func TestSpliceSectionMalformedBlockIsFatal(t *testing.T) {
	_, _, err := SpliceSection("\\author{open {\n\\maketitle", "FRAG", Anchor{Opener: `\author{`}, `\maketitle`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedTemplate))
}

func TestSpliceSectionIdempotent(t *testing.T) {
	template := "\\title{T}\n\\author{X}\n\\maketitle"
	fragment, err := RenderAuthorsGrid(testAuthors(2))
	require.NoError(t, err)

	first, _, err := SpliceSection(strings.Clone(template), fragment, Anchor{Opener: `\author{`}, `\maketitle`)
	require.NoError(t, err)
	second, _, err := SpliceSection(strings.Clone(template), fragment, Anchor{Opener: `\author{`}, `\maketitle`)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
