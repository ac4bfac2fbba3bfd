// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"sort"
	"strings"
)

// SubstituteScalars replaces every occurrence of each token in bindings with
// its bound text. Tokens that do not occur are ignored. The buffer is
// scanned once, so replacement text is never searched for further tokens.
// Values are inserted verbatim; LaTeX meta-characters are not escaped.
func SubstituteScalars(template string, bindings map[string]string) string {
	tokens := make([]string, 0, len(bindings))
	for tok := range bindings {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return template
	}

	// Longest first so a token that prefixes another never shadows it.
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, 2*len(tokens))
	for _, tok := range tokens {
		pairs = append(pairs, tok, bindings[tok])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
