// File: internal/enrichment/fallback.go
package enrichment

import (
	"regexp"
	"strings"
)

// materialPattern matches "material" followed by an optional ':' or '-'
// separator and a single word token.
var materialPattern = regexp.MustCompile(`(?i)material\b\s*[:\-]?\s*([A-Za-z]+)`)

// knownMaterials is the fixed vocabulary for the last-word fallback.
var knownMaterials = map[string]struct{}{
	"wood":      {},
	"steel":     {},
	"plastic":   {},
	"glass":     {},
	"copper":    {},
	"aluminum":  {},
	"sugarcane": {},
}

// ExtractMaterial attempts rule-based material detection when the external
// extractor yields nothing. It returns the empty string when no material is
// found and never fails.
//
// The two branches disagree on casing on purpose: the pattern branch returns
// the token as written, the last-word branch lower-cases it. That asymmetry is
// carried over from the original heuristic and downstream matching normalizes
// case anyway.
func ExtractMaterial(description string) string {
	if m := materialPattern.FindStringSubmatch(description); m != nil {
		return m[1]
	}

	tokens := strings.Fields(description)
	if len(tokens) == 0 {
		return ""
	}

	last := strings.ToLower(stripNonAlpha(tokens[len(tokens)-1]))
	if _, ok := knownMaterials[last]; ok {
		return last
	}
	return ""
}

func stripNonAlpha(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
