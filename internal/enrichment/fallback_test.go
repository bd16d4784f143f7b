package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMaterial_PatternBranch(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		expected    string
	}{
		{"colon separator keeps casing", "needed: material: Steel for project", "Steel"},
		{"dash separator", "material - copper, 50kg weekly", "copper"},
		{"no separator", "material plastic in bulk", "plastic"},
		{"keyword mid-sentence", "Surplus material: Aluminum available now", "Aluminum"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractMaterial(tc.description))
		})
	}
}

func TestExtractMaterial_LastWordBranch(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		expected    string
	}{
		{"known material last", "Looking for scrap sugarcane", "sugarcane"},
		{"lower-cases the token", "Weekly supply of Plastic", "plastic"},
		{"strips trailing punctuation", "selling reclaimed wood.", "wood"},
		{"unknown last word", "nothing relevant here", ""},
		{"empty description", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractMaterial(tc.description))
		})
	}
}

func TestExtractMaterial_PluralKeywordDoesNotMatchPattern(t *testing.T) {
	// "materials" must not satisfy the keyword pattern and capture a stray "s".
	assert.Equal(t, "", ExtractMaterial("materials needed urgently"))
	assert.Equal(t, "glass", ExtractMaterial("materials needed: broken glass"))
}
