package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Canonical numbering pattern: one or more dot-separated digit groups
// followed by a separator. This single definition is shared by the
// feature extractor, the title selector and the level assigner.
var numericPrefixRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)[).:\-\s]`)

var bulletRe = regexp.MustCompile(`^[•·▪▫◦‣⁃]\s+`)

// sectionKeywords is a closed list of common structural section
// headers. Lines whose uppercased text matches one are never chosen
// as the document title.
var sectionKeywords = map[string]bool{
	"EDUCATION":           true,
	"EXPERIENCE":          true,
	"PROJECTS":            true,
	"SKILLS":              true,
	"WORK EXPERIENCE":     true,
	"ACHIEVEMENTS":        true,
	"RELEVANT COURSEWORK": true,
	"CONTACT":             true,
	"REFERENCES":          true,
	"SUMMARY":             true,
	"OBJECTIVE":           true,
	"PROFILE":             true,
	"QUALIFICATIONS":      true,
	"CERTIFICATIONS":      true,
	"AWARDS":              true,
	"PUBLICATIONS":        true,
	"LANGUAGES":           true,
	"INTERESTS":           true,
	"HOBBIES":             true,
	"VOLUNTEER":           true,
	"ACTIVITIES":          true,
	"LEADERSHIP":          true,
	"RESEARCH":            true,
}

// HasNumericPrefix reports whether text starts with a numbering
// pattern such as "1.", "2.3)" or "10 -".
func HasNumericPrefix(text string) bool {
	return numericPrefixRe.MatchString(text)
}

// NumericPrefixDepth returns the nesting depth implied by a leading
// numbering pattern: "1." is depth 1, "2.3" depth 2, "1.2.3" depth 3.
// Returns 0 when the text carries no numbering prefix.
func NumericPrefixDepth(text string) int {
	m := numericPrefixRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return strings.Count(m[1], ".") + 1
}

// HasBulletPrefix reports whether text starts with a bullet glyph.
func HasBulletPrefix(text string) bool {
	return bulletRe.MatchString(text)
}

// IsSectionKeyword reports whether trimmed text is one of the known
// structural section headers, compared case-insensitively.
func IsSectionKeyword(text string) bool {
	return sectionKeywords[strings.ToUpper(strings.TrimSpace(text))]
}

// isAllUpper reports whether text contains at least one letter and no
// lowercase letters.
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
