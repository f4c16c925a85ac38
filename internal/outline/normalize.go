package outline

import (
	"regexp"
	"strings"
)

// Normalize runs the full cleanup chain over raw entries:
// validate fields, clean heading text, remove duplicates, repair the
// H1→H2→H3 hierarchy, and drop entries left empty by cleaning.
// The hierarchy repair here is the authoritative one — earlier level
// assignment is treated as a first guess only.
func Normalize(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	out := validate(entries)
	for i := range out {
		out[i].Text = CleanText(out[i].Text)
	}
	out = dedupe(out)
	out = repairHierarchy(out)

	final := out[:0]
	for _, e := range out {
		if e.Text != "" {
			final = append(final, e)
		}
	}
	if len(final) == 0 {
		return nil
	}
	return final
}

// validate drops entries with empty text and coerces malformed fields
// to documented defaults: unknown levels become H1, pages below 1
// become 1. Nothing here propagates an error.
func validate(entries []Entry) []Entry {
	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !validLevel(e.Level) {
			e.Level = LevelH1
		}
		e.Text = strings.TrimSpace(e.Text)
		if e.Text == "" {
			continue
		}
		if e.Page < 1 {
			e.Page = 1
		}
		valid = append(valid, e)
	}
	return valid
}

var (
	trailingDotsRe   = regexp.MustCompile(`\.{2,}$`)
	trailingDashesRe = regexp.MustCompile(`[-_]{2,}$`)
	trailingColonRe  = regexp.MustCompile(`\s*:\s*$`)
)

// CleanText collapses internal whitespace runs and strips cosmetic
// trailing artifacts: dot leaders, dash/underscore rules, and a
// trailing colon.
func CleanText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = trailingDotsRe.ReplaceAllString(text, "")
	text = trailingDashesRe.ReplaceAllString(text, "")
	text = trailingColonRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// dedupe removes later entries that repeat an earlier (level, text)
// pair, comparing text case-insensitively. First occurrence wins and
// document order is preserved.
func dedupe(entries []Entry) []Entry {
	type key struct {
		level string
		text  string
	}
	seen := make(map[key]bool, len(entries))
	unique := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{e.Level, strings.ToLower(strings.TrimSpace(e.Text))}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, e)
	}
	return unique
}

// repairHierarchy re-walks the sequence with a fresh level tracker and
// promotes orphans: an H2 with no preceding H1 becomes an H1, an H3
// with no preceding H2 becomes an H2 (or an H1 when no H1 exists yet).
// The output never contains a sub-level without its parent level
// occurring earlier.
func repairHierarchy(entries []Entry) []Entry {
	var h1Seen, h2Seen bool
	repaired := make([]Entry, 0, len(entries))

	for _, e := range entries {
		switch e.Level {
		case LevelH1:
			h1Seen, h2Seen = true, false
		case LevelH2:
			if !h1Seen {
				e.Level = LevelH1
				h1Seen, h2Seen = true, false
			} else {
				h2Seen = true
			}
		case LevelH3:
			if !h2Seen {
				if !h1Seen {
					e.Level = LevelH1
					h1Seen, h2Seen = true, false
				} else {
					e.Level = LevelH2
					h2Seen = true
				}
			}
		}
		repaired = append(repaired, e)
	}
	return repaired
}
