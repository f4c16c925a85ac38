package classify

import (
	"sort"
	"strings"

	"github.com/outliner-go/outliner/internal/docline"
)

// titleRule rejects a page-1 line as a title candidate. Rules run in
// order; the first match disqualifies the line.
type titleRule struct {
	name   string
	reject func(line docline.Line, m Metrics, pageBottom float64) bool
}

var titleRules = []titleRule{
	{
		name: "structural-section-keyword",
		reject: func(line docline.Line, _ Metrics, _ float64) bool {
			return IsSectionKeyword(line.Text)
		},
	},
	{
		name: "word-count-outside-2-15",
		reject: func(line docline.Line, _ Metrics, _ float64) bool {
			words := len(strings.Fields(strings.TrimSpace(line.Text)))
			return words < 2 || words > 15
		},
	},
	{
		name: "numbered-or-bulleted",
		reject: func(line docline.Line, _ Metrics, _ float64) bool {
			text := strings.TrimSpace(line.Text)
			return HasNumericPrefix(text) || HasBulletPrefix(text)
		},
	},
	{
		name: "font-below-top-3",
		reject: func(line docline.Line, m Metrics, _ float64) bool {
			return m.rankOf(line.FontSize) > 2
		},
	},
	{
		name: "below-page-midpoint",
		reject: func(line docline.Line, _ Metrics, pageBottom float64) bool {
			return pageBottom > 0 && line.Y0/pageBottom > 0.5
		},
	},
}

// SelectTitle picks the document title from page-1 lines. The primary
// pass walks lines largest-font-first and returns the first one no
// rejection rule disqualifies. The fallback takes the highest-scoring
// page-1 candidate, accepted only above probability 0.5. Returns ""
// when neither pass produces a title.
func SelectTitle(lines []docline.Line, m Metrics, candidates []docline.Candidate) string {
	var page1 []docline.Line
	for _, ln := range lines {
		if ln.Page == 1 {
			page1 = append(page1, ln)
		}
	}
	if len(page1) > 0 {
		sort.SliceStable(page1, func(i, j int) bool {
			if page1[i].FontSize != page1[j].FontSize {
				return page1[i].FontSize > page1[j].FontSize
			}
			return page1[i].Y0 < page1[j].Y0
		})

		var pageBottom float64
		for _, ln := range page1 {
			if ln.Y1 > pageBottom {
				pageBottom = ln.Y1
			}
		}

		for _, ln := range page1 {
			if !rejectedAsTitle(ln, m, pageBottom) {
				return strings.TrimSpace(ln.Text)
			}
		}
	}

	// Fallback: best-scoring page-1 candidate, if reasonably confident.
	var best *docline.Candidate
	for i := range candidates {
		if candidates[i].Page != 1 {
			continue
		}
		if best == nil || candidates[i].Prob > best.Prob {
			best = &candidates[i]
		}
	}
	if best != nil && best.Prob > 0.5 {
		return strings.TrimSpace(best.Text)
	}
	return ""
}

func rejectedAsTitle(line docline.Line, m Metrics, pageBottom float64) bool {
	for _, rule := range titleRules {
		if rule.reject(line, m, pageBottom) {
			return true
		}
	}
	return false
}
