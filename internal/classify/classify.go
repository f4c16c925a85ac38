package classify

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/outliner-go/outliner/internal/docline"
	"github.com/outliner-go/outliner/internal/outline"
)

// Threshold tuning. The base threshold shifts with document size:
// long documents are scored more selectively, short ones more
// inclusively.
const (
	baseThreshold      = 0.3
	longDocLines       = 100
	longDocAdjustment  = 0.1
	shortDocAdjustment = -0.05
)

// Result carries the classifier output for one document.
type Result struct {
	Title   string
	Entries []outline.Entry

	// Diagnostics.
	LineCount      int
	CandidateCount int
}

// Classify runs the full heading-classification pipeline over a
// document's line records: metrics aggregation, per-line features and
// scores, threshold filtering, title selection and level assignment.
// The entries it returns are a first guess — callers pass them through
// outline.Normalize for the final structural guarantees. An empty line
// set yields an empty result, never an error.
func Classify(lines []docline.Line) Result {
	res := Result{LineCount: len(lines)}
	if len(lines) == 0 {
		return res
	}

	m := ComputeMetrics(lines)

	// Page-local neighbor context, sorted by vertical position.
	byPage := make(map[int][]docline.Line)
	for _, ln := range lines {
		byPage[ln.Page] = append(byPage[ln.Page], ln)
	}
	pages := make([]int, 0, len(byPage))
	for page, pageLines := range byPage {
		sort.SliceStable(pageLines, func(i, j int) bool { return pageLines[i].Y0 < pageLines[j].Y0 })
		byPage[page] = pageLines
		pages = append(pages, page)
	}
	sort.Ints(pages)

	threshold := baseThreshold + shortDocAdjustment
	if len(lines) > longDocLines {
		threshold = baseThreshold + longDocAdjustment
	}

	var candidates []docline.Candidate
	for _, page := range pages {
		pageLines := byPage[page]
		for i, ln := range pageLines {
			prob := Score(ExtractFeatures(ln, pageLines, i, m))
			if prob >= threshold {
				candidates = append(candidates, docline.Candidate{Line: ln, Prob: prob})
			}
		}
	}
	res.CandidateCount = len(candidates)

	title := SelectTitle(lines, m, candidates)
	res.Title = title

	filtered := filterCandidates(candidates, title)
	res.Entries = AssignLevels(filtered, m)
	return res
}

// filterCandidates drops the title line and obvious non-headings
// before level assignment: very short or very long text, and
// structural section keywords scored without strong confidence.
func filterCandidates(candidates []docline.Candidate, title string) []docline.Candidate {
	kept := make([]docline.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		text := strings.TrimSpace(cand.Text)
		if cand.Page == 1 && text == title {
			continue
		}
		n := utf8.RuneCountInString(text)
		if n < 2 || n > 200 {
			continue
		}
		if IsSectionKeyword(text) && cand.Prob < 0.7 {
			continue
		}
		kept = append(kept, cand)
	}
	return kept
}
