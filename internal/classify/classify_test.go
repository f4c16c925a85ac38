package classify

import (
	"testing"

	"github.com/outliner-go/outliner/internal/docline"
	"github.com/outliner-go/outliner/internal/outline"
)

// twoPageReport builds a small report with a distinct title line, an
// all-caps section, and a numbered section with one subsection.
func twoPageReport() []docline.Line {
	return []docline.Line{
		// Page 1.
		mkLine("Annual Research Report", 1, 20, true, 150, 40),
		mkLine("INTRODUCTION", 1, 16, true, 72, 100),
		mkLine("This report covers the activities of the laboratory.", 1, 12, false, 72, 140),
		mkLine("Work continued through the year.", 1, 12, false, 72, 156),
		mkLine("Funding remained stable across all departments and programs this year.", 1, 12, false, 72, 172),
		// Page 2.
		mkLine("1. Background", 2, 14, true, 72, 40),
		mkLine("The project started three years ago.", 2, 12, false, 72, 80),
		mkLine("Earlier phases established the baseline.", 2, 12, false, 72, 96),
		mkLine("1.1 Details", 2, 14, true, 72, 140),
		mkLine("Data was collected monthly.", 2, 12, false, 72, 180),
		mkLine("The committee will reconvene next quarter to review progress in detail.", 2, 12, false, 72, 196),
	}
}

func TestClassify_TwoPageReport(t *testing.T) {
	res := Classify(twoPageReport())

	if res.Title != "Annual Research Report" {
		t.Fatalf("title = %q, want %q", res.Title, "Annual Research Report")
	}

	want := []outline.Entry{
		{Level: "H1", Text: "INTRODUCTION", Page: 1},
		{Level: "H1", Text: "1. Background", Page: 2},
		{Level: "H2", Text: "1.1 Details", Page: 2},
	}
	if len(res.Entries) != len(want) {
		t.Fatalf("entries = %+v, want %+v", res.Entries, want)
	}
	for i := range want {
		if res.Entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, res.Entries[i], want[i])
		}
	}

	if res.LineCount != 11 {
		t.Errorf("line count = %d, want 11", res.LineCount)
	}
	if res.CandidateCount < 3 {
		t.Errorf("candidate count = %d, want at least 3", res.CandidateCount)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	res := Classify(nil)
	if res.Title != "" || len(res.Entries) != 0 || res.LineCount != 0 {
		t.Fatalf("empty input result = %+v, want zero result", res)
	}
}

func TestClassify_TitleLineExcludedFromOutline(t *testing.T) {
	res := Classify(twoPageReport())
	for _, e := range res.Entries {
		if e.Text == res.Title {
			t.Fatalf("title %q leaked into the outline", res.Title)
		}
	}
}

func TestFilterCandidates_DropsTitleAndExtremes(t *testing.T) {
	title := "Annual Research Report"
	candidates := []docline.Candidate{
		{Line: mkLine(title, 1, 20, true, 72, 40), Prob: 0.9},
		{Line: mkLine("x", 1, 14, true, 72, 80), Prob: 0.6},
		{Line: mkLine("Valid Heading", 1, 14, true, 72, 120), Prob: 0.6},
	}
	kept := filterCandidates(candidates, title)
	if len(kept) != 1 || kept[0].Text != "Valid Heading" {
		t.Fatalf("kept = %+v, want only %q", kept, "Valid Heading")
	}
}

func TestFilterCandidates_WeakSectionKeywordDropped(t *testing.T) {
	candidates := []docline.Candidate{
		{Line: mkLine("EDUCATION", 2, 14, true, 72, 40), Prob: 0.5},
		{Line: mkLine("EXPERIENCE", 2, 14, true, 72, 80), Prob: 0.8},
	}
	kept := filterCandidates(candidates, "")
	if len(kept) != 1 || kept[0].Text != "EXPERIENCE" {
		t.Fatalf("kept = %+v, want only the confident keyword", kept)
	}
}
