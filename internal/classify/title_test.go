package classify

import (
	"testing"

	"github.com/outliner-go/outliner/internal/docline"
)

func TestSelectTitle_LargestAcceptableLineWins(t *testing.T) {
	lines := []docline.Line{
		mkLine("Annual Research Report", 1, 24, true, 150, 40),
		mkLine("1. Background", 1, 14, true, 72, 120),
		mkLine("plain body text for the report", 1, 12, false, 72, 160),
		mkLine("more body text near the bottom of the page", 1, 12, false, 72, 600),
	}
	m := ComputeMetrics(lines)

	got := SelectTitle(lines, m, nil)
	if got != "Annual Research Report" {
		t.Fatalf("title = %q, want %q", got, "Annual Research Report")
	}
}

func TestSelectTitle_RejectsSectionKeywordAndNumbered(t *testing.T) {
	// The two largest lines are disqualified: one is a structural
	// section keyword, one is numbered. The next acceptable line wins.
	lines := []docline.Line{
		mkLine("EXPERIENCE", 1, 24, true, 72, 40),
		mkLine("1. Summary of Work", 1, 20, true, 72, 90),
		mkLine("Jane Doe Resume", 1, 18, false, 72, 140),
		mkLine("body text follows here", 1, 12, false, 72, 600),
	}
	m := ComputeMetrics(lines)

	got := SelectTitle(lines, m, nil)
	if got != "Jane Doe Resume" {
		t.Fatalf("title = %q, want %q", got, "Jane Doe Resume")
	}
}

func TestSelectTitle_RejectsLowerHalfOfPage(t *testing.T) {
	lines := []docline.Line{
		mkLine("some body filler", 1, 12, false, 72, 40),
		mkLine("Closing Remarks Heading", 1, 24, true, 72, 700),
	}
	m := ComputeMetrics(lines)

	if got := SelectTitle(lines, m, nil); got == "Closing Remarks Heading" {
		t.Fatalf("title %q picked from the lower half of the page", got)
	}
}

func TestSelectTitle_FallbackToConfidentCandidate(t *testing.T) {
	// Single-word lines fail the word-count rule in the primary pass,
	// so the confident page-1 candidate is used.
	lines := []docline.Line{
		mkLine("Overview", 1, 24, true, 72, 40),
		mkLine("body", 1, 12, false, 72, 600),
	}
	m := ComputeMetrics(lines)

	candidates := []docline.Candidate{
		{Line: lines[0], Prob: 0.8},
	}
	if got := SelectTitle(lines, m, candidates); got != "Overview" {
		t.Fatalf("fallback title = %q, want %q", got, "Overview")
	}
}

func TestSelectTitle_WeakCandidateYieldsEmpty(t *testing.T) {
	lines := []docline.Line{
		mkLine("Overview", 1, 24, true, 72, 40),
	}
	m := ComputeMetrics(lines)

	candidates := []docline.Candidate{
		{Line: lines[0], Prob: 0.4},
	}
	if got := SelectTitle(lines, m, candidates); got != "" {
		t.Fatalf("title = %q, want empty for weak fallback candidate", got)
	}
}

func TestSelectTitle_NoPage1Lines(t *testing.T) {
	lines := []docline.Line{
		mkLine("Second Page Heading", 2, 24, true, 72, 40),
	}
	m := ComputeMetrics(lines)

	if got := SelectTitle(lines, m, nil); got != "" {
		t.Fatalf("title = %q, want empty when page 1 has no lines", got)
	}
}
