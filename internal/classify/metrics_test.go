package classify

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/outliner-go/outliner/internal/docline"
)

func mkLine(text string, page int, size float64, bold bool, x0, y0 float64) docline.Line {
	return docline.Line{
		Text:      text,
		Page:      page,
		FontSize:  size,
		Bold:      bold,
		X0:        x0,
		Y0:        y0,
		X1:        x0 + float64(len(text))*size*0.5,
		Y1:        y0 + size,
		PageWidth: 612,
	}
}

func TestComputeMetrics_FontRanksAreContiguous(t *testing.T) {
	lines := []docline.Line{
		mkLine("body", 1, 12, false, 72, 100),
		mkLine("title", 1, 24, false, 72, 40),
		mkLine("section", 1, 18, false, 72, 70),
		mkLine("more body", 1, 12, false, 72, 120),
	}
	m := ComputeMetrics(lines)

	want := map[float64]int{24: 0, 18: 1, 12: 2}
	if !reflect.DeepEqual(m.FontRank, want) {
		t.Fatalf("font ranks = %v, want %v", m.FontRank, want)
	}
	if got := m.rankOf(99); got != 3 {
		t.Errorf("rank of unseen size = %d, want %d", got, 3)
	}
}

func TestComputeMetrics_CommonLeftMostFrequent(t *testing.T) {
	lines := []docline.Line{
		mkLine("a", 1, 12, false, 90.0, 40),
		mkLine("b", 1, 12, false, 72.04, 60),
		mkLine("c", 1, 12, false, 72.01, 80),
	}
	m := ComputeMetrics(lines)
	if m.CommonLeft != 72.0 {
		t.Errorf("common left = %v, want 72.0", m.CommonLeft)
	}
}

func TestComputeMetrics_CommonLeftTieBreaksOnFirstEncounter(t *testing.T) {
	lines := []docline.Line{
		mkLine("a", 1, 12, false, 100, 40),
		mkLine("b", 1, 12, false, 50, 60),
	}
	m := ComputeMetrics(lines)
	if m.CommonLeft != 100 {
		t.Errorf("common left = %v, want 100 (first encountered on a tie)", m.CommonLeft)
	}
}

func TestComputeMetrics_MedianGapPerPage(t *testing.T) {
	// Page 1 gaps after sorting by y0: 8 and 2 -> sorted [2, 8],
	// index len/2 = 1 -> 8. Page 2 has lines with no positive gap.
	lines := []docline.Line{
		mkLine("p1 l1", 1, 12, false, 72, 10), // y1 = 22
		mkLine("p1 l2", 1, 12, false, 72, 30), // gap 8, y1 = 42
		mkLine("p1 l3", 1, 12, false, 72, 44), // gap 2
		mkLine("p2 l1", 2, 12, false, 72, 10),
		mkLine("p2 l2", 2, 12, false, 72, 15), // overlaps, gap < 0
	}
	m := ComputeMetrics(lines)
	if got := m.MedianGap[1]; got != 8 {
		t.Errorf("page 1 median gap = %v, want 8", got)
	}
	if got := m.MedianGap[2]; got != 0 {
		t.Errorf("page 2 median gap = %v, want 0", got)
	}
}

func TestComputeMetrics_MedianGapIdempotentUnderReordering(t *testing.T) {
	lines := []docline.Line{
		mkLine("l1", 1, 12, false, 72, 10),
		mkLine("l2", 1, 12, false, 72, 40),
		mkLine("l3", 1, 12, false, 72, 80),
		mkLine("l4", 1, 12, false, 72, 130),
	}
	want := ComputeMetrics(lines).MedianGap[1]

	shuffled := make([]docline.Line, len(lines))
	copy(shuffled, lines)
	r := rand.New(rand.NewSource(1))
	for range 10 {
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if got := ComputeMetrics(shuffled).MedianGap[1]; got != want {
			t.Fatalf("median gap after shuffle = %v, want %v", got, want)
		}
	}
}

func TestComputeMetrics_EmptyInput(t *testing.T) {
	m := ComputeMetrics(nil)
	if m.LineCount != 0 || m.CommonLeft != 0 {
		t.Errorf("empty metrics = %+v, want zero values", m)
	}
	if len(m.FontRank) != 0 {
		t.Errorf("expected empty font ranks, got %v", m.FontRank)
	}
}

func TestComputeMetrics_BoldTables(t *testing.T) {
	lines := []docline.Line{
		mkLine("heading", 1, 14, true, 72, 10),
		mkLine("heading two", 1, 14, true, 72, 50),
		mkLine("body", 1, 12, false, 72, 90),
	}
	m := ComputeMetrics(lines)
	if !m.BoldSizes[14] || m.BoldSizes[12] {
		t.Errorf("bold sizes = %v, want only 14", m.BoldSizes)
	}
	if m.BoldCount != 2 {
		t.Errorf("bold count = %d, want 2", m.BoldCount)
	}
	if m.BoldSizeUsage[14] != 2 {
		t.Errorf("bold usage at 14 = %d, want 2", m.BoldSizeUsage[14])
	}
	if m.FontUsage[12] != 1 {
		t.Errorf("font usage at 12 = %d, want 1", m.FontUsage[12])
	}
}
