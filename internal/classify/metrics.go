package classify

import (
	"math"
	"sort"

	"github.com/outliner-go/outliner/internal/docline"
)

// Metrics holds document-wide statistics computed once from the full
// line set. It is built before any per-line scoring and never mutated
// afterward.
type Metrics struct {
	// FontRank maps each distinct font size to its 0-based rank among
	// all sizes in the document, largest size = rank 0.
	FontRank map[float64]int

	// CommonLeft is the most frequent rounded x0 across all lines,
	// i.e. the dominant body-text indent.
	CommonLeft float64

	// MedianGap maps page number to the lower median of positive
	// vertical gaps between consecutive lines on that page.
	MedianGap map[int]float64

	// BoldSizes is the set of font sizes that appear in bold.
	BoldSizes map[float64]bool

	// FontUsage counts lines per font size.
	FontUsage map[float64]int

	// BoldSizeUsage counts bold lines per font size.
	BoldSizeUsage map[float64]int

	// IndentLevels is the sorted set of distinct rounded x0 values.
	IndentLevels []float64

	// LineCount and BoldCount are document totals.
	LineCount int
	BoldCount int
}

// rankOf returns the rank for a font size. Sizes absent from the map
// get rank len(FontRank), below every real rank.
func (m Metrics) rankOf(size float64) int {
	if r, ok := m.FontRank[size]; ok {
		return r
	}
	return len(m.FontRank)
}

// ComputeMetrics aggregates document-wide statistics from the full
// ordered line set. An empty input yields empty maps and a zero
// margin, never an error.
func ComputeMetrics(lines []docline.Line) Metrics {
	m := Metrics{
		FontRank:      make(map[float64]int),
		MedianGap:     make(map[int]float64),
		BoldSizes:     make(map[float64]bool),
		FontUsage:     make(map[float64]int),
		BoldSizeUsage: make(map[float64]int),
		LineCount:     len(lines),
	}
	if len(lines) == 0 {
		return m
	}

	// Font ranking, largest size first.
	sizes := make([]float64, 0, 8)
	for _, ln := range lines {
		if _, ok := m.FontRank[ln.FontSize]; !ok {
			m.FontRank[ln.FontSize] = 0
			sizes = append(sizes, ln.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	for i, sz := range sizes {
		m.FontRank[sz] = i
	}

	// Dominant left margin: most frequent x0 rounded to one decimal,
	// ties broken by first encounter.
	leftCounts := make(map[float64]int)
	var leftOrder []float64
	for _, ln := range lines {
		x := roundTenth(ln.X0)
		if leftCounts[x] == 0 {
			leftOrder = append(leftOrder, x)
		}
		leftCounts[x]++
	}
	best := leftOrder[0]
	for _, x := range leftOrder {
		if leftCounts[x] > leftCounts[best] {
			best = x
		}
	}
	m.CommonLeft = best

	sort.Float64s(leftOrder)
	m.IndentLevels = leftOrder

	// Per-page lower median of positive inter-line gaps.
	byPage := make(map[int][]docline.Line)
	for _, ln := range lines {
		byPage[ln.Page] = append(byPage[ln.Page], ln)
	}
	for page, pageLines := range byPage {
		sort.SliceStable(pageLines, func(i, j int) bool { return pageLines[i].Y0 < pageLines[j].Y0 })
		var gaps []float64
		for i := 0; i+1 < len(pageLines); i++ {
			gap := pageLines[i+1].Y0 - pageLines[i].Y1
			if gap > 0 {
				gaps = append(gaps, gap)
			}
		}
		if len(gaps) == 0 {
			m.MedianGap[page] = 0
			continue
		}
		sort.Float64s(gaps)
		m.MedianGap[page] = gaps[len(gaps)/2]
	}

	// Formatting consistency tables.
	for _, ln := range lines {
		m.FontUsage[ln.FontSize]++
		if ln.Bold {
			m.BoldSizes[ln.FontSize] = true
			m.BoldSizeUsage[ln.FontSize]++
			m.BoldCount++
		}
	}

	return m
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
