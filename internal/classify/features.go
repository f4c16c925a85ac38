package classify

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/outliner-go/outliner/internal/docline"
)

// FeatureVector is the fixed 14-dimensional per-line feature set
// consumed by the heading scorer. Indexes are stable; see the named
// constants below.
type FeatureVector [featureCount]float64

// Feature indexes.
const (
	featFontRank = iota
	featBold
	featCapsRatio
	featNumericPrefix
	featEndsColon
	featCentered
	featLeftIndent
	featTopSpacing
	featIsPage1
	featTooLong
	featTextLen
	featWhitespaceAfter
	featIsolation
	featConsistency

	featureCount
)

// tooLongChars is the trimmed length beyond which a line is considered
// too long to be a heading.
const tooLongChars = 150

// ExtractFeatures computes the feature vector for the line at pageIdx
// within pageLines, the y0-sorted lines of its page. The result is a
// pure function of the line, its page neighbors and the document
// metrics; no hidden state.
func ExtractFeatures(line docline.Line, pageLines []docline.Line, pageIdx int, m Metrics) FeatureVector {
	var f FeatureVector

	text := strings.TrimSpace(line.Text)
	textLen := utf8.RuneCountInString(text)

	f[featFontRank] = float64(m.rankOf(line.FontSize))
	if line.Bold {
		f[featBold] = 1
	}
	if textLen > 0 {
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		f[featCapsRatio] = float64(upper) / float64(textLen)
	}
	if HasNumericPrefix(text) {
		f[featNumericPrefix] = 1
	}
	if strings.HasSuffix(text, ":") {
		f[featEndsColon] = 1
	}

	// A line sitting on the common left margin is left-aligned even
	// when it is wide enough to straddle the page center.
	if line.PageWidth > 0 && line.X0-m.CommonLeft > 2 {
		lineCenter := (line.X0 + line.X1) / 2
		pageCenter := line.PageWidth / 2
		if math.Abs(lineCenter-pageCenter) < line.PageWidth*0.15 {
			f[featCentered] = 1
		}
	}
	f[featLeftIndent] = clamp01((line.X0 - m.CommonLeft) / 100)

	medianGap := m.MedianGap[line.Page]
	f[featTopSpacing] = gapAbove(line, pageLines, pageIdx, medianGap)
	f[featWhitespaceAfter] = gapBelow(line, pageLines, pageIdx, medianGap)
	f[featIsolation] = clamp01((f[featTopSpacing] + f[featWhitespaceAfter]) / 2)

	if line.Page == 1 {
		f[featIsPage1] = 1
	}
	if textLen > tooLongChars {
		f[featTooLong] = 1
	}
	f[featTextLen] = float64(textLen)

	f[featConsistency] = consistency(line, m)

	return f
}

// gapAbove normalizes the vertical gap between this line and the one
// above it against the page's median gap. The first line on a page
// scores 1.
func gapAbove(line docline.Line, pageLines []docline.Line, pageIdx int, medianGap float64) float64 {
	if pageIdx <= 0 {
		return 1
	}
	if medianGap <= 0 {
		return 0
	}
	gap := line.Y0 - pageLines[pageIdx-1].Y1
	return clamp01((gap - medianGap) / medianGap)
}

// gapBelow is symmetric to gapAbove for the line below. The last line
// on a page scores 1.
func gapBelow(line docline.Line, pageLines []docline.Line, pageIdx int, medianGap float64) float64 {
	if pageIdx < 0 || pageIdx >= len(pageLines)-1 {
		return 1
	}
	if medianGap <= 0 {
		return 0
	}
	gap := pageLines[pageIdx+1].Y0 - line.Y1
	return clamp01((gap - medianGap) / medianGap)
}

// consistency measures how typical this line's formatting is. Bold
// lines at a known bold size score the share of bold lines using that
// exact size; everything else scores the global share of lines at
// this font size.
func consistency(line docline.Line, m Metrics) float64 {
	if line.Bold && m.BoldSizes[line.FontSize] {
		total := m.BoldCount
		if total < 1 {
			total = 1
		}
		return float64(m.BoldSizeUsage[line.FontSize]) / float64(total)
	}
	if m.LineCount == 0 {
		return 0
	}
	return float64(m.FontUsage[line.FontSize]) / float64(m.LineCount)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
