package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/outliner-go/outliner/internal/docline"
)

// Synthetic page geometry for formats that carry no physical layout
// (markdown, HTML, DOCX, plain text). Dimensions follow US Letter at
// 72 dpi so the downstream spacing and centering heuristics behave
// the same as for real PDF pages.
const (
	synthPageWidth  = 612.0
	synthPageHeight = 792.0
	synthMargin     = 72.0
	synthBodySize   = 11.0

	// Extra vertical gap inserted above headings and between
	// paragraphs, relative to normal line advance.
	synthParaGap    = 6.0
	synthHeadingGap = 16.0
)

// headingSize maps a structural heading level (1-6) to a synthetic
// font size, monotonically decreasing toward body size.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 18
	case 3:
		return 14
	case 4:
		return 13
	case 5:
		return 12.5
	default:
		return 12
	}
}

// layout accumulates synthetic line records with a moving vertical
// cursor, breaking to a new page when the cursor passes the bottom
// margin.
type layout struct {
	page  int
	y     float64
	lines []docline.Line
}

func newLayout() *layout {
	return &layout{page: 1, y: synthMargin}
}

// emit appends one line record at the current cursor and advances it.
func (l *layout) emit(text string, size float64, bold bool, gapBefore float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	height := size * 1.2
	l.y += gapBefore
	if l.y+height > synthPageHeight-synthMargin {
		l.page++
		l.y = synthMargin
	}

	width := float64(utf8.RuneCountInString(text)) * size * 0.5
	if width > synthPageWidth-2*synthMargin {
		width = synthPageWidth - 2*synthMargin
	}

	l.lines = append(l.lines, docline.Line{
		Text:      text,
		Page:      l.page,
		FontSize:  size,
		Bold:      bold,
		X0:        synthMargin,
		Y0:        l.y,
		X1:        synthMargin + width,
		Y1:        l.y + height,
		PageWidth: synthPageWidth,
	})
	l.y += height
}

// emitHeading places a heading line with extra space above it.
func (l *layout) emitHeading(level int, text string) {
	l.emit(text, headingSize(level), true, synthHeadingGap)
}

// emitBody places paragraph text, one record per paragraph line.
func (l *layout) emitBody(text string) {
	first := true
	for _, part := range strings.Split(text, "\n") {
		gap := 0.0
		if first {
			gap = synthParaGap
			first = false
		}
		l.emit(part, synthBodySize, false, gap)
	}
}

func (l *layout) result() []docline.Line {
	return l.lines
}
