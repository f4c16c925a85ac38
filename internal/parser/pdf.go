package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"unicode"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/outliner-go/outliner/internal/docline"
)

// Extraction thresholds.
const (
	headerBand   = 0.08 // top 8% of the page
	footerBand   = 0.90 // bottom 10% of the page
	repeatShare  = 0.50 // text seen on >50% of pages is a header/footer
	minFontSize  = 6    // smaller text is likely footnotes
	maxFontSize  = 72   // larger text is likely graphics
	defaultPages = 50
)

// PDFParser extracts positioned line records from PDF text content.
// It merges glyph runs into visual lines, filters noise and repeating
// headers/footers, and can fall back to pdftotext for documents the
// Go library cannot read.
type PDFParser struct {
	// MaxPages caps how many pages are processed; 0 means the default.
	MaxPages int
	// FallbackPdftotext enables the external pdftotext fallback.
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) ([]docline.Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	lines, err := p.extractPositioned(data)
	if err != nil && p.FallbackPdftotext {
		return extractPdftotext(data)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return lines, nil
}

func (p *PDFParser) extractPositioned(data []byte) ([]docline.Line, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = defaultPages
	}
	numPages := reader.NumPage()
	if numPages > maxPages {
		numPages = maxPages
	}

	var all []docline.Line
	repeatCounts := make(map[string]int)
	processedPages := 0

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		processedPages++

		pageWidth, pageHeight := pageSize(page)
		for _, line := range mergeRows(page.Content().Text, i, pageWidth, pageHeight) {
			all = append(all, line)

			// Track candidate headers/footers by vertical band.
			rel := line.Y0 / pageHeight
			if rel < headerBand || rel > footerBand {
				repeatCounts[normalizeRepeat(line.Text)]++
			}
		}
	}

	if processedPages == 0 {
		return nil, nil
	}

	// Suppress text repeating across enough pages.
	repeated := make(map[string]bool)
	for text, count := range repeatCounts {
		if text != "" && float64(count) >= float64(processedPages)*repeatShare && count > 1 {
			repeated[text] = true
		}
	}

	filtered := all[:0]
	for _, line := range all {
		if repeated[normalizeRepeat(line.Text)] {
			continue
		}
		if standalonePageNumRe.MatchString(strings.TrimSpace(line.Text)) {
			continue
		}
		filtered = append(filtered, line)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Page != filtered[j].Page {
			return filtered[i].Page < filtered[j].Page
		}
		return filtered[i].Y0 < filtered[j].Y0
	})
	return filtered, nil
}

// mergeRows groups glyph runs sharing a baseline into visual lines
// with top-origin coordinates.
func mergeRows(texts []pdflib.Text, pageNum int, pageWidth, pageHeight float64) []docline.Line {
	var usable []pdflib.Text
	for _, t := range texts {
		if t.FontSize < minFontSize || t.FontSize > maxFontSize {
			continue
		}
		if t.S == "" {
			continue
		}
		usable = append(usable, t)
	}
	if len(usable) == 0 {
		return nil
	}

	// Top of page first (PDF y grows upward), left to right.
	sort.SliceStable(usable, func(i, j int) bool {
		if usable[i].Y != usable[j].Y {
			return usable[i].Y > usable[j].Y
		}
		return usable[i].X < usable[j].X
	})

	var lines []docline.Line
	var group []pdflib.Text
	flush := func() {
		if len(group) == 0 {
			return
		}
		if line, ok := buildLine(group, pageNum, pageWidth, pageHeight); ok {
			lines = append(lines, line)
		}
		group = nil
	}

	baseline := usable[0].Y
	for _, t := range usable {
		if absf(t.Y-baseline) > 2 {
			flush()
			baseline = t.Y
		}
		group = append(group, t)
	}
	flush()
	return lines
}

// buildLine merges one baseline group into a line record, inserting
// spaces at word gaps. Returns false for noise lines.
func buildLine(group []pdflib.Text, pageNum int, pageWidth, pageHeight float64) (docline.Line, bool) {
	sort.SliceStable(group, func(i, j int) bool { return group[i].X < group[j].X })

	var sb strings.Builder
	var maxSize float64
	bold := false
	x0 := group[0].X
	x1 := group[0].X + group[0].W
	baseline := group[0].Y

	prevEnd := group[0].X
	for i, t := range group {
		if i > 0 && t.X-prevEnd > t.FontSize*0.3 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W
		if prevEnd > x1 {
			x1 = prevEnd
		}
		if t.FontSize > maxSize {
			maxSize = t.FontSize
		}
		if isBoldFont(t.Font) {
			bold = true
		}
	}

	text := cleanText(sb.String())
	if text == "" || isNoise(text, maxSize) {
		return docline.Line{}, false
	}

	// Convert the baseline to top-origin coordinates; approximate the
	// line box by one font size of ascent above the baseline.
	y1 := pageHeight - baseline
	y0 := y1 - maxSize
	if y0 < 0 {
		y0 = 0
	}

	return docline.Line{
		Text:      text,
		Page:      pageNum,
		FontSize:  maxSize,
		Bold:      bold,
		X0:        x0,
		Y0:        y0,
		X1:        x1,
		Y1:        y1,
		PageWidth: pageWidth,
	}, true
}

// pageSize reads the MediaBox, walking up to parent nodes for
// inherited values. Falls back to US Letter.
func pageSize(page pdflib.Page) (w, h float64) {
	v := page.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); mb.Kind() == pdflib.Array && mb.Len() == 4 {
			w = mb.Index(2).Float64() - mb.Index(0).Float64()
			h = mb.Index(3).Float64() - mb.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return 612, 792
}

func isBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") || strings.Contains(f, "black") || strings.Contains(f, "heavy")
}

var (
	controlCharRe       = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	standalonePageNumRe = regexp.MustCompile(`^\d{1,4}$`)
	symbolsOnlyRe       = regexp.MustCompile(`^[^\w\s]*$`)
	urlPrefixRe         = regexp.MustCompile(`^www\.`)
	emailRe             = regexp.MustCompile(`@.*\.[a-z]{2,}`)
	romanNumeralOnlyRe  = regexp.MustCompile(`^[IVXLCDMivxlcdm]+$`)
)

// cleanText collapses whitespace and strips control characters.
func cleanText(text string) string {
	text = controlCharRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// isNoise flags text unlikely to be document content: bare numbers,
// symbol runs, URLs, email addresses, roman-numeral folios, and long
// runs with almost no letters.
func isNoise(text string, fontSize float64) bool {
	text = strings.TrimSpace(text)
	if len(text) < 2 {
		return true
	}
	if fontSize < minFontSize || fontSize > maxFontSize {
		return true
	}

	letters := 0
	total := 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total > 20 && float64(letters)/float64(total) < 0.3 {
		return true
	}

	switch {
	case standalonePageNumRe.MatchString(text),
		symbolsOnlyRe.MatchString(text),
		urlPrefixRe.MatchString(text),
		emailRe.MatchString(text),
		romanNumeralOnlyRe.MatchString(text):
		return true
	}
	return false
}

// normalizeRepeat folds digits so "Page 3" and "Page 17" compare
// equal when detecting repeating headers/footers.
var digitsRe = regexp.MustCompile(`\d+`)

func normalizeRepeat(text string) string {
	return digitsRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "#")
}

// extractPdftotext shells out to pdftotext and lays the plain text
// out on synthetic pages. Positions are approximate; classification
// quality degrades gracefully.
func extractPdftotext(data []byte) ([]docline.Line, error) {
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command("pdftotext", "-layout", tmpPath, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	l := newLayout()
	for _, pageText := range strings.Split(string(out), "\f") {
		for _, para := range strings.Split(pageText, "\n\n") {
			l.emitBody(strings.TrimSpace(para))
		}
	}
	return l.result(), nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
