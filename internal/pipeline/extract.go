package pipeline

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/outliner-go/outliner/internal/classify"
	"github.com/outliner-go/outliner/internal/docline"
	"github.com/outliner-go/outliner/internal/outline"
	"github.com/outliner-go/outliner/internal/parser"
)

// Options configures document extraction.
type Options struct {
	MaxPages          int
	FallbackPdftotext bool
}

// ParseLines selects a parser for the filename and produces the
// document's line records.
func ParseLines(data []byte, filename string, opts Options) ([]docline.Line, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.MaxPages = opts.MaxPages
		pp.FallbackPdftotext = opts.FallbackPdftotext
	}
	lines, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return lines, nil
}

// Extract runs the full pipeline for one document: parse, classify,
// resolve the title, normalize. A document yielding no lines produces
// an empty outline with a filename-derived title, not an error.
func Extract(data []byte, filename string, opts Options) (outline.Document, classify.Result, error) {
	lines, err := ParseLines(data, filename, opts)
	if err != nil {
		return outline.Document{}, classify.Result{}, err
	}

	res := classify.Classify(lines)
	title := ResolveTitle(res.Title, lines, filename, data)
	doc := outline.NewDocument(title, res.Entries)
	return doc, res, nil
}

// ResolveTitle applies the driver-level fallback chain when the
// classifier's title is empty or implausibly short: scan page-1 lines
// largest-first, then an HTML <title> when the source is HTML, then
// derive from the filename.
func ResolveTitle(heuristic string, lines []docline.Line, filename string, data []byte) string {
	title := strings.TrimSpace(heuristic)
	if len(title) >= 3 {
		return title
	}

	if title = fallbackTitle(lines); title != "" {
		return title
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".html" || ext == ".htm" {
		if title = strings.TrimSpace(parser.DocumentTitle(bytes.NewReader(data))); title != "" {
			return title
		}
	}

	return TitleFromFilename(filename)
}

// nonTitleWords are substrings that mark a page-1 line as structural
// rather than a plausible document title.
var nonTitleWords = []string{
	"page", "chapter", "section", "table of contents",
	"abstract", "summary", "introduction",
}

// fallbackTitle scans page-1 lines, largest font first, for a line
// that reads like a title. Returns "" when page 1 offers nothing.
func fallbackTitle(lines []docline.Line) string {
	var page1 []docline.Line
	for _, ln := range lines {
		if ln.Page == 1 {
			page1 = append(page1, ln)
		}
	}
	if len(page1) == 0 {
		return ""
	}

	sort.SliceStable(page1, func(i, j int) bool {
		if page1[i].FontSize != page1[j].FontSize {
			return page1[i].FontSize > page1[j].FontSize
		}
		return page1[i].Y0 < page1[j].Y0
	})

	for _, ln := range page1 {
		text := strings.TrimSpace(ln.Text)
		words := len(strings.Fields(text))
		if words < 2 || words > 12 {
			continue
		}
		if classify.HasNumericPrefix(text) {
			continue
		}
		if containsNonTitleWord(text) {
			continue
		}
		if mostlySymbolic(text) {
			continue
		}
		return text
	}

	// Nothing plausible; use the largest-font line verbatim.
	return strings.TrimSpace(page1[0].Text)
}

func containsNonTitleWord(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range nonTitleWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// mostlySymbolic reports whether more than 30% of the text is neither
// letters nor spaces.
func mostlySymbolic(text string) bool {
	other := 0
	total := 0
	for _, r := range text {
		total++
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			other++
		}
	}
	return total > 0 && float64(other) > float64(total)*0.3
}

// TitleFromFilename derives a human-readable title from a file name:
// extension stripped, separators spaced, words title-cased.
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")

	words := strings.Fields(base)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
