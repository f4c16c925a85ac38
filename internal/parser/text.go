package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/outliner-go/outliner/internal/docline"
)

// TextParser handles plain text files. Paragraphs are split on blank
// lines and laid out on synthetic pages at body size; the classifier
// falls back on capitalization and spacing cues for such documents.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]docline.Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	l := newLayout()
	for _, para := range paragraphs {
		l.emitBody(para)
	}
	return l.result(), nil
}
