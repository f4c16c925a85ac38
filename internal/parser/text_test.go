package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SplitsParagraphsOnBlankLines(t *testing.T) {
	input := "First paragraph line one.\nLine two.\n\nSecond paragraph.\n\n\nThird paragraph."
	p := &TextParser{}

	lines, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}

	if lines[0].Text != "First paragraph line one." {
		t.Errorf("first line = %q", lines[0].Text)
	}
	if lines[3].Text != "Third paragraph." {
		t.Errorf("last line = %q", lines[3].Text)
	}

	// Paragraph boundaries leave a larger vertical gap than line
	// advance within a paragraph.
	intra := lines[1].Y0 - lines[0].Y1
	inter := lines[2].Y0 - lines[1].Y1
	if inter <= intra {
		t.Errorf("paragraph gap %v not above intra-paragraph gap %v", inter, intra)
	}
}

func TestTextParser_AllBodySize(t *testing.T) {
	p := &TextParser{}
	lines, err := p.Parse(strings.NewReader("only one line"), "a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].FontSize != synthBodySize || lines[0].Bold {
		t.Fatalf("lines = %+v, want one plain body line", lines)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	lines, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("lines = %+v, want none", lines)
	}
}
