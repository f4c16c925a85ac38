package parser

import "testing"

func TestIsNoise(t *testing.T) {
	cases := []struct {
		text string
		size float64
		want bool
	}{
		{"1. Background", 12, false},
		{"Introduction", 12, false},
		{"42", 10, true},          // standalone page number
		{"xiv", 9, true},          // roman-numeral folio
		{"www.example.com", 9, true},
		{"info@example.com", 9, true},
		{"***", 12, true},
		{"x", 12, true},           // too short
		{"Normal heading", 4, true},  // below size gate
		{"Normal heading", 80, true}, // above size gate
		{"| | | 1 2 3 -- -- -- 4 5 6 7", 10, true}, // mostly non-letters
	}
	for _, tc := range cases {
		if got := isNoise(tc.text, tc.size); got != tc.want {
			t.Errorf("isNoise(%q, %v) = %v, want %v", tc.text, tc.size, got, tc.want)
		}
	}
}

func TestIsNoise_KeepsNumberedHeadings(t *testing.T) {
	// A bare "7" is a folio, but "7. Conclusions" is content.
	if isNoise("7. Conclusions", 12) {
		t.Error("numbered heading flagged as noise")
	}
	if !isNoise("7", 12) {
		t.Error("bare page number kept")
	}
}

func TestNormalizeRepeat_FoldsDigits(t *testing.T) {
	a := normalizeRepeat("Page 3")
	b := normalizeRepeat("page 17")
	if a != b {
		t.Errorf("normalized forms differ: %q vs %q", a, b)
	}
	if a != "page #" {
		t.Errorf("normalized = %q, want %q", a, "page #")
	}
}

func TestCleanText_RemovesControlCharacters(t *testing.T) {
	if got := cleanText("Hel\x00lo   world\x1F"); got != "Hello world" {
		t.Errorf("cleaned = %q, want %q", got, "Hello world")
	}
}

func TestIsBoldFont(t *testing.T) {
	for _, font := range []string{"Helvetica-Bold", "ArialBlack", "SomeHeavyFont"} {
		if !isBoldFont(font) {
			t.Errorf("%q not detected as bold", font)
		}
	}
	if isBoldFont("Times-Roman") {
		t.Error("Times-Roman detected as bold")
	}
}
