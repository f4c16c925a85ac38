package classify

import "testing"

func TestHasNumericPrefix(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"1. Introduction", true},
		{"2.3 Methods", true},
		{"10) Results", true},
		{"4: Discussion", true},
		{"3-1 Appendix", true},
		{"1.2.3 Deep Section", true},
		{"Introduction", false},
		{"Version 2 notes", false},
		{"2024", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := HasNumericPrefix(tc.text); got != tc.want {
			t.Errorf("HasNumericPrefix(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestNumericPrefixDepth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"1. Overview", 1},
		{"2.3 Methods", 2},
		{"1.2.3 Details", 3},
		{"1.2.3.4 Very Deep", 4},
		{"no numbering", 0},
	}
	for _, tc := range cases {
		if got := NumericPrefixDepth(tc.text); got != tc.want {
			t.Errorf("NumericPrefixDepth(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestHasBulletPrefix(t *testing.T) {
	if !HasBulletPrefix("• first item") {
		t.Error("expected bullet prefix for '• first item'")
	}
	if HasBulletPrefix("plain line") {
		t.Error("unexpected bullet prefix for plain line")
	}
}

func TestIsSectionKeyword(t *testing.T) {
	if !IsSectionKeyword("education") {
		t.Error("expected 'education' to match case-insensitively")
	}
	if !IsSectionKeyword("  Work Experience  ") {
		t.Error("expected trimmed 'Work Experience' to match")
	}
	if IsSectionKeyword("Distributed Systems") {
		t.Error("did not expect 'Distributed Systems' to match")
	}
}

func TestIsAllUpper(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"INTRODUCTION", true},
		{"SECTION 2", true},
		{"Introduction", false},
		{"1234", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := isAllUpper(tc.text); got != tc.want {
			t.Errorf("isAllUpper(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
