package text

import "testing"

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		fill  rune
		width int
		want  string
	}{
		{"A", ' ', 4, " A  "},
		{"AB", ' ', 4, " AB "},
		{"ABCDE", ' ', 4, "ABCDE"},
		{"ABCD", ' ', 4, "ABCD"},
		{"7", '.', 3, ".7."},
		{"", '-', 3, "---"},
	}

	for _, tt := range tests {
		if got := Center(tt.in, tt.fill, tt.width); got != tt.want {
			t.Errorf("Center(%q, %q, %d) = %q, want %q", tt.in, tt.fill, tt.width, got, tt.want)
		}
	}
}

func TestLeft(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"3", 4, "3   "},
		{"10", 3, "10 "},
		{"100", 3, "100"},
		{"1000", 3, "1000"},
	}

	for _, tt := range tests {
		if got := Left(tt.in, ' ', tt.width); got != tt.want {
			t.Errorf("Left(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestVisibleLen(t *testing.T) {
	colored := "\x1b[1m\x1b[42m\x1b[30m S \x1b[0m"
	if got := StripANSI(colored); got != " S " {
		t.Errorf("StripANSI = %q", got)
	}
	if got := VisibleLen(colored); got != 3 {
		t.Errorf("VisibleLen = %d, want 3", got)
	}
}
