package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Center places s in the middle of a field of the given width, padded with fill.
// The odd filler goes on the right. Text already at least width wide is returned unchanged.
func Center(s string, fill rune, width int) string {
	n := runewidth.StringWidth(s)
	if n >= width {
		return s
	}

	left := (width - n) / 2
	right := width - n - left

	var sb strings.Builder
	sb.Grow(len(s) + left + right)
	sb.WriteString(strings.Repeat(string(fill), left))
	sb.WriteString(s)
	sb.WriteString(strings.Repeat(string(fill), right))
	return sb.String()
}

// Left pads s on the right with fill up to width.
// Text already at least width wide is returned unchanged.
func Left(s string, fill rune, width int) string {
	n := runewidth.StringWidth(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(fill), width-n)
}
