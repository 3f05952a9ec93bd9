package render

import "github.com/drake/insectboard/board"

// ANSI escape sequences used for insect cells.
const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiFgBlack = "\x1b[30m"

	ansiBgRed    = "\x1b[41m"
	ansiBgGreen  = "\x1b[42m"
	ansiBgYellow = "\x1b[43m"
	ansiBgBlue   = "\x1b[44m"
)

// backgrounds maps insect colors to their cell background.
var backgrounds = map[board.Color]string{
	board.ColorRed:   ansiBgRed,
	board.ColorGreen: ansiBgGreen,
	board.ColorBlue:  ansiBgBlue,
}

// glyphs maps insect kinds to the letter drawn in their cell.
var glyphs = map[board.Kind]string{
	board.KindAnt:         "A",
	board.KindButterfly:   "B",
	board.KindSpider:      "S",
	board.KindGrasshopper: "G",
}

// Background returns the background escape for c.
// Colors without a dedicated style get yellow.
func Background(c board.Color) string {
	if bg, ok := backgrounds[c]; ok {
		return bg
	}
	return ansiBgYellow
}

// Glyph returns the letter for k, or "?" for kinds with no letter.
func Glyph(k board.Kind) string {
	if g, ok := glyphs[k]; ok {
		return g
	}
	return "?"
}
