package render

import (
	"strconv"

	"github.com/drake/insectboard/board"
)

// minDigits is the narrowest content a cell is laid out for.
const minDigits = 2

// LetterSize returns the cell width for a board: wide enough for every row index,
// column index and food value, plus one column of padding.
func LetterSize(snap board.Snapshot, size board.Size) int {
	widest := max(minDigits, digits(int(size)))

	for _, e := range snap {
		if e.Type != board.EntityFood {
			continue
		}
		widest = max(widest, digits(e.Value))
	}

	return widest + 1
}

// digits is the length of the decimal representation of n, sign included.
func digits(n int) int {
	return len(strconv.Itoa(n))
}
