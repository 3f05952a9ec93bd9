// Package render draws board snapshots as ASCII grids with ANSI-colored insects.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/drake/insectboard/board"
	"github.com/drake/insectboard/text"
)

// ErrInvalidSize is returned when asked to render a board smaller than 1×1.
var ErrInvalidSize = errors.New("render: board size must be at least 1")

// Options control how a board is drawn.
type Options struct {
	// Plain drops all escape sequences; insects are drawn as bare glyphs.
	Plain bool
}

// Renderer draws snapshots. The zero value renders with colors.
type Renderer struct {
	opts Options
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render writes snap as a size×size grid to w using the default options.
func Render(w io.Writer, snap board.Snapshot, size board.Size) error {
	var r Renderer
	return r.Render(w, snap, size)
}

// Render writes snap as a size×size grid to w.
func (r *Renderer) Render(w io.Writer, snap board.Snapshot, size board.Size) error {
	frame, err := r.String(snap, size)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, frame)
	return err
}

// String returns the rendered grid.
func (r *Renderer) String(snap board.Snapshot, size board.Size) (string, error) {
	if !size.Valid() {
		return "", ErrInvalidSize
	}

	n := int(size)
	cell := LetterSize(snap, size)

	var sb strings.Builder
	writeHeader(&sb, n, cell)

	rule := strings.Repeat(strings.Repeat("-", cell)+"+", n) + strings.Repeat("-", cell) + "\n"

	for y := 1; y <= n; y++ {
		sb.WriteString(rule)
		sb.WriteString(text.Left(strconv.Itoa(y), ' ', cell))
		sb.WriteByte('|')

		for x := 1; x <= n; x++ {
			r.writeCell(&sb, snap, x, y, cell)
			if x != n {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// writeHeader writes the column index line: "   |1  |2  |...|n  ".
func writeHeader(sb *strings.Builder, n, cell int) {
	sb.WriteString(strings.Repeat(" ", cell))
	sb.WriteByte('|')
	for x := 1; x <= n; x++ {
		sb.WriteString(text.Left(strconv.Itoa(x), ' ', cell))
		if x != n {
			sb.WriteByte('|')
		}
	}
	sb.WriteByte('\n')
}

func (r *Renderer) writeCell(sb *strings.Builder, snap board.Snapshot, x, y, cell int) {
	e, ok := snap.At(x, y)
	if !ok {
		sb.WriteString(strings.Repeat(" ", cell))
		return
	}

	switch e.Type {
	case board.EntityFood:
		sb.WriteString(text.Center(strconv.Itoa(e.Value), ' ', cell))
	case board.EntityInsect:
		glyph := text.Center(Glyph(e.Insect.Kind), ' ', cell)
		if r.opts.Plain {
			sb.WriteString(glyph)
			return
		}
		sb.WriteString(ansiBold)
		sb.WriteString(Background(e.Insect.Color))
		sb.WriteString(ansiFgBlack)
		sb.WriteString(glyph)
		sb.WriteString(ansiReset)
	default:
		sb.WriteString(strings.Repeat(" ", cell))
	}
}
