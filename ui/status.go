package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/insectboard/board"
	"github.com/drake/insectboard/text"
	"github.com/drake/insectboard/ui/style"
)

// StatusBar shows what is loaded, the last error or notice, and key hints.
type StatusBar struct {
	size    board.Size
	food    int
	insects int
	notice  string
	err     error
	width   int
	styles  style.Styles
	keys    keyMap
}

// NewStatusBar creates a new status bar.
func NewStatusBar(styles style.Styles, keys keyMap) StatusBar {
	return StatusBar{styles: styles, keys: keys}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetBoard records the counts of the board on screen and clears any error.
func (s *StatusBar) SetBoard(snap board.Snapshot, size board.Size) {
	s.size = size
	s.food, s.insects = snap.Counts()
	s.err = nil
}

// SetError shows err until the next successful load.
func (s *StatusBar) SetError(err error) {
	s.err = err
}

// SetNotice shows a transient message such as "copied".
func (s *StatusBar) SetNotice(msg string) {
	s.notice = msg
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var left string
	switch {
	case s.err != nil:
		left = s.styles.StatusError.Render("error: " + s.err.Error())
	case s.size.Valid():
		left = s.styles.StatusOK.Render(fmt.Sprintf("%d×%d", s.size, s.size)) +
			s.styles.Muted.Render(fmt.Sprintf("  food %d  insects %d", s.food, s.insects))
	default:
		left = s.styles.Muted.Render("loading…")
	}
	if s.notice != "" {
		left += s.styles.Muted.Render("  " + s.notice)
	}

	hints := make([]string, 0, len(s.keys.bindings()))
	for _, b := range s.keys.bindings() {
		h := b.Help()
		hints = append(hints, s.styles.StatusKey.Render(h.Key)+" "+s.styles.Muted.Render(h.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := s.width - text.VisibleLen(left) - text.VisibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return s.styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

// Height is the number of rows the status bar occupies.
func (s *StatusBar) Height() int {
	return lipgloss.Height(s.View())
}
