package ui

import (
	"time"

	"github.com/drake/insectboard/board"
)

// loadedMsg carries the result of reading the snapshot source.
type loadedMsg struct {
	snap board.Snapshot
	size board.Size
	err  error
}

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	err error
}

// tickMsg triggers a periodic reload.
type tickMsg time.Time
