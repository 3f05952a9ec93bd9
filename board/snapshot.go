package board

import (
	"math"
	"strconv"
)

// Unmatched is the off-board position that holds the widest food value found
// under keys no cell can match. It never lies inside a valid board, so it only
// influences column width.
var Unmatched = Coord{X: math.MinInt, Y: math.MinInt}

// Snapshot maps positions to the entity occupying them.
// A snapshot is treated as immutable for the duration of a render.
type Snapshot map[Coord]Entity

// FromKeys converts a map keyed by legacy "x y" strings.
// Entities under malformed keys never occupy a cell, but their food still
// counts toward column width (see AddUnmatched).
func FromKeys(m map[string]Entity) Snapshot {
	snap := make(Snapshot, len(m))
	for key, e := range m {
		if c, ok := ParseKey(key); ok && c != Unmatched {
			snap[c] = e
			continue
		}
		snap.AddUnmatched(e)
	}
	return snap
}

// AddUnmatched records an entity whose key matches no cell.
// Only food matters: the widest value is kept at Unmatched.
func (s Snapshot) AddUnmatched(e Entity) {
	if e.Type != EntityFood {
		return
	}
	if cur, ok := s[Unmatched]; ok && cur.Type == EntityFood && foodWidth(cur.Value) >= foodWidth(e.Value) {
		return
	}
	s[Unmatched] = e
}

// At returns the entity at (x, y), if any.
func (s Snapshot) At(x, y int) (Entity, bool) {
	e, ok := s[Coord{X: x, Y: y}]
	return e, ok
}

// Counts returns the number of food points and insects in the snapshot.
// The Unmatched width carrier is not counted.
func (s Snapshot) Counts() (food, insects int) {
	for c, e := range s {
		if c == Unmatched {
			continue
		}
		switch e.Type {
		case EntityFood:
			food++
		case EntityInsect:
			insects++
		}
	}
	return food, insects
}

func foodWidth(v int) int {
	return len(strconv.Itoa(v))
}
