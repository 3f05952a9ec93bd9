// Package board holds the read-only board model consumed by the renderer.
package board

import (
	"strconv"
	"strings"
)

// Color identifies the team an insect belongs to.
type Color int

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorOther // Any color the renderer has no dedicated style for
)

// Kind identifies the insect species.
type Kind int

const (
	KindAnt Kind = iota
	KindButterfly
	KindSpider
	KindGrasshopper
	KindUnknown
)

// EntityType tags the variant stored in an Entity.
type EntityType int

const (
	EntityNone EntityType = iota // Zero value; renders as an empty cell
	EntityFood
	EntityInsect
)

// Insect is a colored token occupying a cell.
type Insect struct {
	Color Color
	Kind  Kind
}

// Entity is a tagged union of the things that can occupy a cell.
// Value is meaningful for EntityFood, Insect for EntityInsect.
// The zero Entity is EntityNone, not food with value 0.
type Entity struct {
	Type   EntityType
	Value  int
	Insect Insect
}

// Food creates a food point entity.
func Food(value int) Entity {
	return Entity{Type: EntityFood, Value: value}
}

// NewInsect creates an insect entity.
func NewInsect(c Color, k Kind) Entity {
	return Entity{Type: EntityInsect, Insect: Insect{Color: c, Kind: k}}
}

// Coord is a 1-indexed board position.
type Coord struct {
	X, Y int
}

// Key returns the legacy "x y" form of the coordinate.
func (c Coord) Key() string {
	return strconv.Itoa(c.X) + " " + strconv.Itoa(c.Y)
}

// ParseKey parses a legacy "x y" key. Only the exact form produced by Key is
// accepted: "02 3" or "+1 1" could never match a cell lookup and report ok=false.
func ParseKey(key string) (Coord, bool) {
	xs, ys, found := strings.Cut(key, " ")
	if !found {
		return Coord{}, false
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, false
	}
	c := Coord{X: x, Y: y}
	if c.Key() != key {
		return Coord{}, false
	}
	return c, true
}

// Size is the dimension N of an N×N board.
type Size int

// Valid reports whether the size describes a non-empty board.
func (s Size) Valid() bool {
	return s >= 1
}

// Contains reports whether c lies inside the board.
func (s Size) Contains(c Coord) bool {
	return c.X >= 1 && c.Y >= 1 && c.X <= int(s) && c.Y <= int(s)
}
