// Package snapshot loads board snapshots from JSON, YAML and Lua files.
package snapshot

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/drake/insectboard/board"
)

// InsectDoc is the serialized form of an insect.
type InsectDoc struct {
	Color string `json:"color" yaml:"color"`
	Kind  string `json:"kind" yaml:"kind"`
}

// CellDoc is the serialized content of one cell: exactly one of Food or Insect.
type CellDoc struct {
	Food   *int       `json:"food,omitempty" yaml:"food,omitempty"`
	Insect *InsectDoc `json:"insect,omitempty" yaml:"insect,omitempty"`
}

// PlacementDoc is a cell with its position.
type PlacementDoc struct {
	X       int `json:"x" yaml:"x"`
	Y       int `json:"y" yaml:"y"`
	CellDoc `yaml:",inline"`
}

// Document is the on-disk board format.
// Cells holds entries keyed by the legacy "x y" form; Entities holds explicit placements.
type Document struct {
	Size     int                `json:"size" yaml:"size"`
	Entities []PlacementDoc     `json:"entities,omitempty" yaml:"entities,omitempty"`
	Cells    map[string]CellDoc `json:"cells,omitempty" yaml:"cells,omitempty"`
}

func (c CellDoc) entity() (board.Entity, error) {
	switch {
	case c.Food != nil && c.Insect != nil:
		return board.Entity{}, errors.New("cell has both food and insect")
	case c.Food != nil:
		return board.Food(*c.Food), nil
	case c.Insect != nil:
		return board.NewInsect(board.ParseColor(c.Insect.Color), board.ParseKind(c.Insect.Kind)), nil
	}
	return board.Entity{}, errors.New("cell has neither food nor insect")
}

// Board converts the document into a snapshot.
// Cells under malformed legacy keys never occupy the grid; their food only widens columns.
func (d Document) Board() (board.Snapshot, board.Size, error) {
	size := board.Size(d.Size)
	if !size.Valid() {
		return nil, 0, errors.Errorf("invalid board size %d", d.Size)
	}

	snap := make(board.Snapshot, len(d.Entities)+len(d.Cells))
	for key, cell := range d.Cells {
		e, err := cell.entity()
		if err != nil {
			return nil, 0, errors.Wrapf(err, "cell %q", key)
		}
		if c, ok := board.ParseKey(key); ok && c != board.Unmatched {
			snap[c] = e
			continue
		}
		snap.AddUnmatched(e)
	}
	for i, p := range d.Entities {
		e, err := p.entity()
		if err != nil {
			return nil, 0, errors.Wrapf(err, "entity %d at %d,%d", i, p.X, p.Y)
		}
		snap[board.Coord{X: p.X, Y: p.Y}] = e
	}
	return snap, size, nil
}

// FromBoard builds a document listing every entity as a placement, ordered by row then column.
func FromBoard(snap board.Snapshot, size board.Size) Document {
	doc := Document{Size: int(size), Entities: make([]PlacementDoc, 0, len(snap))}
	for c, e := range snap {
		p := PlacementDoc{X: c.X, Y: c.Y}
		switch e.Type {
		case board.EntityFood:
			v := e.Value
			p.Food = &v
		case board.EntityInsect:
			p.Insect = &InsectDoc{Color: e.Insect.Color.String(), Kind: e.Insect.Kind.String()}
		default:
			continue
		}
		doc.Entities = append(doc.Entities, p)
	}
	slices.SortFunc(doc.Entities, func(a, b PlacementDoc) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return doc
}
