package lua

import (
	"math"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/insectboard/board"
)

// registerBoardFuncs registers the board.* functions scripts use to place entities.
func (e *Engine) registerBoardFuncs() {
	// board.size([n]): Set the board dimension, or return it when called without arguments
	e.L.SetField(e.boardTable, "size", e.L.NewFunction(func(L *glua.LState) int {
		if L.GetTop() == 0 {
			L.Push(glua.LNumber(e.size))
			return 1
		}
		n := checkInt(L, 1)
		if n < 1 {
			L.ArgError(1, "size must be at least 1")
			return 0
		}
		e.size = board.Size(n)
		return 0
	}))

	// board.food(x, y, value): Place a food point
	e.L.SetField(e.boardTable, "food", e.L.NewFunction(func(L *glua.LState) int {
		c := checkCoord(L)
		value := checkInt(L, 3)
		e.cells[c] = board.Food(value)
		return 0
	}))

	// board.insect(x, y, color, kind): Place an insect token
	e.L.SetField(e.boardTable, "insect", e.L.NewFunction(func(L *glua.LState) int {
		c := checkCoord(L)
		color := board.ParseColor(L.CheckString(3))
		kind := board.ParseKind(L.CheckString(4))
		e.cells[c] = board.NewInsect(color, kind)
		return 0
	}))

	// board.clear(x, y): Remove whatever occupies a cell
	e.L.SetField(e.boardTable, "clear", e.L.NewFunction(func(L *glua.LState) int {
		delete(e.cells, checkCoord(L))
		return 0
	}))

	// board.get(x, y): Returns {food=v} or {color=..., kind=...}, nil when empty
	e.L.SetField(e.boardTable, "get", e.L.NewFunction(func(L *glua.LState) int {
		ent, ok := e.cells[checkCoord(L)]
		if !ok {
			L.Push(glua.LNil)
			return 1
		}

		tbl := L.NewTable()
		switch ent.Type {
		case board.EntityFood:
			L.SetField(tbl, "food", glua.LNumber(ent.Value))
		case board.EntityInsect:
			L.SetField(tbl, "color", glua.LString(ent.Insect.Color.String()))
			L.SetField(tbl, "kind", glua.LString(ent.Insect.Kind.String()))
		}
		L.Push(tbl)
		return 1
	}))
}

// registerLogFuncs registers board.log(msg), routed to the engine logger.
func (e *Engine) registerLogFuncs() {
	e.L.SetField(e.boardTable, "log", e.L.NewFunction(func(L *glua.LState) int {
		msg := L.CheckString(1)
		e.logger.Info().Str("source", "lua").Msg(msg)
		return 0
	}))
}

// checkCoord reads a 1-indexed (x, y) pair from the first two arguments.
func checkCoord(L *glua.LState) board.Coord {
	x := checkInt(L, 1)
	y := checkInt(L, 2)
	if x < 1 {
		L.ArgError(1, "x must be at least 1")
	}
	if y < 1 {
		L.ArgError(2, "y must be at least 1")
	}
	return board.Coord{X: x, Y: y}
}

// checkInt reads an integral number argument. Fractions raise an error rather than truncate.
func checkInt(L *glua.LState, n int) int {
	v := float64(L.CheckNumber(n))
	if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
		L.ArgError(n, "integer expected")
		return 0
	}
	return int(v)
}
