// Package lua runs board scripts: Lua files that describe a snapshot
// through the global "board" table.
package lua

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/insectboard/board"
)

// ErrNoSize is returned by Snapshot when no script called board.size.
var ErrNoSize = errors.New("board size was never set")

// Engine wraps gopher-lua and collects the board a script declares.
// It is not safe for concurrent use; one goroutine owns the VM.
type Engine struct {
	L *glua.LState

	// Cached table reference
	boardTable *glua.LTable

	size  board.Size
	cells board.Snapshot

	logger zerolog.Logger
}

// NewEngine creates an Engine. Call Init before running scripts.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		logger: logger,
		cells:  make(board.Snapshot),
	}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with an empty board.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()
	e.size = 0
	e.cells = make(board.Snapshot)

	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	newPath := dir + "/?.lua;" + oldPath
	e.L.SetField(pkg, "path", glua.LString(newPath))

	err = e.L.DoFile(absPath)

	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// Snapshot returns a copy of the board declared so far.
func (e *Engine) Snapshot() (board.Snapshot, board.Size, error) {
	if !e.size.Valid() {
		return nil, 0, ErrNoSize
	}

	snap := make(board.Snapshot, len(e.cells))
	for c, ent := range e.cells {
		snap[c] = ent
	}
	return snap, e.size, nil
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.boardTable = e.L.NewTable()
	e.L.SetGlobal("board", e.boardTable)

	e.registerBoardFuncs()
	e.registerLogFuncs()
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
