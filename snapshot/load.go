package snapshot

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/drake/insectboard/board"
	"github.com/drake/insectboard/lua"
)

// Format identifies a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatLua  Format = "lua"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".lua":
		return FormatLua, nil
	}
	return "", errors.Errorf("unsupported snapshot file %q (want .json, .yaml, .yml or .lua)", path)
}

// Loader reads snapshot files.
type Loader struct {
	// InitFile is a Lua script run before every Lua snapshot, if it exists.
	InitFile string
	Logger   zerolog.Logger
}

// Load reads the snapshot at path.
func (l *Loader) Load(path string) (board.Snapshot, board.Size, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, 0, err
	}

	l.Logger.Debug().Str("path", path).Str("format", string(format)).Msg("loading snapshot")

	if format == FormatLua {
		return l.loadLua(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read snapshot file")
	}
	snap, size, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to decode %s", path)
	}
	return snap, size, nil
}

func (l *Loader) loadLua(path string) (board.Snapshot, board.Size, error) {
	engine := lua.NewEngine(l.Logger)
	if err := engine.Init(); err != nil {
		return nil, 0, err
	}
	defer engine.Close()

	if l.InitFile != "" {
		if _, err := os.Stat(l.InitFile); err == nil {
			if err := engine.DoFile(l.InitFile); err != nil {
				return nil, 0, errors.Wrapf(err, "failed to run %s", l.InitFile)
			}
		}
	}

	if err := engine.DoFile(path); err != nil {
		return nil, 0, errors.Wrapf(err, "failed to run %s", path)
	}

	snap, size, err := engine.Snapshot()
	if err != nil {
		return nil, 0, errors.Wrap(err, path)
	}
	return snap, size, nil
}

// Decode reads a JSON or YAML document from r.
func Decode(r io.Reader, format Format) (board.Snapshot, board.Size, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, 0, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, 0, err
		}
	default:
		return nil, 0, errors.Errorf("cannot decode %s documents", format)
	}
	return doc.Board()
}

// Encode writes snap as a JSON or YAML document.
func Encode(w io.Writer, format Format, snap board.Snapshot, size board.Size) error {
	doc := FromBoard(snap, size)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.Errorf("cannot encode %s documents", format)
}
