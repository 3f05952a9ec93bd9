package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Setenv(EnvVar, "1")
	if !Enabled() {
		t.Error("expected debug mode on")
	}
	t.Setenv(EnvVar, "")
	if Enabled() {
		t.Error("expected debug mode off")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf)
	log.Debug().Str("path", "board.lua").Msg("loading snapshot")

	out := buf.String()
	if !strings.Contains(out, "loading snapshot") || !strings.Contains(out, "path=board.lua") {
		t.Errorf("unexpected log line %q", out)
	}
}
