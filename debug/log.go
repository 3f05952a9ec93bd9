// Package debug provides the env-gated diagnostic logger.
package debug

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// EnvVar enables debug logging when set to "1".
const EnvVar = "INSECTBOARD_DEBUG"

// Enabled returns true if debug mode is active (INSECTBOARD_DEBUG=1).
func Enabled() bool {
	return os.Getenv(EnvVar) == "1"
}

// Logger returns a human-readable logger on stderr when debug mode is enabled,
// and a no-op logger otherwise.
func Logger() zerolog.Logger {
	if !Enabled() {
		return zerolog.Nop()
	}
	return NewLogger(os.Stderr)
}

// NewLogger writes console-formatted debug logs to w.
func NewLogger(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
