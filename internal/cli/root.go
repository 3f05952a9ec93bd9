// Package cli wires the insectboard commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/drake/insectboard/config"
	"github.com/drake/insectboard/debug"
	"github.com/drake/insectboard/render"
	"github.com/drake/insectboard/snapshot"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// app carries the state shared by every command.
type app struct {
	logger zerolog.Logger
	loader *snapshot.Loader
	color  string
}

// NewRootCmd builds the command tree.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	a := &app{
		logger: logger,
		loader: &snapshot.Loader{InitFile: config.InitFile(), Logger: logger},
	}

	root := &cobra.Command{
		Use:   "insectboard",
		Short: "Draw insect board snapshots in the terminal",
		Long: `insectboard renders a board of food points and colored insects as a grid.

Snapshots are read from .json, .yaml or .lua files. Lua scripts describe the
board through the global "board" table and may rely on helpers defined in
` + config.InitFile() + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.color, "color", ColorAuto, "Color output (auto|always|never)")

	root.AddCommand(
		newRenderCmd(a),
		newViewCmd(a),
		newDemoCmd(a),
		newConvertCmd(a),
	)
	return root
}

// Execute runs the CLI against the process arguments and exits non-zero on failure.
func Execute() {
	root := NewRootCmd(debug.Logger())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// renderer picks plain or colored output for w according to --color.
func (a *app) renderer(w io.Writer) (*render.Renderer, error) {
	switch a.color {
	case ColorAlways:
		return render.New(render.Options{}), nil
	case ColorNever:
		return render.New(render.Options{Plain: true}), nil
	case ColorAuto:
		out := termenv.NewOutput(w)
		plain := out.EnvNoColor() || out.Profile == termenv.Ascii
		a.logger.Debug().Bool("plain", plain).Msg("detected color support")
		return render.New(render.Options{Plain: plain}), nil
	}
	return nil, errors.Errorf("invalid --color %q (want auto, always or never)", a.color)
}
