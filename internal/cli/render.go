package cli

import (
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print a snapshot file as a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, size, err := a.loader.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r, err := a.renderer(out)
			if err != nil {
				return err
			}
			return r.Render(out, snap, size)
		},
	}
}
