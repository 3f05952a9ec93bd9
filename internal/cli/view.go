package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/drake/insectboard/board"
	"github.com/drake/insectboard/ui"
)

func newViewCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Open a snapshot file in the interactive viewer",
		Long: `Open a snapshot file in the interactive viewer.

Press r to reload the file, c to copy the board to the clipboard and q to quit.
With --watch the file is reloaded periodically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			return ui.Run(ui.Config{
				Title: filepath.Base(path),
				Source: func() (board.Snapshot, board.Size, error) {
					return a.loader.Load(path)
				},
				Interval: interval,
				Logger:   a.logger,
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "watch", 0, "Reload period, e.g. 500ms (0 disables)")
	return cmd
}
