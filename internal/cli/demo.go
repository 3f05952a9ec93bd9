package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/drake/insectboard/board"
)

func newDemoCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a built-in example board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return errors.Errorf("--size must be at least 1, got %d", size)
			}
			out := cmd.OutOrStdout()
			r, err := a.renderer(out)
			if err != nil {
				return err
			}
			return r.Render(out, demoBoard(board.Size(size)), board.Size(size))
		},
	}
	cmd.Flags().IntVar(&size, "size", 9, "Board dimension")
	return cmd
}

// demoBoard places one insect of every kind and color along the diagonal
// and food on the anti-diagonal.
func demoBoard(size board.Size) board.Snapshot {
	colors := []board.Color{board.ColorRed, board.ColorGreen, board.ColorBlue, board.ColorOther}
	kinds := []board.Kind{board.KindAnt, board.KindButterfly, board.KindSpider, board.KindGrasshopper, board.KindUnknown}

	n := int(size)
	snap := make(board.Snapshot)
	for i := 1; i <= n; i++ {
		snap[board.Coord{X: n + 1 - i, Y: i}] = board.Food(i * i)
	}
	for i := 1; i <= n; i++ {
		snap[board.Coord{X: i, Y: i}] = board.NewInsect(colors[(i-1)%len(colors)], kinds[(i-1)%len(kinds)])
	}
	return snap
}
