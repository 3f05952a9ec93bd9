package cli

import (
	"github.com/spf13/cobra"

	"github.com/drake/insectboard/snapshot"
)

func newConvertCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Write a snapshot file (including Lua scripts) as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, size, err := a.loader.Load(args[0])
			if err != nil {
				return err
			}
			return snapshot.Encode(cmd.OutOrStdout(), snapshot.Format(format), snap, size)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(snapshot.FormatJSON), "Output format (json|yaml)")
	return cmd
}
