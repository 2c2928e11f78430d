package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/bitly/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return nil
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")
	return cmd
}
