package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Peter-Juhasz/line-counter/internal/version"
)

func newVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if full {
				fmt.Fprint(cmd.OutOrStdout(), version.FullVersion())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "f", false, "include build and dependency details")

	return cmd
}
