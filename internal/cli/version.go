package cli

import (
	"fmt"

	"github.com/STBoyden/gobag"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/STBoyden/gobag"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bagdemo version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bagdemo v%s\nmodule: %s\n", gobag.Version, modulePath)
			return nil
		},
	}
}
