package cli

import (
	"fmt"
	"slices"

	"github.com/STBoyden/gobag"
	"github.com/STBoyden/gobag/hashbag"
	"github.com/spf13/cobra"
)

func newFreqCmd(a *app) *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Print how often each entry occurs in a bag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := bagOf(a.cfg, items...)
			if err != nil {
				return fmt.Errorf("build bag: %w", err)
			}

			tally := gobag.Tally(bag)
			keys := hashbag.Keys(tally)
			slices.Sort(keys)

			out := cmd.OutOrStdout()
			for _, key := range keys {
				fmt.Fprintf(out, "%s: %d\n", key, hashbag.Count(tally, key))
			}
			fmt.Fprintf(out, "total: %d\n", bag.Size())

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&items, "items", nil, "comma-separated entries of the bag")

	return cmd
}
