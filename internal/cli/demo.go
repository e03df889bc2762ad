package cli

import (
	"fmt"

	"github.com/STBoyden/gobag"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Combine the bags [0..4] and [3..9]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, a)
		},
	}
}

func runDemo(cmd *cobra.Command, a *app) error {
	first, err := bagOf(a.cfg, 0, 1, 2, 3, 4)
	if err != nil {
		return fmt.Errorf("build bag 1: %w", err)
	}

	second, err := bagOf(a.cfg, 3, 4, 5, 6, 7, 8, 9)
	if err != nil {
		return fmt.Errorf("build bag 2: %w", err)
	}

	a.logger.Debug("running demo", "variant", a.cfg.variant)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	show(ctx, a, out, "bag 1", first)
	show(ctx, a, out, "bag 2", second)

	results := []struct {
		title   string
		combine func(gobag.Bag[int]) (gobag.Bag[int], error)
	}{
		{"union", first.Union},
		{"intersection", first.Intersection},
		{"difference", first.Difference},
	}

	for _, r := range results {
		bag, err := r.combine(second)
		if err != nil {
			return fmt.Errorf("%s: %w", r.title, err)
		}
		show(ctx, a, out, r.title, bag)
	}

	return nil
}
