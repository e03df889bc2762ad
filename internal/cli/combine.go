package cli

import (
	"fmt"

	"github.com/STBoyden/gobag"
	"github.com/spf13/cobra"
)

const (
	opUnion        = "union"
	opIntersection = "intersection"
	opDifference   = "difference"
)

func newCombineCmd(a *app) *cobra.Command {
	var left, right []string

	cmd := &cobra.Command{
		Use:       "combine <union|intersection|difference>",
		Short:     "Combine two bags of words",
		Example:   "  bagdemo combine intersection --left a,a,b --right a,c",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{opUnion, opIntersection, opDifference},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, a, args[0], left, right)
		},
	}

	cmd.Flags().StringSliceVar(&left, "left", nil, "comma-separated entries of the left bag")
	cmd.Flags().StringSliceVar(&right, "right", nil, "comma-separated entries of the right bag")

	return cmd
}

func runCombine(cmd *cobra.Command, a *app, op string, left, right []string) error {
	leftBag, err := bagOf(a.cfg, left...)
	if err != nil {
		return fmt.Errorf("build left bag: %w", err)
	}

	rightBag, err := bagOf(a.cfg, right...)
	if err != nil {
		return fmt.Errorf("build right bag: %w", err)
	}

	var result gobag.Bag[string]
	switch op {
	case opUnion:
		result, err = leftBag.Union(rightBag)
	case opIntersection:
		result, err = leftBag.Intersection(rightBag)
	case opDifference:
		result, err = leftBag.Difference(rightBag)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	show(cmd.Context(), a, cmd.OutOrStdout(), op, result)

	return nil
}
