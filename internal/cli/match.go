package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cetusw/g-loc/blossom"
)

func newMatchCommand(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "match [matrix file]",
		Short: "Print a maximum-cardinality matching of an adjacency-matrix graph.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			g, err := a.readGraph(cmd, path)
			if err != nil {
				return err
			}

			log := a.log.WithField("input", path)
			m, err := blossom.MaximumMatchingInitial(g,
				blossom.WithMaxDepth(maxDepth),
				blossom.WithOnBlossom(func(cycle []string, base string, depth int) {
					log.WithFields(logrus.Fields{"base": base, "depth": depth}).Debugf("blossom %v", cycle)
				}),
				blossom.WithOnAugment(func(aug []string) {
					log.Debugf("augment %v", aug)
				}),
			)
			if err != nil {
				return errors.Wrapf(err, "matching %s", path)
			}
			a.out.matching(path, m)

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "limit on nested blossoms (0 = unlimited)")
	cmd.Flags().BoolVar(&a.cfg.Solve.Strict, "strict", a.cfg.Solve.Strict, "reject asymmetric matrices")

	return cmd
}
