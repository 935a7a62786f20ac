package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cetusw/g-loc/builder"
	"github.com/cetusw/g-loc/matrix"
)

func newGenerateCommand(a *app) *cobra.Command {
	gc := &a.cfg.Generate
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the adjacency matrix of a random connected graph.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := gc.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g, err := builder.RandomConnected(gc.Vertices, gc.Extra,
				builder.WithSeed(seed),
				builder.WithWeightRange(gc.MinWeight, gc.MaxWeight))
			if err != nil {
				return errors.Wrap(err, "generating graph")
			}
			a.log.WithField("seed", seed).Infof("generated %d vertices, %d edges", g.NumVertices(), g.NumEdges())

			text, err := matrix.Format(g)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)

			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&gc.Vertices, "vertices", "n", gc.Vertices, "number of vertices")
	f.IntVarP(&gc.Extra, "extra", "e", gc.Extra, "edges added beyond the spanning tree")
	f.IntVar(&gc.MinWeight, "min-weight", gc.MinWeight, "smallest edge weight")
	f.IntVar(&gc.MaxWeight, "max-weight", gc.MaxWeight, "largest edge weight")
	f.Int64Var(&gc.Seed, "seed", gc.Seed, "random seed (0 = time based)")

	return cmd
}
