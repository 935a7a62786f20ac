package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cetusw/g-loc/bfs"
	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/matrix"
	"github.com/cetusw/g-loc/postman"
)

// outcome is one solved input; exactly one of res and noTour is set.
// components is filled only when the input graph is disconnected.
type outcome struct {
	name       string
	res        *postman.Result
	noTour     error
	components [][]string
}

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [matrix files...]",
		Short: "Print a Chinese postman tour for each adjacency-matrix file (stdin when none).",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			return a.runSolve(cmd, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&a.cfg.Solve.Pairing, "pairing", "p", a.cfg.Solve.Pairing, "odd vertex pairing: whole or odd")
	f.StringVar(&a.cfg.Solve.Connector, "connector", a.cfg.Solve.Connector, "connector metric for odd pairing: hops or weight")
	f.StringVarP(&a.cfg.Solve.Start, "start", "s", a.cfg.Solve.Start, "start vertex of the tour")
	f.IntVarP(&a.cfg.Solve.Jobs, "jobs", "j", a.cfg.Solve.Jobs, "inputs solved in parallel")
	f.BoolVar(&a.cfg.Solve.Strict, "strict", a.cfg.Solve.Strict, "reject asymmetric matrices")

	return cmd
}

// runSolve solves every input concurrently and prints results in argument
// order. Each job owns its graph.
func (a *app) runSolve(cmd *cobra.Command, paths []string) error {
	if n := countStdin(paths); n > 1 {
		return errors.Errorf("stdin (-) given %d times, at most once allowed", n)
	}
	pairing, err := postman.ParsePairing(a.cfg.Solve.Pairing)
	if err != nil {
		return err
	}
	connector, err := postman.ParseConnector(a.cfg.Solve.Connector)
	if err != nil {
		return err
	}
	opts := []postman.Option{postman.WithPairing(pairing), postman.WithConnector(connector)}
	if a.cfg.Solve.Start != "" {
		opts = append(opts, postman.WithStart(a.cfg.Solve.Start))
	}

	results := make([]outcome, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Solve.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			graph, err := a.readGraph(cmd, path)
			if err != nil {
				return err
			}
			results[i], err = a.solveOne(ctx, path, graph, opts)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if r.noTour != nil {
			a.out.noTour(r.name, r.noTour, r.components)
			continue
		}
		a.out.tour(r.name, r.res)
	}

	return nil
}

func (a *app) solveOne(ctx context.Context, name string, g *core.Graph, opts []postman.Option) (outcome, error) {
	log := a.log.WithField("input", name)
	log.WithFields(logrus.Fields{"vertices": g.NumVertices(), "edges": g.NumEdges()}).Info("solving")

	opts = append(opts[:len(opts):len(opts)], postman.WithObserver(observer(a.log, name)))
	res, err := postman.NewSolver(g, opts...).Solve()
	switch {
	case postman.IsNoTour(err):
		log.WithError(err).Warn("no tour")
		out := outcome{name: name, noTour: err}
		if errors.Is(err, postman.ErrDisconnected) {
			if out.components, err = bfs.Components(g); err != nil {
				return outcome{}, errors.Wrapf(err, "components of %s", name)
			}
			log.WithField("components", len(out.components)).Info("graph is disconnected")
		}
		return out, nil
	case err != nil:
		return outcome{}, errors.Wrapf(err, "solving %s", name)
	}
	if ctx.Err() != nil {
		return outcome{}, ctx.Err()
	}
	log.WithField("cost", res.Cost).Info("tour found")

	return outcome{name: name, res: res}, nil
}

// countStdin counts the "-" arguments; stdin can be consumed only once.
func countStdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if p == "-" {
			n++
		}
	}

	return n
}

// readGraph parses one matrix input.
func (a *app) readGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var opts []matrix.Option
	if a.cfg.Solve.Strict {
		opts = append(opts, matrix.WithStrictSymmetry())
	}
	g, err := matrix.ParseReader(r, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return g, nil
}
