// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/internal/config"
	"github.com/katalvlaran/graphd/internal/log"
)

type analyzeOpts struct {
	directed bool
	weighted bool
	from     string
	to       string
}

func newAnalyzeCmd(load func() (*config.Config, error)) *cobra.Command {
	var o analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Load an edge-list file and print its summary",
		Long: "Load an edge-list file (\"u v\" or \"u v w\" per line) into a fresh graph and print\n" +
			"its order, size, skipped lines and Eulerian class. With --from and --to the\n" +
			"shortest path between the two vertices is printed as well.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (o.from == "") != (o.to == "") {
				return errors.New("--from and --to must be given together")
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			l, err := log.New(cfg.LogOpts())
			if err != nil {
				return fmt.Errorf("setting up logger: %w", err)
			}
			defer l.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return analyze(cmd, engine.New(engine.WithLogger(l.Logger)), f, o)
		},
	}

	cmd.Flags().BoolVar(&o.directed, "directed", false, "treat edges as directed")
	cmd.Flags().BoolVar(&o.weighted, "weighted", false, "expect a weight on every line")
	cmd.Flags().StringVar(&o.from, "from", "", "shortest path source")
	cmd.Flags().StringVar(&o.to, "to", "", "shortest path target")

	return cmd
}

func analyze(cmd *cobra.Command, e *engine.GraphEngine, f *os.File, o analyzeOpts) error {
	out := cmd.OutOrStdout()

	res, err := e.CreateGraphFromText(f, o.directed, o.weighted)
	if err != nil {
		return fmt.Errorf("loading %s: %w", f.Name(), err)
	}
	info := e.GraphInfo()
	fmt.Fprintf(out, "order: %d\nsize: %d\nskipped: %d\n", info.Order, info.Size, res.Skipped)

	class, err := e.ClassifyEulerian()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "eulerian: %s\n", class)

	if o.from == "" {
		return nil
	}
	p, err := e.ShortestPath(o.from, o.to)
	switch {
	case errors.Is(err, engine.ErrNoPath):
		fmt.Fprintf(out, "path: none\n")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "path: %s (%g)\n", strings.Join(p.Vertices, " -> "), p.Weight)

	return nil
}
