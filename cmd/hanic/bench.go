package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/corpus"
	"github.com/gg582/hanic/internal/engine"
	"github.com/gg582/hanic/internal/key"
	"github.com/gg582/hanic/internal/oracle"
	"github.com/gg582/hanic/internal/verify"
)

func newBenchCommand(g *globals) *cobra.Command {
	var (
		setName    string
		sizes      []int
		iterations int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time committing a repeated keystroke set",
		Long: "Types the set N times in a row and commits the result, for each N, and reports the " +
			"time per run. Each size is first checked to commit exactly N copies. libhangul is timed " +
			"alongside when compiled in.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, ok := corpus.Default().Find(setName)
			if !ok {
				return fmt.Errorf("no set named %q", setName)
			}
			if iterations < 1 {
				return fmt.Errorf("iterations must be positive, got %d", iterations)
			}
			runner := verify.NewRunner(g.log)
			eng := engine.New(g.cfg)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "N\tengine/op\tlibhangul/op")
			for _, n := range sizes {
				if err := runner.Stress(eng, g.cfg, set, n); err != nil {
					return err
				}
				keys, err := corpus.Repeat(set, n).KeyStrokes()
				if err != nil {
					return err
				}
				engineOp := timeEngine(eng, g.cfg, keys, iterations)
				libOp := "-"
				if keyboard, ok := g.cfg.Layout.LibhangulID(); ok && oracle.Available {
					d, err := timeLibhangul(keyboard, keys, iterations)
					if err != nil {
						return err
					}
					libOp = d.String()
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", n, engineOp, libOp)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&setName, "set", "man", "corpus set to repeat")
	cmd.Flags().IntSliceVar(&sizes, "n", []int{5, 50, 500}, "repetition counts")
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "runs per size")
	return cmd
}

func timeEngine(eng *engine.InputEngine, cfg *config.Config, keys []key.Key, iterations int) time.Duration {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		for _, k := range keys {
			eng.PressKey(cfg, k)
		}
		eng.ClearPreedit()
		eng.Reset()
	}
	return time.Since(start) / time.Duration(iterations)
}

func timeLibhangul(layout string, keys []key.Key, iterations int) (time.Duration, error) {
	var elapsed time.Duration
	err := oracle.With(oracle.OpenLibhangul, layout, func(o oracle.Oracle) error {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			for _, k := range keys {
				if !o.Process(k.Char()) {
					o.Flush()
				}
				o.CommitString()
			}
			o.Flush()
			o.Reset()
		}
		elapsed = time.Since(start)
		return nil
	})
	return elapsed / time.Duration(iterations), err
}
