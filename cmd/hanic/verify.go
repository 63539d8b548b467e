package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/corpus"
	"github.com/gg582/hanic/internal/engine"
	"github.com/gg582/hanic/internal/oracle"
	"github.com/gg582/hanic/internal/verify"
)

const (
	oracleAuto       = "auto"
	oracleLibhangul  = "libhangul"
	oracleTranscript = "transcript"
)

func newVerifyCommand(g *globals) *cobra.Command {
	var (
		corpusPath string
		sets       []string
		oracleName string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the composer against libhangul or recorded transcripts",
		Long: "Types every set of the corpus into the engine and into the reference, comparing the " +
			"preedit after each key and the committed text at the end.\n\n" +
			"--oracle libhangul needs a build with -tags libhangul; auto uses libhangul when it is " +
			"compiled in and the recorded transcripts otherwise.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := corpus.Default()
			if corpusPath != "" {
				var err error
				if c, err = corpus.Load(corpusPath); err != nil {
					return err
				}
			}
			cfg := g.cfg
			if g.layoutName == "" && c.Layout != "" {
				var err error
				if cfg, err = cfg.WithLayout(c.Layout); err != nil {
					return err
				}
			}
			selected, err := selectSets(c, sets)
			if err != nil {
				return err
			}
			mode, err := resolveOracle(oracleName)
			if err != nil {
				return err
			}

			runner := verify.NewRunner(g.log)
			eng := engine.New(cfg)
			failed := 0
			for _, set := range selected {
				err := verifySet(cmd, runner, eng, cfg, mode, set)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", set.Name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", set.Name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d sets diverged", failed, len(selected))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "YAML corpus file (default: the built-in corpus)")
	cmd.Flags().StringSliceVar(&sets, "set", nil, "only check the named sets")
	cmd.Flags().StringVar(&oracleName, "oracle", oracleAuto, "reference: auto, libhangul or transcript")
	return cmd
}

func resolveOracle(name string) (string, error) {
	switch name {
	case oracleAuto:
		if oracle.Available {
			return oracleLibhangul, nil
		}
		return oracleTranscript, nil
	case oracleLibhangul:
		if !oracle.Available {
			return "", oracle.ErrUnavailable
		}
		return name, nil
	case oracleTranscript:
		return name, nil
	default:
		return "", fmt.Errorf("unknown oracle %q", name)
	}
}

func selectSets(c *corpus.Corpus, names []string) ([]corpus.Set, error) {
	if len(names) == 0 {
		return c.Sets, nil
	}
	out := make([]corpus.Set, 0, len(names))
	for _, name := range names {
		set, ok := c.Find(name)
		if !ok {
			return nil, fmt.Errorf("no set named %q", name)
		}
		out = append(out, set)
	}
	return out, nil
}

func verifySet(cmd *cobra.Command, runner *verify.Runner, eng *engine.InputEngine, cfg *config.Config, mode string, set corpus.Set) error {
	if mode == oracleLibhangul {
		keyboard, err := libhangulKeyboard(cfg)
		if err != nil {
			return err
		}
		return oracle.With(oracle.OpenLibhangul, keyboard, func(o oracle.Oracle) error {
			return runner.Run(cmd.Context(), eng, cfg, o, set)
		})
	}
	if !set.Recorded() {
		return runner.Run(cmd.Context(), eng, cfg, nil, set)
	}
	return oracle.With(oracle.TranscriptOpener(set.Transcript()), cfg.Layout.Name(), func(o oracle.Oracle) error {
		return runner.Run(cmd.Context(), eng, cfg, o, set)
	})
}

// libhangulKeyboard names the libhangul keyboard with the same key map as the
// configured layout.
func libhangulKeyboard(cfg *config.Config) (string, error) {
	id, ok := cfg.Layout.LibhangulID()
	if !ok {
		return "", fmt.Errorf("layout %s has no libhangul keyboard", cfg.Layout.Name())
	}
	return id, nil
}
