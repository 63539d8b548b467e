package main

import (
	"github.com/spf13/cobra"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/logging"
)

// globals holds the persistent flags and what they resolve to.
type globals struct {
	configPath string
	layoutName string
	logLevel   string
	logFormat  string
	logOutput  string

	cfg *config.Config
	log *logging.Logger
}

func newRootCommand() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "hanic",
		Short: "Hangul input composition engine",
		Long: "hanic composes Hangul syllable blocks from keystrokes on a two-set or three-set keyboard.\n\n" +
			"It can compose interactively, convert QWERTY text, serve conversions over a unix socket " +
			"and check the composer against libhangul.",
		SilenceUsage:      true,
		PersistentPreRunE: g.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = g.log.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "path to hanic.ini (default: ./hanic.ini, then the user config directory)")
	flags.StringVar(&g.layoutName, "layout", "", "keyboard layout, overrides the configuration")
	flags.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&g.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&g.logOutput, "log-output", "", "log destination: stderr, stdout, discard or a file path")

	root.AddCommand(
		newTypeCommand(g),
		newConvertCommand(g),
		newServeCommand(g),
		newVerifyCommand(g),
		newBenchCommand(g),
		newLayoutsCommand(g),
	)
	return root
}

func (g *globals) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(g.configPath)
	if err != nil {
		return err
	}
	if g.layoutName != "" {
		if cfg, err = cfg.WithLayout(g.layoutName); err != nil {
			return err
		}
	}

	if g.logLevel != "" {
		if cfg.Log.Level, err = logging.ParseLevel(g.logLevel); err != nil {
			return err
		}
	}
	if g.logFormat != "" {
		if cfg.Log.Format, err = logging.ParseFormat(g.logFormat); err != nil {
			return err
		}
	}
	if g.logOutput != "" {
		cfg.Log.Output = g.logOutput
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.log = logger.WithComponent(cmd.Name())
	g.log.Debug("configuration loaded", "path", cfg.Path, "layout", cfg.LayoutName, "mode", cfg.DefaultMode.String())
	return nil
}
