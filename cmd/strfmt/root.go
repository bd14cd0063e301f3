package main

import (
	"github.com/rickchristie/strfmt"
	"github.com/rickchristie/strfmt/hooks"
	"github.com/rickchristie/strfmt/loggers"
	"github.com/spf13/cobra"
)

// globalFlags holds flags shared by every subcommand.
type globalFlags struct {
	configFile string
	verbose    bool
	lenient    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "strfmt",
		Short: "Render Python style format templates",
		Long: `strfmt renders templates such as "{0:>8.2f}" with arguments given on the
command line. Arguments are read as YAML values, so 1 is an integer, 2.5 a float,
true a boolean, [1, 2] a list and {a: 1} a map.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Trace formatter events to stderr")
	root.PersistentFlags().BoolVar(&flags.lenient, "lenient", false, "Render unbound placeholders as empty text")

	root.AddCommand(
		newRenderCmd(flags),
		newReplCmd(flags),
		newCheckCmd(flags),
		newDemoCmd(flags),
	)
	return root
}

// loadConfig returns the config selected by the global flags.
func (g *globalFlags) loadConfig() (strfmt.Config, error) {
	cfg := strfmt.DefaultConfig()
	if g.configFile != "" {
		loaded, err := strfmt.LoadConfigFile(g.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if g.lenient {
		cfg.StrictUnbound = false
	}
	return cfg, nil
}

// newFormatter builds a Formatter from cfg, tracing to the command's stderr when
// --verbose is set.
func (g *globalFlags) newFormatter(cmd *cobra.Command, cfg strfmt.Config) *strfmt.Formatter {
	f := strfmt.New(cfg)
	if g.verbose {
		f.WithHooks(hooks.NewRegistry().
			Register(loggers.NewYAMLLoggerWithWriter(cmd.ErrOrStderr())))
	}
	return f
}

func (g *globalFlags) formatter(cmd *cobra.Command) (*strfmt.Formatter, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	return g.newFormatter(cmd, cfg), nil
}
