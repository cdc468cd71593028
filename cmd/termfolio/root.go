package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termfolio/pkg/termfolio/config"
	"github.com/arthur-debert/termfolio/pkg/termfolio/shell"
	"github.com/arthur-debert/termfolio/pkg/termfolio/vfs"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfgFile string
	noColor bool

	cfg    *config.Config
	logger zerolog.Logger
}

// newRootCmd builds the command tree. Each call returns independent flag
// state, so tests can run several invocations side by side.
func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "termfolio",
		Short: "A portfolio presented as a pretend Unix terminal",
		Long: `termfolio runs a small shell over a read-only, in-memory filesystem that
holds a developer portfolio. Visitors explore it with ls, cd, cat, tree and
friends instead of clicking through pages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.termfolio/termfolio.yaml or ./termfolio.yaml)")
	flags.String(config.KeyUser, shell.DefaultUser, "user name shown in the prompt")
	flags.String(config.KeyHost, shell.DefaultHost, "host name shown in the prompt")
	flags.String(config.KeyManifest, "", "YAML manifest describing the filesystem (default is the built-in portfolio)")
	flags.String(config.KeyLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newShellCommand(a))
	cmd.AddCommand(newExecCommand(a))
	cmd.AddCommand(newTreeCommand(a))

	return cmd
}

// load resolves the configuration with flags taking precedence over the
// environment and the config file.
func (a *app) load(cmd *cobra.Command) error {
	v := config.New()
	flags := cmd.Flags()
	for _, key := range []string{config.KeyUser, config.KeyHost, config.KeyManifest, config.KeyLogLevel} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if flags.Changed("no-color") {
		v.Set(config.KeyColor, !a.noColor)
	}

	cfg, err := config.Load(v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	if cfg.File != "" {
		a.logger.Debug().Str("file", cfg.File).Msg("loaded config")
	}
	return nil
}

func (a *app) filesystem() (*vfs.Filesystem, error) {
	fsys, err := a.cfg.Filesystem(a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build filesystem: %w", err)
	}
	return fsys, nil
}

func (a *app) newSession(fsys *vfs.Filesystem, out shell.Output) *shell.Session {
	return shell.NewSession(fsys, out, a.cfg.SessionOptions(a.logger)...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of termfolio`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termfolio version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
