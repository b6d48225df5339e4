// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvrank/config"
)

// app carries state shared by all subcommands once the root has loaded
// the configuration.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log zerolog.Logger

	stdout io.Writer
	stderr io.Writer
}

// Execute runs the CLI with args, writing results to stdout and logs to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "lvrank",
		Short:         "Estimate the numerical rank of painting images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file (built-in defaults when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "override log_level (trace, debug, info, warn, error)")

	root.AddCommand(a.batchCmd(), a.imageCmd(), a.exampleCmd())

	return root
}

func (a *app) setup(fs *pflag.FlagSet) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(a.stderr), TimeFormat: time.TimeOnly}).
		Level(cfg.Level()).
		With().
		Timestamp().
		Logger()
	a.log.Debug().Str("config", a.configPath).Msg("configuration loaded")

	return nil
}

// estimatorFlags are the per-command overrides of the rank settings.
type estimatorFlags struct {
	threshold float64
	backend   string
	maxDim    int
}

func (f *estimatorFlags) bind(fs *pflag.FlagSet) {
	fs.Float64Var(&f.threshold, "threshold", 0, "override threshold, the relative singular value cutoff in (0, 1]")
	fs.StringVar(&f.backend, "backend", "", "override backend (gonum or jacobi)")
	fs.IntVar(&f.maxDim, "max-dim", 0, "override max_dim, the longest image side after downsampling (0 keeps native size)")
}

// apply copies the flags the user actually set onto cfg and revalidates it.
func (f *estimatorFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if fs.Changed("backend") {
		cfg.Backend = f.backend
	}
	if fs.Changed("max-dim") {
		cfg.MaxDim = f.maxDim
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	return nil
}
