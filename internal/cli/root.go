// SPDX-License-Identifier: MIT

// Package cli implements the gthsolve command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stationary/internal/config"
	"github.com/katalvlaran/stationary/internal/logger"
)

// app is the state shared by every subcommand once the root has resolved
// configuration and logging.
type app struct {
	cfg config.Config
	log *slog.Logger
}

// Execute runs the command tree and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logger.Discard()}
	var configPath, logFormat, dbPath string
	var debug bool

	cmd := &cobra.Command{
		Use:          "gthsolve",
		Short:        "Stationary distributions of finite Markov chains (GTH elimination)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("debug") {
				cfg.Debug = debug
			}
			if flags.Changed("log-format") {
				cfg.Format = logFormat
			}
			if flags.Changed("db") {
				cfg.DB = dbPath
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			l, err := logger.New(cmd.ErrOrStderr(), logger.Config{Format: cfg.Format, Debug: cfg.Debug})
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, l
			l.Debug("config.loaded",
				"path", configPath,
				"tolerance", cfg.Tolerance,
				"workers", cfg.Workers,
				"strict", cfg.Strict,
				"db", cfg.DB,
			)

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML configuration file (optional)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	pf.StringVar(&logFormat, "log-format", config.FormatText, "log format: text|json")
	pf.StringVar(&dbPath, "db", "", "SQLite file recording every result (optional)")

	cmd.AddCommand(solveCmd(a), kmrCmd(a), historyCmd(a), versionCmd())

	return cmd
}
