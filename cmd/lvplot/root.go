// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvplot/config"
	"github.com/katalvlaran/lvplot/i18n"
	"github.com/katalvlaran/lvplot/study"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	locale     string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
	stderr io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lvplot",
		Short:         "Recovery curve synthesis and benchmark charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.locale, "locale", "", "label language (en, es); overrides config")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error; overrides config")

	root.AddCommand(
		newCurveCmd(a),
		newRenderCmd(a),
		newSummaryCmd(a),
		newShapesCmd(),
		newDatasetCmd(),
	)

	return root
}

// load resolves configuration: file and environment first, then root flags.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = a.locale
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded", "config", a.configPath, "locale", cfg.Locale, "format", cfg.Format)

	return nil
}

func (a *app) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}

	return fallbackLogger(a.stderr)
}

// study returns the configured data file, or the built-in study.
func (a *app) study() (*study.Study, error) {
	if a.cfg.DataFile == "" {
		return study.Default(), nil
	}
	st, err := study.Load(a.cfg.DataFile)
	if err != nil {
		return nil, err
	}
	a.log().Debug("study loaded", "path", a.cfg.DataFile, "algorithms", len(st.Algorithms()), "benchmarks", len(st.Benchmarks()))

	return st, nil
}

func (a *app) localizer() (*i18n.Localizer, error) {
	cat, err := i18n.Load()
	if err != nil {
		return nil, err
	}
	loc := cat.Localizer(a.cfg.Locale)
	if loc.Tag().String() != a.cfg.Locale {
		a.log().Debug("locale matched", "requested", a.cfg.Locale, "using", loc.Tag().String())
	}

	return loc, nil
}
