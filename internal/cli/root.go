/*
 * root.go, part of gostoich.
 *
 *
 * Copyright 2024 The goStoich authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package cli implements the stoich command line program.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmera/gostoich/elements"
	"github.com/rmera/gostoich/format"
	"github.com/rmera/gostoich/internal/config"
	"github.com/rmera/gostoich/internal/logger"
)

//version is set at build time with -ldflags "-X ...cli.version=..."
var version = "dev"

type options struct {
	configPath string
	decimals   int
	elements   string
	logLevel   string
	markup     string
	verbose    bool
}

//env is what the commands get once the configuration has been read.
type env struct {
	cfg   *config.Config
	table *elements.Table
	log   *slog.Logger
}

func (e *env) num(v float64) string {
	return format.Number(v, e.cfg.Decimals)
}

func (e *env) mark(s string) string {
	return format.Markup(e.cfg.Markup).Apply(s)
}

//NewRootCmd builds the whole command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	e := &env{}
	root := &cobra.Command{
		Use:   "stoich",
		Short: "Stoichiometry for balanced chemical equations",
		Long: `stoich finds the limiting reagent, the leftovers of the excess reagents and
the theoretical and percent yields for a balanced chemical equation, given
measured amounts of the reactants.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd, opts)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "configuration file (default $HOME/.stoich/config.toml)")
	pf.IntVar(&opts.decimals, "decimals", 3, "decimals in the printed numbers")
	pf.StringVar(&opts.elements, "elements", "", "custom element table (JSON, optionally .gz or .zst)")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&opts.markup, "markup", "", "formula markup: plain, unicode or html")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every step of the calculations")

	root.AddCommand(
		newMassCmd(e),
		newBalanceCmd(e),
		newValidateCmd(e),
		newCalcCmd(e),
		newJSONCmd(e),
		newConfigCmd(e, opts),
		newVersionCmd(),
	)
	return root
}

//setup reads the configuration, applies the flags on top of it,
//and prepares the logger and element table.
func (e *env) setup(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("decimals") {
		cfg.Decimals = opts.decimals
	}
	if flags.Changed("elements") {
		cfg.Elements = opts.elements
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("markup") {
		cfg.Markup = opts.markup
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	e.table, err = cfg.Table()
	if err != nil {
		return err
	}
	e.log.Debug("configuration loaded", "decimals", cfg.Decimals, "elements", e.table.Len(), "markup", cfg.Markup)
	return nil
}

//Execute runs the program with the command line arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
