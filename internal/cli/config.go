/*
 * config.go, part of gostoich.
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

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/gostoich/internal/config"
)

func newConfigCmd(e *env, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Show the settings in effect or create a configuration file.

Settings are read from $HOME/.stoich/config.toml, or the file given with --config.
Command line flags take precedence over the file.`,
	}
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.cfg.Encode(cmd.OutOrStdout())
		},
	}
	var force bool
	initc := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		//an existing file may be broken, and this command is how to replace it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			_, err := os.Stat(path)
			if err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Default().Write(path); err != nil {
				return err
			}
			cmd.Printf("Configuration written to %s\n", path)
			return nil
		},
	}
	initc.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(show, initc)
	return cmd
}
