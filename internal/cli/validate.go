/*
 * validate.go, part of gostoich.
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

	"github.com/spf13/cobra"

	stoich "github.com/rmera/gostoich"
)

func newValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate EQUATION",
		Short: "Check the syntax and the element symbols of an equation",
		Long: `validate checks that the equation can be read and that every element is
in the element table. It does not check the balance, see "stoich balance".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := stoich.ValidateEquation(args[0], e.table)
			if !v.Valid {
				return errors.New(v.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", e.mark(args[0]))
			return nil
		},
	}
}
