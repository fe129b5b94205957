/*
 * balance.go, part of gostoich.
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
	"text/tabwriter"

	"github.com/spf13/cobra"

	stoich "github.com/rmera/gostoich"
)

var errUnbalanced = errors.New("the equation is not balanced")

func newBalanceCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "balance EQUATION",
		Short:   "Check that an equation is balanced, element by element",
		Example: `  stoich balance "2H2 + O2 -> 2H2O"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := stoich.CheckBalance(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			state := "balanced"
			if !b.Balanced {
				state = "NOT balanced"
			}
			fmt.Fprintf(out, "%s: %s\n", e.mark(args[0]), state)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "element\treactants\tproducts\t")
			for _, s := range b.Order {
				d := b.Details[s]
				mark := ""
				if !d.Balanced {
					mark = "<-"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s, d.Reactants, d.Products, mark)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if !b.Balanced {
				return errUnbalanced
			}
			return nil
		},
	}
}
