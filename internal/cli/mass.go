/*
 * mass.go, part of gostoich.
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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	stoich "github.com/rmera/gostoich"
)

func newMassCmd(e *env) *cobra.Command {
	var composition bool
	cmd := &cobra.Command{
		Use:   "mass FORMULA...",
		Short: "Print the molar mass of formulas",
		Example: `  stoich mass H2O "Al2(SO4)3"
  stoich mass -c C6H12O6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, f := range args {
				mm, err := stoich.MolarMass(f, e.table)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s g/mol\n", e.mark(f), e.num(mm))
				if !composition {
					continue
				}
				shares, err := stoich.Composition(f, e.table)
				if err != nil {
					return err
				}
				for _, s := range shares {
					fmt.Fprintf(w, "  %s\t%d\t%s g/mol\t%s %%\n", s.Symbol, s.Count, e.num(s.Mass), e.num(s.Percent))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&composition, "composition", "c", false, "also print the percent composition by mass")
	return cmd
}
