/*
 * calc.go, part of gostoich.
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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	stoich "github.com/rmera/gostoich"
)

func newCalcCmd(e *env) *cobra.Command {
	var (
		reactants []string
		actual    string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "calc EQUATION",
		Short: "Find the limiting reagent and the yields of a balanced equation",
		Example: `  stoich calc "2H2 + O2 -> 2H2O" -r H2:moles=4 -r O2:mass=32,purity=95
  stoich calc "2H2 + O2 -> 2H2O" -r H2:moles=2 -r O2:moles=2 --actual H2O:mass=18`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := make([]stoich.Reactant, 0, len(reactants))
			for _, arg := range reactants {
				r, err := parseReactant(arg)
				if err != nil {
					return err
				}
				rs = append(rs, r)
			}
			var act *stoich.Actual
			if actual != "" {
				var err error
				if act, err = parseActual(actual); err != nil {
					return err
				}
			}
			if err := stoich.ValidateInput(rs, act); err != nil {
				return err
			}
			e.log.Debug("input validated", "equation", args[0], "reactants", len(rs), "actual", act != nil)
			res, err := stoich.Calculate(args[0], rs, act, e.table)
			if err != nil {
				e.log.Debug("calculation failed", "error", err)
				return err
			}
			e.log.Debug("limiting reagent", "formula", res.Limiting.Formula, "ratio", res.Limiting.Ratio)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printResult(cmd, e, res)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&reactants, "reactant", "r", nil, "reactant amount as FORMULA:mass=G|moles=N[,purity=P] (repeatable)")
	f.StringVar(&actual, "actual", "", "product actually obtained, as FORMULA:mass=G|moles=N")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("reactant")
	return cmd
}

func printResult(cmd *cobra.Command, e *env, res *stoich.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Equation: %s\n", e.mark(res.Equation))
	fmt.Fprintln(out, "Reactants:")
	for _, r := range res.Reactants {
		note := ""
		if !r.InEquation {
			note = " (not in the equation, coefficient 1 assumed)"
		}
		fmt.Fprintf(out, "  %s: %s g, %s mol, purity %s %%%s\n", e.mark(r.Formula), e.num(r.Mass), e.num(r.Moles), e.num(r.Purity), note)
	}
	lim := res.Limiting
	fmt.Fprintf(out, "Limiting reagent: %s (%s mol, ratio %s)\n", e.mark(lim.Formula), e.num(lim.EffectiveMoles), e.num(lim.Ratio))
	if len(res.Excess) > 0 {
		fmt.Fprintln(out, "Excess reagents:")
		for _, x := range res.Excess {
			fmt.Fprintf(out, "  %s: %s mol used, %s mol left (%s g)\n", e.mark(x.Formula), e.num(x.MolesUsed), e.num(x.MolesRemaining), e.num(x.MassRemaining))
		}
	}
	fmt.Fprintln(out, "Theoretical yield:")
	for _, p := range res.Products {
		fmt.Fprintf(out, "  %s: %s mol, %s g\n", e.mark(p.Formula), e.num(p.MolesTheoretical), e.num(p.MassTheoretical))
	}
	if res.PercentYield == nil {
		return
	}
	fmt.Fprintf(out, "Percent yield: %s %%\n", e.num(*res.PercentYield))
	if *res.PercentYield > 100 {
		e.log.Warn("percent yield above 100%, check the measured amount of product", "percent", *res.PercentYield)
	}
}
