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

package stoich

import "github.com/rmera/gostoich/formula"

//CountAtoms sums the atoms of all the compounds, each multiplied by its coefficient.
//A total that doesn't fit in an int gives an *InputError wrapping formula.ErrOverflow.
//Compounds that come from formula.ParseEquation never overflow.
func CountAtoms(compounds []formula.Compound) (*formula.ElementCount, error) {
	ret := formula.NewElementCount()
	for _, c := range compounds {
		if err := ret.Merge(c.Elements, c.Coefficient); err != nil {
			return nil, &InputError{What: "compound " + c.String(), Err: err, deco: deco{"CountAtoms"}}
		}
	}
	return ret, nil
}

//ElementBalance compares the atoms of one element on both sides of an equation.
type ElementBalance struct {
	Reactants int  `json:"reactants"`
	Products  int  `json:"products"`
	Balanced  bool `json:"balanced"`
}

//BalanceResult is the per-element comparison of an equation.
type BalanceResult struct {
	Balanced bool                      `json:"balanced"`
	Details  map[string]ElementBalance `json:"details"`
	Order    []string                  `json:"order"` //reactant elements first, in first-seen order, then product-only ones.
}

//CheckBalance parses the equation and checks that every element has the same
//number of atoms on both sides. Only parse failures, which include overflowing
//atom counts, are returned as errors.
func CheckBalance(equation string) (*BalanceResult, error) {
	eq, err := formula.ParseEquation(equation)
	if err != nil {
		err.(*formula.SyntaxError).Decorate("CheckBalance")
		return nil, err
	}
	return EquationBalance(eq)
}

//EquationBalance checks the balance of an already parsed equation.
//An element that appears on one side only counts as 0 atoms on the other.
//The only possible error is an overflowing count, see CountAtoms.
func EquationBalance(eq *formula.Equation) (*BalanceResult, error) {
	var sides [2]*formula.ElementCount
	for i, terms := range [][]formula.Compound{eq.Reactants, eq.Products} {
		var err error
		if sides[i], err = CountAtoms(terms); err != nil {
			err.(Error).Decorate("EquationBalance")
			return nil, err
		}
	}
	left, right := sides[0], sides[1]
	ret := &BalanceResult{Balanced: true, Details: make(map[string]ElementBalance)}
	for _, side := range []*formula.ElementCount{left, right} {
		for _, s := range side.Symbols() {
			if _, ok := ret.Details[s]; ok {
				continue
			}
			d := ElementBalance{Reactants: left.Count(s), Products: right.Count(s)}
			d.Balanced = d.Reactants == d.Products
			ret.Balanced = ret.Balanced && d.Balanced
			ret.Details[s] = d
			ret.Order = append(ret.Order, s)
		}
	}
	return ret, nil
}
