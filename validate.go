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

package stoich

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rmera/gostoich/formula"
)

//ElementValidation reports the symbols of a formula that are missing from the table.
type ElementValidation struct {
	Valid          bool     `json:"valid"`
	InvalidSymbols []string `json:"invalidSymbols"`
	Error          string   `json:"error,omitempty"` //set if the formula could not be parsed at all
}

//ValidateElements checks every symbol of the formula against the table. It never fails;
//unknown symbols are reported in first-seen order.
func ValidateElements(f string, t Table) ElementValidation {
	ec, err := formula.ParseFormula(f)
	if err != nil {
		return ElementValidation{Valid: false, InvalidSymbols: []string{}, Error: err.Error()}
	}
	inv := unknownSymbols(ec, tableOr(t))
	return ElementValidation{Valid: len(inv) == 0, InvalidSymbols: inv}
}

func unknownSymbols(ec *formula.ElementCount, t Table) []string {
	ret := []string{}
	for _, s := range ec.Symbols() {
		if _, ok := t.Mass(s); !ok {
			ret = append(ret, s)
		}
	}
	return ret
}

//EquationValidation is the outcome of ValidateEquation.
type EquationValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

//ValidateEquation checks that the equation can be parsed, that it has at least
//a reactant and a product, and that all compounds are made of known elements.
//The first compound with unknown elements stops the check. Balance is not
//checked here, see CheckBalance.
func ValidateEquation(equation string, t Table) EquationValidation {
	eq, err := formula.ParseEquation(equation)
	if err != nil {
		return EquationValidation{Error: err.Error()}
	}
	if len(eq.Reactants) == 0 || len(eq.Products) == 0 {
		return EquationValidation{Error: "the equation needs at least one reactant and one product"}
	}
	t = tableOr(t)
	for _, side := range []formula.Side{formula.Left, formula.Right} {
		for i, c := range eq.Terms(side) {
			if c.Elements.Len() == 0 {
				return EquationValidation{Error: fmt.Sprintf("term %d of the %s has no elements", i+1, side)}
			}
			if inv := unknownSymbols(c.Elements, t); len(inv) > 0 {
				return EquationValidation{Error: fmt.Sprintf("Unrecognized elements in %s: %s", c.Formula, strings.Join(inv, ", "))}
			}
		}
	}
	return EquationValidation{Valid: true}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(Reactant)
		if r.Mass == nil && r.Moles == nil {
			sl.ReportError(r.Mass, "Mass", "Mass", "amount", "")
		}
	}, Reactant{})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		a := sl.Current().Interface().(Actual)
		if a.Mass == nil && a.Moles == nil {
			sl.ReportError(a.Mass, "Mass", "Mass", "amount", "")
		}
	}, Actual{})
	return v
}

//ValidateInput checks the amounts given to Calculate: formulas are required,
//purities must be in [0,100] and every reactant, and the actual product if given,
//needs a non-negative mass or amount of moles. Calculate itself assumes the
//amounts have been checked, so front ends should call this first.
func ValidateInput(reactants []Reactant, actual *Actual) error {
	if len(reactants) == 0 {
		return &InputError{What: "reactants", Err: fmt.Errorf("no reactant amounts given"), deco: deco{"ValidateInput"}}
	}
	for i, r := range reactants {
		if err := validate.Struct(r); err != nil {
			return &InputError{What: fmt.Sprintf("reactant %d (%s)", i+1, r.Formula), Err: err, deco: deco{"ValidateInput"}}
		}
	}
	if actual != nil {
		if err := validate.Struct(*actual); err != nil {
			return &InputError{What: fmt.Sprintf("actual product (%s)", actual.Formula), Err: err, deco: deco{"ValidateInput"}}
		}
	}
	return nil
}
