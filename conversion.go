/*
 * conversion.go, part of gostoich.
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
	"github.com/rmera/gostoich/formula"
	"gonum.org/v1/gonum/floats"
)

//MolarMass returns the molar mass of formula in g/mol. Any symbol missing from
//the table gives an *UnknownElementError, never a zero mass.
//A nil table means the built-in one.
func MolarMass(f string, t Table) (float64, error) {
	ec, err := formula.ParseFormula(f)
	if err != nil {
		err.(*formula.SyntaxError).Decorate("MolarMass")
		return 0, err
	}
	return countMass(f, ec, tableOr(t))
}

func countMass(f string, ec *formula.ElementCount, t Table) (float64, error) {
	var mass float64
	var unknown []string
	for _, s := range ec.Symbols() {
		m, ok := t.Mass(s)
		if !ok {
			unknown = append(unknown, s)
			continue
		}
		mass += m * float64(ec.Count(s))
	}
	if len(unknown) > 0 {
		return 0, &UnknownElementError{Formula: f, Symbols: unknown, deco: deco{"MolarMass"}}
	}
	return mass, nil
}

//MassToMoles converts a mass in g of formula to moles.
//An empty formula has zero molar mass, so the result follows
//floating point rules (+Inf or NaN).
func MassToMoles(mass float64, f string, t Table) (float64, error) {
	mm, err := MolarMass(f, t)
	if err != nil {
		return 0, err
	}
	return mass / mm, nil
}

//MolesToMass converts an amount in moles of formula to g.
func MolesToMass(moles float64, f string, t Table) (float64, error) {
	mm, err := MolarMass(f, t)
	if err != nil {
		return 0, err
	}
	return moles * mm, nil
}

//Share is the contribution of one element to the mass of a compound.
type Share struct {
	Symbol  string  `json:"symbol"`
	Count   int     `json:"count"`
	Mass    float64 `json:"mass"`    //g/mol contributed by all the atoms of the element
	Percent float64 `json:"percent"` //of the molar mass
}

//Composition returns the percent composition by mass of formula, one Share
//per element, in the order the elements appear in the formula.
func Composition(f string, t Table) ([]Share, error) {
	t = tableOr(t)
	ec, err := formula.ParseFormula(f)
	if err != nil {
		err.(*formula.SyntaxError).Decorate("Composition")
		return nil, err
	}
	total, err := countMass(f, ec, t)
	if err != nil {
		err.(Error).Decorate("Composition")
		return nil, err
	}
	symbols := ec.Symbols()
	masses := make([]float64, len(symbols))
	for i, s := range symbols {
		m, _ := t.Mass(s)
		masses[i] = m * float64(ec.Count(s))
	}
	percents := make([]float64, len(masses))
	if total > 0 {
		floats.ScaleTo(percents, 100/total, masses)
	}
	ret := make([]Share, len(symbols))
	for i, s := range symbols {
		ret[i] = Share{Symbol: s, Count: ec.Count(s), Mass: masses[i], Percent: percents[i]}
	}
	return ret, nil
}
