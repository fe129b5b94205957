/*
 * stoich.go, part of gostoich.
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
	"math"
	"strings"

	"github.com/rmera/gostoich/formula"
	"gonum.org/v1/gonum/floats"
)

//Reactant is a measured amount of one reactant. If both Moles and Mass
//are given, Moles is used. A zero Purity means 100%.
type Reactant struct {
	Formula string   `json:"formula" validate:"required"`
	Mass    *float64 `json:"mass,omitempty" validate:"omitempty,gte=0"`  //g
	Moles   *float64 `json:"moles,omitempty" validate:"omitempty,gte=0"` //mol
	Purity  float64  `json:"purity,omitempty" validate:"gte=0,lte=100"`  //%
}

//Actual is the amount of product actually obtained. Mass is preferred over Moles.
type Actual struct {
	Formula string   `json:"formula" validate:"required"`
	Mass    *float64 `json:"mass,omitempty" validate:"omitempty,gte=0"`
	Moles   *float64 `json:"moles,omitempty" validate:"omitempty,gte=0"`
}

//ReactantAmount is a Reactant after normalization.
type ReactantAmount struct {
	Formula        string  `json:"formula"`
	Coefficient    int     `json:"coefficient"`
	InEquation     bool    `json:"inEquation"` //false if the formula matched no reactant; Coefficient is then 1.
	MolarMass      float64 `json:"molarMass"`
	Moles          float64 `json:"moles"`
	Mass           float64 `json:"mass"` //initial mass, given or derived from the moles
	Purity         float64 `json:"purity"`
	EffectiveMoles float64 `json:"effectiveMoles"`
	Ratio          float64 `json:"ratio"` //EffectiveMoles/Coefficient
}

//Limiting identifies the limiting reagent. Ratio scales everything downstream.
type Limiting struct {
	Formula        string  `json:"formula"`
	Coefficient    int     `json:"coefficient"`
	EffectiveMoles float64 `json:"effectiveMoles"`
	Ratio          float64 `json:"ratio"`
}

//Excess is what is left of a reactant once the limiting reagent is used up.
//MolesRemaining can be negative if the input was inconsistent; it is
//reported as it is.
type Excess struct {
	Formula        string  `json:"formula"`
	MolesInitial   float64 `json:"molesInitial"`
	MolesUsed      float64 `json:"molesUsed"`
	MolesRemaining float64 `json:"molesRemaining"`
	MassRemaining  float64 `json:"massRemaining"`
}

//ProductYield is the theoretical yield of one product.
type ProductYield struct {
	Formula          string  `json:"formula"`
	Coefficient      int     `json:"coefficient"`
	MolarMass        float64 `json:"molarMass"`
	MolesTheoretical float64 `json:"molesTheoretical"`
	MassTheoretical  float64 `json:"massTheoretical"`
}

//Result gathers everything Calculate obtains.
type Result struct {
	Equation             string           `json:"equation"` //canonical form
	Reactants            []ReactantAmount `json:"reactants"`
	Limiting             Limiting         `json:"limiting"`
	Excess               []Excess         `json:"excess"`
	Products             []ProductYield   `json:"products"`
	TheoreticalTotalMass float64          `json:"theoreticalTotalMass"`
	ActualMass           *float64         `json:"actualMass,omitempty"`
	PercentYield         *float64         `json:"percentYield,omitempty"` //not clamped, can exceed 100
}

//Product returns the yield for formula, if it is a product.
func (r *Result) Product(f string) (ProductYield, bool) {
	for _, p := range r.Products {
		if p.Formula == f {
			return p, true
		}
	}
	return ProductYield{}, false
}

//PercentYield returns 100*actual/theoretical, or 0 if theoretical is 0.
func PercentYield(actualMass, theoreticalMass float64) float64 {
	if theoreticalMass == 0 {
		return 0
	}
	return actualMass / theoreticalMass * 100
}

//Calculate runs the whole stoichiometric calculation for a balanced equation: finds the
//limiting reagent among the reactants given, what is left of the others, and the
//theoretical yield of every product. If actual is not nil and names a product, the percent
//yield is also obtained. Invalid or unbalanced equations abort the calculation with
//an *InvalidEquationError or *UnbalancedEquationError.
//Amounts are assumed to be checked already (see ValidateInput).
func Calculate(equation string, reactants []Reactant, actual *Actual, t Table) (*Result, error) {
	t = tableOr(t)
	if v := ValidateEquation(equation, t); !v.Valid {
		return nil, &InvalidEquationError{Equation: equation, Reason: v.Error, deco: deco{"Calculate"}}
	}
	eq, err := formula.ParseEquation(equation)
	if err != nil {
		return nil, &InvalidEquationError{Equation: equation, Reason: err.Error(), deco: deco{"Calculate"}}
	}
	bal, err := EquationBalance(eq)
	if err != nil {
		err.(Error).Decorate("Calculate")
		return nil, err
	}
	if !bal.Balanced {
		return nil, &UnbalancedEquationError{Equation: equation, Balance: bal, deco: deco{"Calculate"}}
	}
	if len(reactants) == 0 {
		return nil, &InputError{What: "reactants", Err: fmt.Errorf("no reactant amounts given"), deco: deco{"Calculate"}}
	}
	res := &Result{Equation: eq.String()}
	res.Reactants, err = normalize(eq, reactants, t)
	if err != nil {
		err.(Error).Decorate("Calculate")
		return nil, err
	}
	ratios := make([]float64, len(res.Reactants))
	for i, r := range res.Reactants {
		ratios[i] = r.Ratio
	}
	//MinIdx keeps the first of several equal minima.
	limidx := floats.MinIdx(ratios)
	lim := res.Reactants[limidx]
	res.Limiting = Limiting{Formula: lim.Formula, Coefficient: lim.Coefficient, EffectiveMoles: lim.EffectiveMoles, Ratio: lim.Ratio}
	for i, r := range res.Reactants {
		if i == limidx || !r.InEquation {
			continue
		}
		used := lim.Ratio * float64(r.Coefficient)
		left := r.EffectiveMoles - used
		res.Excess = append(res.Excess, Excess{
			Formula:        r.Formula,
			MolesInitial:   r.EffectiveMoles,
			MolesUsed:      used,
			MolesRemaining: left,
			MassRemaining:  left * r.MolarMass,
		})
	}
	masses := make([]float64, 0, len(eq.Products))
	for _, p := range eq.Products {
		mm, err := MolarMass(p.Formula, t)
		if err != nil {
			err.(Error).Decorate("Calculate")
			return nil, err
		}
		y := ProductYield{Formula: p.Formula, Coefficient: p.Coefficient, MolarMass: mm}
		y.MolesTheoretical = lim.Ratio * float64(p.Coefficient)
		y.MassTheoretical = y.MolesTheoretical * mm
		res.Products = append(res.Products, y)
		masses = append(masses, y.MassTheoretical)
	}
	res.TheoreticalTotalMass = floats.Sum(masses)
	if actual != nil {
		if err := percentYield(res, actual, t); err != nil {
			err.(Error).Decorate("Calculate")
			return nil, err
		}
	}
	return res, nil
}

func normalize(eq *formula.Equation, reactants []Reactant, t Table) ([]ReactantAmount, error) {
	ret := make([]ReactantAmount, 0, len(reactants))
	for _, r := range reactants {
		a := ReactantAmount{Formula: strings.TrimSpace(r.Formula), Coefficient: 1, Purity: r.Purity}
		mm, err := MolarMass(a.Formula, t)
		if err != nil {
			err.(Error).Decorate("normalize")
			return nil, err
		}
		a.MolarMass = mm
		switch {
		case r.Moles != nil:
			a.Moles = *r.Moles
		case r.Mass != nil:
			a.Moles = *r.Mass / mm
		}
		if r.Mass != nil {
			a.Mass = *r.Mass
		} else {
			a.Mass = a.Moles * mm
		}
		if a.Purity == 0 || math.IsNaN(a.Purity) {
			a.Purity = 100
		}
		if c, ok := eq.Find(formula.Left, a.Formula); ok {
			a.Coefficient = c.Coefficient
			a.InEquation = true
		}
		a.EffectiveMoles = a.Moles * a.Purity / 100
		a.Ratio = a.EffectiveMoles / float64(a.Coefficient)
		ret = append(ret, a)
	}
	return ret, nil
}

//percentYield fills the actual mass and percent yield of res. Nothing is set
//if actual names no product or carries no amount.
func percentYield(res *Result, actual *Actual, t Table) error {
	theo, ok := res.Product(strings.TrimSpace(actual.Formula))
	if !ok {
		return nil
	}
	var mass float64
	switch {
	case actual.Mass != nil:
		mass = *actual.Mass
	case actual.Moles != nil:
		m, err := MolesToMass(*actual.Moles, theo.Formula, t)
		if err != nil {
			return err
		}
		mass = m
	default:
		return nil
	}
	p := PercentYield(mass, theo.MassTheoretical)
	res.ActualMass = &mass
	res.PercentYield = &p
	return nil
}
