/*
 * stoich_test.go, part of gostoich.
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
	"errors"
	"testing"

	"github.com/rmera/gostoich/elements"
	"gonum.org/v1/gonum/floats/scalar"
)

const water = "2H2 + O2 -> 2H2O"

func f(v float64) *float64 { return &v }

//TestWaterLimitingO2 has more hydrogen than needed, so O2 limits.
func TestWaterLimitingO2(Te *testing.T) {
	res, err := Calculate(water, []Reactant{{Formula: "H2", Moles: f(4), Purity: 100}, {Formula: "O2", Moles: f(1), Purity: 100}}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Limiting.Formula != "O2" || res.Limiting.Ratio != 1 {
		Te.Errorf("wrong limiting reagent %+v", res.Limiting)
	}
	p, ok := res.Product("H2O")
	if !ok {
		Te.Fatal("no H2O in the products")
	}
	if p.MolesTheoretical != 2 || !scalar.EqualWithinAbs(p.MassTheoretical, 36.03, 1e-3) {
		Te.Errorf("wrong yield %+v", p)
	}
	if len(res.Excess) != 1 {
		Te.Fatalf("expected one excess reagent, got %v", res.Excess)
	}
	ex := res.Excess[0]
	if ex.Formula != "H2" || ex.MolesUsed != 2 || ex.MolesRemaining != 2 || !scalar.EqualWithinAbs(ex.MassRemaining, 4.032, 1e-9) {
		Te.Errorf("wrong excess %+v", ex)
	}
	if res.PercentYield != nil {
		Te.Error("no percent yield was requested")
	}
	if !scalar.EqualWithinAbs(res.TheoreticalTotalMass, p.MassTheoretical, 1e-12) {
		Te.Errorf("total mass %g", res.TheoreticalTotalMass)
	}
}

func TestWaterPercentYield(Te *testing.T) {
	rs := []Reactant{{Formula: "H2", Moles: f(2), Purity: 100}, {Formula: "O2", Moles: f(2), Purity: 100}}
	res, err := Calculate(water, rs, &Actual{Formula: "H2O", Mass: f(18)}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Limiting.Formula != "H2" {
		Te.Errorf("H2 should limit, got %s", res.Limiting.Formula)
	}
	if !scalar.EqualWithinAbs(res.Products[0].MassTheoretical, 36.03, 1e-3) {
		Te.Errorf("wrong theoretical mass %g", res.Products[0].MassTheoretical)
	}
	if res.PercentYield == nil || !scalar.EqualWithinAbs(*res.PercentYield, 50, 0.1) {
		Te.Errorf("wrong percent yield %v", res.PercentYield)
	}
	//moles are converted to mass, mass wins if both are given.
	res, err = Calculate(water, rs, &Actual{Formula: "H2O", Moles: f(1)}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(*res.PercentYield, 50, 1e-9) {
		Te.Errorf("wrong percent yield from moles %g", *res.PercentYield)
	}
	res, err = Calculate(water, rs, &Actual{Formula: "H2O", Moles: f(1), Mass: f(72.06)}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(*res.PercentYield, 200, 1e-9) {
		Te.Errorf("percent yield should not be clamped: %g", *res.PercentYield)
	}
	res, _ = Calculate(water, rs, &Actual{Formula: "H2O2", Mass: f(1)}, nil)
	if res.PercentYield != nil {
		Te.Error("a formula that is not a product gives no percent yield")
	}
}

func TestPercentYieldLinear(Te *testing.T) {
	T := 36.03
	for _, c := range [][2]float64{{0, 0}, {T, 100}, {2 * T, 200}} {
		if got := PercentYield(c[0], T); !scalar.EqualWithinAbs(got, c[1], 1e-9) {
			Te.Errorf("PercentYield(%g, %g) = %g, want %g", c[0], T, got, c[1])
		}
	}
	if PercentYield(5, 0) != 0 {
		Te.Error("zero theoretical mass must give 0")
	}
}

func TestScaleInvariance(Te *testing.T) {
	eq := "N2 + 3H2 -> 2NH3"
	base := []Reactant{{Formula: "N2", Mass: f(28), Purity: 90}, {Formula: "H2", Moles: f(2.5)}}
	r1, err := Calculate(eq, base, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	double := []Reactant{{Formula: "N2", Mass: f(56), Purity: 90}, {Formula: "H2", Moles: f(5)}}
	r2, err := Calculate(eq, double, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r1.Limiting.Formula != r2.Limiting.Formula {
		Te.Errorf("limiting reagent changed with scale: %s vs %s", r1.Limiting.Formula, r2.Limiting.Formula)
	}
	if !scalar.EqualWithinRel(2*r1.Products[0].MolesTheoretical, r2.Products[0].MolesTheoretical, 1e-12) {
		Te.Errorf("yields don't scale: %g %g", r1.Products[0].MolesTheoretical, r2.Products[0].MolesTheoretical)
	}
}

//TestPurityAndTies also checks that the first of two equal ratios wins.
func TestPurityAndTies(Te *testing.T) {
	res, err := Calculate(water, []Reactant{{Formula: "H2", Moles: f(4), Purity: 50}, {Formula: "O2", Moles: f(1)}}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Reactants[0].EffectiveMoles != 2 || res.Reactants[1].Purity != 100 {
		Te.Errorf("wrong normalization %+v", res.Reactants)
	}
	if res.Limiting.Formula != "H2" {
		Te.Errorf("on ties the first reactant must win, got %s", res.Limiting.Formula)
	}
	if res.Excess[0].MolesRemaining != 0 {
		Te.Errorf("nothing should be left, got %g", res.Excess[0].MolesRemaining)
	}
}

func TestMassInput(Te *testing.T) {
	res, err := Calculate(water, []Reactant{{Formula: "H2", Mass: f(4.032)}, {Formula: "O2", Mass: f(15.999), Moles: f(3)}}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	h2 := res.Reactants[0]
	if !scalar.EqualWithinAbs(h2.Moles, 2, 1e-12) || h2.Mass != 4.032 {
		Te.Errorf("wrong H2 normalization %+v", h2)
	}
	o2 := res.Reactants[1]
	if o2.Moles != 3 || o2.Mass != 15.999 {
		Te.Errorf("moles must take precedence over mass %+v", o2)
	}
	if res.Limiting.Formula != "H2" {
		Te.Errorf("wrong limiting reagent %s", res.Limiting.Formula)
	}
	if ex := res.Excess[0]; ex.MolesRemaining < 1.99 || ex.MolesRemaining > 2.01 {
		Te.Errorf("wrong excess %+v", ex)
	}
}

func TestReactantNotInEquation(Te *testing.T) {
	res, err := Calculate(water, []Reactant{{Formula: "H2", Moles: f(4)}, {Formula: "O2", Moles: f(1)}, {Formula: "N2", Moles: f(10)}}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Reactants[2].InEquation || res.Reactants[2].Coefficient != 1 {
		Te.Errorf("N2 should fall back to coefficient 1: %+v", res.Reactants[2])
	}
	for _, e := range res.Excess {
		if e.Formula == "N2" {
			Te.Error("reactants outside the equation must not appear as excess")
		}
	}
}

func TestCalculateErrors(Te *testing.T) {
	_, err := Calculate("H2 + O2 -> H2O", []Reactant{{Formula: "H2", Moles: f(1)}}, nil, nil)
	var unb *UnbalancedEquationError
	if !errors.As(err, &unb) {
		Te.Fatalf("expected an unbalanced equation error, got %v", err)
	}
	if unb.Balance.Details["O"].Balanced {
		Te.Error("O should be reported as unbalanced")
	}
	var inv *InvalidEquationError
	if _, err = Calculate("Xx2 -> Xx2", []Reactant{{Formula: "Xx2", Moles: f(1)}}, nil, nil); !errors.As(err, &inv) {
		Te.Errorf("expected an invalid equation error, got %v", err)
	}
	if _, err = Calculate("H2 -> -> H2", nil, nil, nil); !errors.As(err, &inv) {
		Te.Errorf("expected an invalid equation error, got %v", err)
	}
	var ie *InputError
	if _, err = Calculate(water, nil, nil, nil); !errors.As(err, &ie) {
		Te.Errorf("expected an input error, got %v", err)
	}
	var ue *UnknownElementError
	if _, err = Calculate(water, []Reactant{{Formula: "Qq", Moles: f(1)}}, nil, nil); !errors.As(err, &ue) {
		Te.Errorf("expected an unknown element error, got %v", err)
	}
	if d := ue.Decorate(""); len(d) < 2 || d[len(d)-1] != "Calculate" {
		Te.Errorf("wrong decoration %v", d)
	}
}

func TestFakeTable(Te *testing.T) {
	tab, err := elements.New([]elements.Element{{Symbol: "H", Mass: 1}, {Symbol: "O", Mass: 16}})
	if err != nil {
		Te.Fatal(err)
	}
	res, err := Calculate(water, []Reactant{{Formula: "H2", Moles: f(4)}, {Formula: "O2", Moles: f(1)}}, nil, tab)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Products[0].MassTheoretical != 36 {
		Te.Errorf("fake table not used, got %g", res.Products[0].MassTheoretical)
	}
	var inv *InvalidEquationError
	if _, err := Calculate("CH4 + 2O2 -> CO2 + 2H2O", []Reactant{{Formula: "CH4", Moles: f(1)}}, nil, tab); !errors.As(err, &inv) {
		Te.Errorf("C is not in the fake table, got %v", err)
	}
}
