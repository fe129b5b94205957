/*
 * conversion_test.go, part of gostoich.
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

func TestMolarMass(Te *testing.T) {
	cases := map[string]float64{
		"H2O":       18.015,
		"Ca(OH)2":   74.092,
		"Al2(SO4)3": 342.132,
		"NaCl":      58.44,
	}
	for fo, want := range cases {
		mm, err := MolarMass(fo, nil)
		if err != nil {
			Te.Errorf("%s: %v", fo, err)
			continue
		}
		if !scalar.EqualWithinAbs(mm, want, 1e-3) {
			Te.Errorf("%s: got %g want %g", fo, mm, want)
		}
	}
	_, err := MolarMass("Xx2O", nil)
	var ue *UnknownElementError
	if !errors.As(err, &ue) || len(ue.Symbols) != 1 || ue.Symbols[0] != "Xx" {
		Te.Errorf("expected an unknown element error for Xx, got %v", err)
	}
	if mm, err := MolarMass("", nil); err != nil || mm != 0 {
		Te.Errorf("empty formula should weigh 0, got %g %v", mm, err)
	}
	var nilt *elements.Table
	if mm, err := MolarMass("H2O", nilt); err != nil || !scalar.EqualWithinAbs(mm, 18.015, 1e-3) {
		Te.Errorf("a nil *elements.Table should fall back to the built-in one, got %g %v", mm, err)
	}
}

func TestRoundTrip(Te *testing.T) {
	for _, fo := range []string{"H2O", "C6H12O6", "K4(Fe(CN)6)", "Og"} {
		for _, m := range []float64{1e-6, 0.5, 18, 12345.678} {
			n, err := MassToMoles(m, fo, nil)
			if err != nil {
				Te.Fatal(err)
			}
			back, err := MolesToMass(n, fo, nil)
			if err != nil {
				Te.Fatal(err)
			}
			if !scalar.EqualWithinRel(back, m, 1e-12) {
				Te.Errorf("%s: %g became %g", fo, m, back)
			}
		}
	}
	if _, err := MassToMoles(1, "Qq", nil); err == nil {
		Te.Error("unknown elements must fail")
	}
}

func TestComposition(Te *testing.T) {
	sh, err := Composition("H2O", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(sh) != 2 || sh[0].Symbol != "H" || sh[1].Symbol != "O" || sh[0].Count != 2 {
		Te.Fatalf("wrong composition %+v", sh)
	}
	if !scalar.EqualWithinAbs(sh[0].Percent+sh[1].Percent, 100, 1e-9) {
		Te.Errorf("percents must add up to 100: %+v", sh)
	}
	if !scalar.EqualWithinAbs(sh[1].Percent, 88.81, 0.01) {
		Te.Errorf("wrong O percent %g", sh[1].Percent)
	}
	if _, err := Composition("Xx", nil); err == nil {
		Te.Error("unknown elements must fail")
	}
}
