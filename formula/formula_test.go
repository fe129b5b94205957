/*
 * formula_test.go, part of gostoich.
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

package formula

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseFormula(Te *testing.T) {
	cases := []struct {
		in   string
		want map[string]int
	}{
		{"H2O", map[string]int{"H": 2, "O": 1}},
		{"(H2O)1", map[string]int{"H": 2, "O": 1}},
		{"Ca(OH)2", map[string]int{"Ca": 1, "O": 2, "H": 2}},
		{"Al2(SO4)3", map[string]int{"Al": 2, "S": 3, "O": 12}},
		{"K4(Fe(CN)6)", map[string]int{"K": 4, "Fe": 1, "C": 6, "N": 6}},
		{"((CH3)2)2", map[string]int{"C": 4, "H": 12}},
		{"CH3COOH", map[string]int{"C": 2, "H": 4, "O": 2}},
		{" Na Cl ", map[string]int{"Na": 1, "Cl": 1}},
		{"Xx3", map[string]int{"Xx": 3}},
		{"H2(O", map[string]int{"H": 2}}, //unclosed groups are dropped
		{"", map[string]int{}},
		{"h2o", map[string]int{}},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.in)
		if err != nil {
			Te.Errorf("%q: unexpected error %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got.Map(), c.want) {
			Te.Errorf("%q: got %v want %v", c.in, got.Map(), c.want)
		}
	}
}

func TestRedundantGroup(Te *testing.T) {
	a, _ := ParseFormula("(H2O)1")
	b, _ := ParseFormula("H2O")
	if !a.Equal(b) {
		Te.Errorf("%v and %v should be equal", a, b)
	}
}

func TestFirstSeenOrder(Te *testing.T) {
	ec, err := ParseFormula("Ca(OH)2")
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(ec.Symbols(), []string{"Ca", "O", "H"}) {
		Te.Errorf("wrong order %v", ec.Symbols())
	}
	j, err := json.Marshal(ec)
	if err != nil {
		Te.Fatal(err)
	}
	if string(j) != `{"Ca":1,"O":2,"H":2}` {
		Te.Errorf("wrong JSON %s", j)
	}
	if ec.String() != "Ca:1 O:2 H:2" {
		Te.Errorf("wrong string %s", ec.String())
	}
}

func TestFormulaErrors(Te *testing.T) {
	for _, in := range []string{"H2O)", ")", "H0", "(OH)0", "C99999999999999999999999", "(H4611686018427387904)2", "H9223372036854775807H"} {
		_, err := ParseFormula(in)
		var se *SyntaxError
		if !errors.As(err, &se) {
			Te.Errorf("%q: expected a syntax error, got %v", in, err)
			continue
		}
		if se.Input != in {
			Te.Errorf("%q: error refers to %q", in, se.Input)
		}
	}
	_, err := ParseFormula("H2O)")
	if se := err.(*SyntaxError); se.Pos != 3 {
		Te.Errorf("wrong position %d", se.Pos)
	}
}

func TestScaleMerge(Te *testing.T) {
	ec, _ := ParseFormula("H2O")
	s, err := ec.Scale(3)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Count("H") != 6 || s.Count("O") != 3 || ec.Count("H") != 2 {
		Te.Errorf("bad scaling %v (original %v)", s, ec)
	}
	ec.Add("H", 0)
	ec.Add("N", -1)
	if ec.Has("N") || ec.Len() != 2 {
		Te.Errorf("non-positive counts must not be stored: %v", ec)
	}
	var zero ElementCount
	zero.Add("C", 1)
	if zero.Count("C") != 1 {
		Te.Error("zero-value ElementCount should be usable")
	}
}

func TestCountOverflow(Te *testing.T) {
	ec := NewElementCount()
	ec.Add("C", 1)
	if err := ec.Add("C", math.MaxInt); !errors.Is(err, ErrOverflow) {
		Te.Errorf("expected overflow, got %v", err)
	}
	if ec.Count("C") != 1 {
		Te.Errorf("failed Add changed the count: %v", ec)
	}
	big := NewElementCount()
	big.Add("H", 2)
	big.Add("O", math.MaxInt/2+1)
	if err := ec.Merge(big, 2); !errors.Is(err, ErrOverflow) {
		Te.Errorf("expected overflow, got %v", err)
	}
	if ec.Has("H") || ec.Len() != 1 {
		Te.Errorf("failed Merge changed the receiver: %v", ec)
	}
	if _, err := big.Scale(2); !errors.Is(err, ErrOverflow) {
		Te.Errorf("expected overflow, got %v", err)
	}
}
