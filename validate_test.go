/*
 * validate_test.go, part of gostoich.
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
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidateElements(Te *testing.T) {
	v := ValidateElements("Xx2YyO3Zz", nil)
	if v.Valid || !reflect.DeepEqual(v.InvalidSymbols, []string{"Xx", "Yy", "Zz"}) {
		Te.Errorf("wrong validation %+v", v)
	}
	v = ValidateElements("Al2(SO4)3", nil)
	if !v.Valid || len(v.InvalidSymbols) != 0 {
		Te.Errorf("Al2(SO4)3 is valid: %+v", v)
	}
	v = ValidateElements("H2O)", nil)
	if v.Valid || v.Error == "" {
		Te.Errorf("a parse failure must be reported, got %+v", v)
	}
}

func TestValidateEquation(Te *testing.T) {
	//balance is not this function's business.
	if v := ValidateEquation("H2O -> H2 + O2", nil); !v.Valid {
		Te.Errorf("syntax and elements are fine: %+v", v)
	}
	v := ValidateEquation("Xx2 -> H2O", nil)
	if v.Valid || !strings.Contains(v.Error, "Xx") {
		Te.Errorf("Xx should be reported: %+v", v)
	}
	//only the first bad compound is reported.
	v = ValidateEquation("Qq + Xx -> H2O", nil)
	if strings.Contains(v.Error, "Xx") || !strings.Contains(v.Error, "Qq") {
		Te.Errorf("wrong report %+v", v)
	}
	for _, eq := range []string{"H2 + O2", "H2 + -> H2", "H2 -> 3", "-> H2"} {
		if v := ValidateEquation(eq, nil); v.Valid || v.Error == "" {
			Te.Errorf("%q should be invalid", eq)
		}
	}
}

func TestValidateInput(Te *testing.T) {
	good := []Reactant{{Formula: "H2", Moles: f(1)}, {Formula: "O2", Mass: f(32), Purity: 95}}
	if err := ValidateInput(good, &Actual{Formula: "H2O", Mass: f(3)}); err != nil {
		Te.Errorf("valid input rejected: %v", err)
	}
	bad := map[string][]Reactant{
		"purity":   {{Formula: "H2", Moles: f(1), Purity: 120}},
		"negative": {{Formula: "H2", Mass: f(-1)}},
		"formula":  {{Moles: f(1)}},
		"amount":   {{Formula: "H2"}},
		"empty":    {},
	}
	for name, rs := range bad {
		err := ValidateInput(rs, nil)
		var ie *InputError
		if !errors.As(err, &ie) {
			Te.Errorf("%s: expected an input error, got %v", name, err)
		}
	}
	err := ValidateInput(good, &Actual{Formula: "H2O"})
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		Te.Fatalf("expected validation errors, got %v", err)
	}
	if !strings.Contains(err.Error(), "either mass or moles") {
		Te.Errorf("unexpected message %s", err)
	}
	err = ValidateInput([]Reactant{{Formula: "H2", Moles: f(1), Purity: 120}}, nil)
	if !strings.Contains(err.Error(), "purity must satisfy lte=100") {
		Te.Errorf("unexpected message %s", err)
	}
}
