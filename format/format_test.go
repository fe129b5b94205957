/*
 * format_test.go, part of gostoich.
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

package format

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestNumber(Te *testing.T) {
	cases := []struct {
		v    float64
		dec  int
		want string
	}{
		{36.0298, 2, "36.03"},
		{1234.5678, 3, "1,234.568"},
		{2, 3, "2.000"},
		{0, 2, "0.00"},
		{0.0001234, 2, "1.23e-04"},
		{-5.5, 1, "-5.5"},
		{math.Inf(1), 2, "∞"},
		{math.NaN(), 2, "NaN"},
	}
	for _, c := range cases {
		if got := Number(c.v, c.dec); got != c.want {
			Te.Errorf("Number(%g, %d) = %q, want %q", c.v, c.dec, got, c.want)
		}
	}
	if got := NumberIn(language.German, 1234.5, 1); got != "1.234,5" {
		Te.Errorf("german formatting gave %q", got)
	}
}

func TestSubscripts(Te *testing.T) {
	cases := map[string][2]string{
		"H2O":              {"H<sub>2</sub>O", "H₂O"},
		"2H2 + O2 -> 2H2O": {"2H<sub>2</sub> + O<sub>2</sub> -&gt; 2H<sub>2</sub>O", "2H₂ + O₂ -> 2H₂O"},
		"Al2(SO4)3":        {"Al<sub>2</sub>(SO<sub>4</sub>)<sub>3</sub>", "Al₂(SO₄)₃"},
		"NaCl":             {"NaCl", "NaCl"},
		"":                 {"", ""},
	}
	for in, want := range cases {
		if got := HTML.Apply(in); got != want[0] {
			Te.Errorf("html %q: got %q want %q", in, got, want[0])
		}
		if got := Unicode.Apply(in); got != want[1] {
			Te.Errorf("unicode %q: got %q want %q", in, got, want[1])
		}
		if Plain.Apply(in) != in {
			Te.Errorf("plain markup changed %q", in)
		}
	}
}
