/*
 * equation.go, part of gostoich.
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
	"strconv"
	"strings"
)

//Compound is one term of an equation: a coefficient and a formula.
type Compound struct {
	Coefficient int           `json:"coefficient"`
	Formula     string        `json:"formula"` //without the coefficient
	Elements    *ElementCount `json:"elements"`
}

//String returns the term as it would be written in an equation.
func (c Compound) String() string {
	if c.Coefficient == 1 {
		return c.Formula
	}
	return strconv.Itoa(c.Coefficient) + c.Formula
}

//Side identifies one side of an equation.
type Side int

const (
	Left  Side = iota //reactants
	Right             //products
)

func (s Side) String() string {
	if s == Left {
		return "reactants"
	}
	return "products"
}

//Equation is a parsed chemical equation. Terms keep the order of the input text.
type Equation struct {
	Reactants []Compound `json:"reactants"`
	Products  []Compound `json:"products"`
}

//Terms returns the compounds on the given side.
func (eq *Equation) Terms(side Side) []Compound {
	if side == Left {
		return eq.Reactants
	}
	return eq.Products
}

//Find returns the first compound on side whose formula is exactly formula.
func (eq *Equation) Find(side Side, formula string) (Compound, bool) {
	for _, c := range eq.Terms(side) {
		if c.Formula == formula {
			return c, true
		}
	}
	return Compound{}, false
}

//String renders the equation in canonical form, i.e. "2H2 + O2 -> 2H2O".
func (eq *Equation) String() string {
	join := func(cs []Compound) string {
		s := make([]string, len(cs))
		for i, c := range cs {
			s[i] = c.String()
		}
		return strings.Join(s, " + ")
	}
	return join(eq.Reactants) + " -> " + join(eq.Products)
}

//ParseCompound reads a term like "2H2O": a leading coefficient (1 if absent)
//and the formula, which is handed to ParseFormula. An empty formula is
//not an error here, it gives an empty count. The atom counts times the
//coefficient must fit in an int.
func ParseCompound(text string) (Compound, error) {
	text = strings.TrimSpace(text)
	coef, end, err := readMultiplier(text, 0)
	if err != nil {
		if se, ok := err.(*SyntaxError); ok {
			se.Message = "coefficient: " + se.Message
			se.Decorate("ParseCompound")
		}
		return Compound{}, err
	}
	c := Compound{Coefficient: coef, Formula: strings.TrimSpace(text[end:])}
	c.Elements, err = ParseFormula(c.Formula)
	if err != nil {
		err.(*SyntaxError).Decorate("ParseCompound")
		return Compound{}, err
	}
	if _, err := c.Elements.Scale(coef); err != nil {
		return Compound{}, newSyntaxError(text, -1, "ParseCompound", "coefficient %d: %s", coef, err)
	}
	return c, nil
}

var arrows = strings.NewReplacer("=>", "=", "->", "=", "→", "=", "⟶", "=")

//ParseEquation reads an equation such as "2H2 + O2 -> 2H2O". There must be exactly one
//arrow and both sides must have some text, otherwise a *SyntaxError is returned.
//Empty terms (e.g. from a trailing '+') are kept as compounds with an empty formula.
func ParseEquation(text string) (*Equation, error) {
	sides := strings.Split(arrows.Replace(text), "=")
	if len(sides) != 2 {
		return nil, newSyntaxError(text, -1, "ParseEquation", "the equation must have exactly one arrow (->, → or =), found %d", len(sides)-1)
	}
	if strings.TrimSpace(sides[0]) == "" || strings.TrimSpace(sides[1]) == "" {
		return nil, newSyntaxError(text, -1, "ParseEquation", "both sides of the equation must have at least one compound")
	}
	eq := new(Equation)
	var err error
	if eq.Reactants, err = parseSide(sides[0]); err != nil {
		return nil, err
	}
	if eq.Products, err = parseSide(sides[1]); err != nil {
		return nil, err
	}
	return eq, nil
}

//parseSide also checks that the atoms of the whole side can be counted.
func parseSide(side string) ([]Compound, error) {
	terms := strings.Split(side, "+")
	ret := make([]Compound, 0, len(terms))
	total := NewElementCount()
	for _, t := range terms {
		c, err := ParseCompound(t)
		if err != nil {
			err.(*SyntaxError).Decorate("ParseEquation")
			return nil, err
		}
		if err := total.Merge(c.Elements, c.Coefficient); err != nil {
			return nil, newSyntaxError(side, -1, "ParseEquation", "%s", err)
		}
		ret = append(ret, c)
	}
	return ret, nil
}
