/*
 * errors.go, part of gostoich.
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
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type deco []string

func (d *deco) add(dec string) []string {
	if dec != "" {
		*d = append(*d, dec)
	}
	return *d
}

//UnknownElementError is returned by mass-bearing operations when a formula
//contains symbols that are not in the element table.
type UnknownElementError struct {
	Formula string
	Symbols []string
	deco
}

func (err *UnknownElementError) Error() string {
	return fmt.Sprintf("unrecognized element(s) %s in formula %q", strings.Join(err.Symbols, ", "), err.Formula)
}

//Decorate adds dec to the trail of calling functions and returns it.
func (err *UnknownElementError) Decorate(dec string) []string { return err.add(dec) }

//InvalidEquationError means the equation failed validation, see ValidateEquation.
type InvalidEquationError struct {
	Equation string
	Reason   string
	deco
}

func (err *InvalidEquationError) Error() string {
	return fmt.Sprintf("invalid equation %q: %s", err.Equation, err.Reason)
}

//Decorate adds dec to the trail of calling functions and returns it.
func (err *InvalidEquationError) Decorate(dec string) []string { return err.add(dec) }

//UnbalancedEquationError carries the balance check of an equation
//that is not balanced. The library never balances equations itself.
type UnbalancedEquationError struct {
	Equation string
	Balance  *BalanceResult
	deco
}

func (err *UnbalancedEquationError) Error() string {
	off := make([]string, 0, len(err.Balance.Order))
	for _, s := range err.Balance.Order {
		d := err.Balance.Details[s]
		if !d.Balanced {
			off = append(off, fmt.Sprintf("%s (%d reactant vs %d product atoms)", s, d.Reactants, d.Products))
		}
	}
	return fmt.Sprintf("equation %q is not balanced: %s", err.Equation, strings.Join(off, ", "))
}

//Decorate adds dec to the trail of calling functions and returns it.
func (err *UnbalancedEquationError) Decorate(dec string) []string { return err.add(dec) }

//InputError reports amounts that don't pass ValidateInput, or that
//Calculate can't work with at all.
type InputError struct {
	What string //which input, i.e. "reactant 2 (O2)"
	Err  error
	deco
}

func (err *InputError) Error() string {
	var verr validator.ValidationErrors
	if !errors.As(err.Err, &verr) {
		return fmt.Sprintf("%s: %s", err.What, err.Err)
	}
	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		m := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			m += " is required"
		case "amount":
			m = "either mass or moles must be given"
		default:
			m += fmt.Sprintf(" must satisfy %s=%s", fe.Tag(), fe.Param())
		}
		msgs = append(msgs, m)
	}
	return fmt.Sprintf("%s: %s", err.What, strings.Join(msgs, "; "))
}

func (err *InputError) Unwrap() error { return err.Err }

//Decorate adds dec to the trail of calling functions and returns it.
func (err *InputError) Decorate(dec string) []string { return err.add(dec) }
