/*
 * table.go, part of gostoich.
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

package elements

import (
	"fmt"
	"sort"
)

//Element holds the data the library needs for one chemical element.
type Element struct {
	Number int     `json:"number,omitempty"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Mass   float64 `json:"mass"` //g/mol
}

//Table is a read-only symbol lookup. A Table never changes after it is built,
//so it can be shared among goroutines freely. A nil *Table behaves like Default().
type Table struct {
	bysymbol map[string]Element
	order    []string
}

var defaultTable *Table

func init() {
	t, err := New(standard)
	if err != nil {
		panic("elements: corrupted built-in table: " + err.Error()) //the program is wrong.
	}
	defaultTable = t
}

//Default returns the built-in table with the 118 elements.
func Default() *Table {
	return defaultTable
}

func (t *Table) orDefault() *Table {
	if t == nil {
		return defaultTable
	}
	return t
}

//New builds a Table from the given elements. Symbols must be unique, non-empty
//and start with an uppercase letter. Masses must be positive.
//Partial tables are fine, which is handy for tests.
func New(elems []Element) (*Table, error) {
	t := &Table{bysymbol: make(map[string]Element, len(elems)), order: make([]string, 0, len(elems))}
	for i, e := range elems {
		if e.Symbol == "" {
			return nil, fmt.Errorf("elements: entry %d has no symbol", i)
		}
		if e.Symbol[0] < 'A' || e.Symbol[0] > 'Z' {
			return nil, fmt.Errorf("elements: symbol %q must start with an uppercase letter", e.Symbol)
		}
		if !(e.Mass > 0) {
			return nil, fmt.Errorf("elements: element %s has non-positive mass %g", e.Symbol, e.Mass)
		}
		if _, ok := t.bysymbol[e.Symbol]; ok {
			return nil, fmt.Errorf("elements: duplicated symbol %s", e.Symbol)
		}
		t.bysymbol[e.Symbol] = e
		t.order = append(t.order, e.Symbol)
	}
	//Tables with atomic numbers are kept in periodic order, the rest
	//in the order given.
	sort.SliceStable(t.order, func(i, j int) bool {
		return t.bysymbol[t.order[i]].Number < t.bysymbol[t.order[j]].Number
	})
	return t, nil
}

//Lookup returns the element with the given symbol. Symbols are case-sensitive.
func (t *Table) Lookup(symbol string) (Element, bool) {
	t = t.orDefault()
	e, ok := t.bysymbol[symbol]
	return e, ok
}

//Mass returns the atomic mass of symbol, and false if the symbol is not in the table.
func (t *Table) Mass(symbol string) (float64, bool) {
	t = t.orDefault()
	e, ok := t.bysymbol[symbol]
	return e.Mass, ok
}

//Has reports whether symbol is in the table.
func (t *Table) Has(symbol string) bool {
	t = t.orDefault()
	_, ok := t.bysymbol[symbol]
	return ok
}

//Len returns the number of elements in the table
func (t *Table) Len() int {
	t = t.orDefault()
	return len(t.order)
}

//Elements returns a copy of the table contents.
func (t *Table) Elements() []Element {
	t = t.orDefault()
	ret := make([]Element, 0, len(t.order))
	for _, s := range t.order {
		ret = append(ret, t.bysymbol[s])
	}
	return ret
}
