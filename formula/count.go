/*
 * count.go, part of gostoich.
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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

//ElementCount maps element symbols to atom counts. It remembers
//the order in which symbols were first added. It never holds zero or negative counts.
type ElementCount struct {
	order  []string
	counts map[string]int
}

//NewElementCount returns an empty, ready to use, ElementCount.
func NewElementCount() *ElementCount {
	return &ElementCount{counts: make(map[string]int)}
}

//ErrOverflow is returned when an atom count doesn't fit in an int.
var ErrOverflow = errors.New("atom count overflows int")

//both a and b must be positive.
func mulCount(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

//both a and b must be non-negative.
func addCount(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

//Add adds n atoms of symbol. Non-positive values of n are ignored.
//If the new total doesn't fit in an int, ErrOverflow is returned and
//the count is not changed.
func (ec *ElementCount) Add(symbol string, n int) error {
	if n <= 0 {
		return nil
	}
	if ec.counts == nil {
		ec.counts = make(map[string]int)
	}
	total, ok := addCount(ec.counts[symbol], n)
	if !ok {
		return ErrOverflow
	}
	if _, ok := ec.counts[symbol]; !ok {
		ec.order = append(ec.order, symbol)
	}
	ec.counts[symbol] = total
	return nil
}

//Merge adds every count in o, multiplied by factor, to the receiver.
//Non-positive factors add nothing. On ErrOverflow the receiver is left as it was.
func (ec *ElementCount) Merge(o *ElementCount, factor int) error {
	if o == nil || factor <= 0 {
		return nil
	}
	add := make([]int, len(o.order))
	for i, s := range o.order {
		n, ok := mulCount(o.counts[s], factor)
		if !ok {
			return ErrOverflow
		}
		if _, ok := addCount(ec.Count(s), n); !ok {
			return ErrOverflow
		}
		add[i] = n
	}
	for i, s := range o.order {
		ec.Add(s, add[i])
	}
	return nil
}

//Scale returns a new ElementCount with all counts multiplied by factor.
func (ec *ElementCount) Scale(factor int) (*ElementCount, error) {
	ret := NewElementCount()
	if err := ret.Merge(ec, factor); err != nil {
		return nil, err
	}
	return ret, nil
}

//Count returns the number of atoms of symbol, 0 if absent.
func (ec *ElementCount) Count(symbol string) int {
	if ec == nil {
		return 0
	}
	return ec.counts[symbol]
}

//Has reports whether symbol is present.
func (ec *ElementCount) Has(symbol string) bool {
	if ec == nil {
		return false
	}
	_, ok := ec.counts[symbol]
	return ok
}

//Symbols returns the symbols in first-seen order.
func (ec *ElementCount) Symbols() []string {
	if ec == nil {
		return nil
	}
	return append([]string(nil), ec.order...)
}

//Len returns the number of different elements.
func (ec *ElementCount) Len() int {
	if ec == nil {
		return 0
	}
	return len(ec.order)
}

//Map returns a copy of the counts as a plain map.
func (ec *ElementCount) Map() map[string]int {
	ret := make(map[string]int, ec.Len())
	if ec == nil {
		return ret
	}
	for s, n := range ec.counts {
		ret[s] = n
	}
	return ret
}

//Equal reports whether both counts hold the same elements with the same counts,
//regardless of order.
func (ec *ElementCount) Equal(o *ElementCount) bool {
	if ec.Len() != o.Len() {
		return false
	}
	for _, s := range ec.Symbols() {
		if ec.Count(s) != o.Count(s) {
			return false
		}
	}
	return true
}

//String gives a compact form, like "Ca:1 O:2 H:2"
func (ec *ElementCount) String() string {
	var sb strings.Builder
	for i, s := range ec.Symbols() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", s, ec.counts[s])
	}
	return sb.String()
}

//MarshalJSON encodes the counts as a JSON object, keeping the first-seen order.
func (ec *ElementCount) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range ec.Symbols() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		fmt.Fprintf(&buf, ":%d", ec.counts[s])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
