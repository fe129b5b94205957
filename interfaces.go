/*
 * interfaces.go, part of gostoich.
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

import "github.com/rmera/gostoich/elements"

//Table is the element data a calculation needs. *elements.Table implements it,
//but any partial or fake table will do.
type Table interface {
	//Mass returns the atomic mass for symbol in g/mol, and false if the symbol is unknown.
	Mass(symbol string) (float64, bool)
}

//tableOr returns t, or the built-in table if t is nil. A nil *elements.Table
//needs no special care, its methods already fall back to the built-in data.
func tableOr(t Table) Table {
	if t == nil {
		return elements.Default()
	}
	return t
}

//Errors

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller to the trail and returns the trail. An empty string just returns the current trail.
}
