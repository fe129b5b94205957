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

package formula

import "fmt"

//SyntaxError is returned when a formula or equation can't be read.
type SyntaxError struct {
	Input   string
	Pos     int //byte offset in Input, -1 if the error concerns the whole input.
	Message string
	deco    []string
}

func (err *SyntaxError) Error() string {
	if err.Pos < 0 {
		return fmt.Sprintf("syntax error in %q: %s", err.Input, err.Message)
	}
	return fmt.Sprintf("syntax error in %q at position %d: %s", err.Input, err.Pos, err.Message)
}

//Decorate adds dec to the trail of calling functions and returns the trail.
//An empty dec just returns the current trail.
func (err *SyntaxError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newSyntaxError(input string, pos int, caller, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Input: input, Pos: pos, Message: fmt.Sprintf(format, args...), deco: []string{caller}}
}
