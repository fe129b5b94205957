/*
 * formula.go, part of gostoich.
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

import "strconv"

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

//ParseFormula counts the atoms of each element in formula. Parenthesized groups
//can be nested and take an optional multiplier after the closing parenthesis.
//Element symbols are not checked against any table.
//Characters outside the grammar are skipped, and groups that are never closed are ignored
//together with their contents. A ')' without a matching '(' is a *SyntaxError, and so is
//any count that doesn't fit in an int.
func ParseFormula(formula string) (*ElementCount, error) {
	//each open parenthesis gets its own frame, the bottom one is the result.
	stack := []*ElementCount{NewElementCount()}
	for i := 0; i < len(formula); {
		c := formula[i]
		switch {
		case c == '(':
			stack = append(stack, NewElementCount())
			i++
		case c == ')':
			if len(stack) == 1 {
				return nil, newSyntaxError(formula, i, "ParseFormula", "unmatched ')'")
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			mult, next, err := readMultiplier(formula, i+1)
			if err != nil {
				return nil, err
			}
			if err := stack[len(stack)-1].Merge(group, mult); err != nil {
				return nil, newSyntaxError(formula, i, "ParseFormula", "%s", err)
			}
			i = next
		case isUpper(c):
			j := i + 1
			for j < len(formula) && isLower(formula[j]) {
				j++
			}
			n, next, err := readMultiplier(formula, j)
			if err != nil {
				return nil, err
			}
			if err := stack[len(stack)-1].Add(formula[i:j], n); err != nil {
				return nil, newSyntaxError(formula, i, "ParseFormula", "%s", err)
			}
			i = next
		default:
			i++
		}
	}
	return stack[0], nil
}

//readMultiplier reads the run of digits starting at pos. It returns 1 if there are none,
//and the position after the digits.
func readMultiplier(s string, pos int) (int, int, error) {
	end := pos
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == pos {
		return 1, pos, nil
	}
	n, err := strconv.Atoi(s[pos:end])
	if err != nil {
		return 0, pos, newSyntaxError(s, pos, "readMultiplier", "count %s out of range", s[pos:end])
	}
	if n == 0 {
		return 0, pos, newSyntaxError(s, pos, "readMultiplier", "counts must be positive")
	}
	return n, end, nil
}
