/*
 * format.go, part of gostoich.
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

//Package format has helpers to present results: numbers with a fixed amount of
//decimals and digit grouping, and formulas with subscripts.
package format

import (
	"html"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var english = message.NewPrinter(language.English)

//Number formats v with the given decimals and English digit grouping ("1,234.568").
//Values too small to show with those decimals are written in scientific notation.
func Number(v float64, decimals int) string {
	return numberWith(english, v, decimals)
}

//NumberIn is like Number but uses the conventions of the language tag, i.e.
//language.German gives "1.234,568".
func NumberIn(tag language.Tag, v float64, decimals int) string {
	return numberWith(message.NewPrinter(tag), v, decimals)
}

func numberWith(p *message.Printer, v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	if v != 0 && math.Abs(v) < 0.5*math.Pow10(-decimals) {
		return strconv.FormatFloat(v, 'e', decimals, 64)
	}
	return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

//Markup is a way of writing subscripts in formulas.
type Markup string

const (
	Plain   Markup = "plain"   //H2O
	Unicode Markup = "unicode" //H₂O
	HTML    Markup = "html"    //H<sub>2</sub>O
)

//Apply writes the subscripts of s, a formula or a whole equation, with the markup.
//Unknown markups leave s untouched.
func (m Markup) Apply(s string) string {
	switch m {
	case Unicode:
		return SubscriptUnicode(s)
	case HTML:
		return SubscriptHTML(s)
	}
	return s
}

//subscripts calls sub for every run of digits that follows a letter or a closing
//parenthesis, and other for everything else. Coefficients are not subscripts.
func subscripts(s string, sub, other func(string)) {
	start := 0
	for i := 0; i < len(s); {
		if !isDigit(s[i]) || i == 0 || !(isLetter(s[i-1]) || s[i-1] == ')') {
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		other(s[start:i])
		sub(s[i:j])
		start, i = j, j
	}
	other(s[start:])
}

//SubscriptHTML wraps subscripts in <sub> tags, escaping everything else.
func SubscriptHTML(s string) string {
	var sb strings.Builder
	subscripts(s, func(d string) {
		sb.WriteString("<sub>")
		sb.WriteString(d)
		sb.WriteString("</sub>")
	}, func(o string) { sb.WriteString(html.EscapeString(o)) })
	return sb.String()
}

//SubscriptUnicode replaces subscripts with unicode subscript digits.
func SubscriptUnicode(s string) string {
	var sb strings.Builder
	subscripts(s, func(d string) {
		for _, c := range d {
			sb.WriteRune('₀' + (c - '0'))
		}
	}, func(o string) { sb.WriteString(o) })
	return sb.String()
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
