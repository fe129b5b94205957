/*
 * amounts.go, part of gostoich.
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

package cli

import (
	"fmt"
	"strconv"
	"strings"

	stoich "github.com/rmera/gostoich"
)

//parseAmount reads "FORMULA:key=value,key=value", keys being mass (g),
//moles and, if purity is true, purity (%).
func parseAmount(arg string, purity bool) (string, map[string]float64, error) {
	f, rest, ok := strings.Cut(arg, ":")
	f = strings.TrimSpace(f)
	if !ok || f == "" {
		return "", nil, fmt.Errorf("amount %q: expected FORMULA:key=value[,key=value]", arg)
	}
	vals := make(map[string]float64)
	for _, kv := range strings.Split(rest, ",") {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok {
			return "", nil, fmt.Errorf("amount %q: %q is not key=value", arg, kv)
		}
		switch k {
		case "mass", "moles":
		case "purity":
			if !purity {
				return "", nil, fmt.Errorf("amount %q: purity is not allowed here", arg)
			}
		default:
			return "", nil, fmt.Errorf("amount %q: unknown key %q", arg, k)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", nil, fmt.Errorf("amount %q: %s: %w", arg, k, err)
		}
		vals[k] = x
	}
	return f, vals, nil
}

func ptr(vals map[string]float64, key string) *float64 {
	v, ok := vals[key]
	if !ok {
		return nil
	}
	return &v
}

func parseReactant(arg string) (stoich.Reactant, error) {
	f, vals, err := parseAmount(arg, true)
	if err != nil {
		return stoich.Reactant{}, err
	}
	return stoich.Reactant{Formula: f, Mass: ptr(vals, "mass"), Moles: ptr(vals, "moles"), Purity: vals["purity"]}, nil
}

func parseActual(arg string) (*stoich.Actual, error) {
	f, vals, err := parseAmount(arg, false)
	if err != nil {
		return nil, err
	}
	return &stoich.Actual{Formula: f, Mass: ptr(vals, "mass"), Moles: ptr(vals, "moles")}, nil
}
