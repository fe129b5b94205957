/*
 * doc.go, part of gostoich.
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

/*
Package stoich computes stoichiometric quantities for balanced chemical equations.

goStoich capabilities:

  - Parses formulas with nested groups (Al2(SO4)3, K4(Fe(CN)6)) and equations
    with coefficients ("2H2 + O2 -> 2H2O"), see the formula package.
  - Checks that an equation is balanced, element by element. It never balances
    equations itself.
  - Validates formulas and equations against an element table, reporting the
    unknown symbols instead of failing.
  - Obtains molar masses and percent composition, and converts between mass and moles.
  - Finds the limiting reagent among measured amounts of reactants (given as mass
    or moles, with an optional purity), the leftovers of the excess reagents, the
    theoretical yield of each product and the percent yield against an observed
    amount of product.
  - Exchanges requests and results as JSON with other programs, see the stoichjson package.

All functions are pure: they keep no state between calls and can be used
concurrently. Mass-bearing functions take the element table as a parameter (any
Table), a nil Table meaning the built-in one from the elements package.
*/
package stoich
