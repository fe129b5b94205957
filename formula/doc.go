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
Package formula reads chemical formulas and equations.

Formulas are made of element tokens (an uppercase letter, optionally followed by lowercase
letters and a count) and parenthesized groups with an optional multiplier, like
Al2(SO4)3 or Ca(OH)2. The scanner is permissive: characters that are not part of the grammar
are skipped. Equations are sums of compounds, each with an optional integer coefficient,
separated by a single arrow (->, =>, →, ⟶ or =).

Nothing in this package knows about element masses; see the elements package
and the stoich package for that.
*/
package formula
