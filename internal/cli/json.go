/*
 * json.go, part of gostoich.
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
	"github.com/spf13/cobra"

	"github.com/rmera/gostoich/stoichjson"
)

func newJSONCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Serve JSON requests from stdin, one per line",
		Long: `json reads requests like
  {"op":"calculate","equation":"2H2 + O2 -> 2H2O","reactants":[{"formula":"H2","moles":4},{"formula":"O2","moles":1}]}
from the standard input, one per line, and writes one JSON response per request
to the standard output. Operations: calculate, balance, validate, molarmass, composition.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.log.Debug("serving JSON requests")
			return stoichjson.Serve(cmd.InOrStdin(), cmd.OutOrStdout(), e.table)
		},
	}
}
