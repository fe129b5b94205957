/*
 * files.go, part of gostoich.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Load reads a JSON array of elements from r and builds a Table with them.
//Each entry looks like {"number": 1, "symbol": "H", "name": "Hydrogen", "mass": 1.008},
//the atomic number being optional.
func Load(r io.Reader) (*Table, error) {
	var elems []Element
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("elements: unable to decode table: %w", err)
	}
	return New(elems)
}

//LoadFile reads an element table from the file name. Files ending in .gz
//or .zst are decompressed on the fly.
func LoadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("elements: %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zs, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("elements: %s: %w", name, err)
		}
		defer zs.Close()
		r = zs
	}
	t, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, name)
	}
	return t, nil
}
