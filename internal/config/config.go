/*
 * config.go, part of gostoich.
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

//Package config reads the settings of the stoich command from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/rmera/gostoich/elements"
)

//Config holds the settings of the command line program.
type Config struct {
	Decimals  int    `toml:"decimals" validate:"gte=0,lte=12"`
	Elements  string `toml:"elements"` //custom element table (JSON, .gz or .zst); empty for the built-in one.
	LogLevel  string `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `toml:"log_format" validate:"oneof=text json"`
	Markup    string `toml:"markup" validate:"oneof=plain unicode html"`
}

var validate = validator.New()

//Default returns the settings used when there is no configuration file.
func Default() *Config {
	return &Config{
		Decimals:  3,
		LogLevel:  "warn",
		LogFormat: "text",
		Markup:    "plain",
	}
}

//DefaultPath is $HOME/.stoich/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stoich", "config.toml"), nil
}

//Load reads the configuration from path. If path is empty, the default path
//is used and a missing file just means the defaults. Keys missing from the
//file keep their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Default(), nil
		}
	}
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

//Validate checks that all values are within range.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

//Table returns the element table the configuration asks for.
func (c *Config) Table() (*elements.Table, error) {
	if c.Elements == "" {
		return elements.Default(), nil
	}
	return elements.LoadFile(c.Elements)
}

//Encode writes the configuration to w in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

//Write saves the configuration to path in TOML format, creating the directory if needed.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
