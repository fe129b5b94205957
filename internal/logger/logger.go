/*
 * logger.go, part of gostoich.
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

//Package logger sets up the structured logging of the stoich command.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

//Setup creates a logger that writes to w at the given level ("debug", "info",
//"warn" or "error", case-insensitive) in the given format ("text" or "json"),
//and sets it as the default slog logger. An invalid level falls back to info,
//with a warning.
func Setup(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	valid := true
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
		valid = false
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	log := slog.New(handler)
	if !valid {
		log.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	slog.SetDefault(log)
	return log
}
