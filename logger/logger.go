/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger holds the structured logger used by the engines and
// samplers. Logging is disabled until one of the writers is installed.
package logger

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetLogger replaces the shared logger.
func SetLogger(l zerolog.Logger) {
	log = l
}

// SetConsoleWriter installs a human readable writer on w that drops
// events below level.
func SetConsoleWriter(w io.Writer, level zerolog.Level) {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}).Level(level).With().Timestamp().Logger()
}

// SetJSONWriter installs a JSON writer on w that drops events below level.
func SetJSONWriter(w io.Writer, level zerolog.Level) {
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Configure installs a writer selected by format ("plain", "text" or
// "json") at the level named by level.
func Configure(w io.Writer, format, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "failed to parse log level %q", level)
	}

	switch strings.ToLower(format) {
	case "plain", "text", "":
		SetConsoleWriter(w, lvl)
	case "json":
		SetJSONWriter(w, lvl)
	default:
		return errors.Errorf("unsupported log format: %s", format)
	}
	return nil
}

// Disable turns logging off.
func Disable() {
	log = zerolog.Nop()
}
