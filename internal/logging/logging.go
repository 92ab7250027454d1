/*
 * perftgo - bitboard move generator and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a thin helper over "github.com/op/go-logging" that
// keeps each call site to one line: GetLog for general-purpose logging,
// GetPerftLog for the perft driver's own (typically more verbose, since it
// runs from multiple goroutines) channel.
package logging

import (
	"log"
	"os"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/perftgo/internal/config"
)

var (
	standardLog *golog.Logger
	perftLog    *golog.Logger

	standardFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = golog.MustGetLogger("standard")
	perftLog = golog.MustGetLogger("perft")
}

func level() golog.Level {
	if n, ok := config.LogLevels[config.LogLevel]; ok {
		return golog.Level(n)
	}
	return golog.INFO
}

// GetLog returns the general-purpose Logger, preconfigured with an
// os.Stdout backend at the configured level.
func GetLog() *golog.Logger {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(level(), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetPerftLog returns the Logger used by the perft driver and its workers.
// Safe to call from multiple goroutines - op/go-logging's Logger is itself
// safe for concurrent use.
func GetPerftLog() *golog.Logger {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(level(), "")
	perftLog.SetBackend(leveled)
	return perftLog
}
