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

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/perftgo/internal/cache"
	"github.com/frankkopp/perftgo/internal/config"
	"github.com/frankkopp/perftgo/internal/fen"
	"github.com/frankkopp/perftgo/internal/logging"
	"github.com/frankkopp/perftgo/internal/perft"
	"github.com/frankkopp/perftgo/internal/util"
)

const version = "1.0.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	fenStr := flag.String("fen", fen.StartFEN, "fen of the position to run perft on")
	depth := flag.Int("depth", 0, "runs perft on the given position up to and including this depth")
	divide := flag.Bool("divide", false, "prints the per-root-move node count breakdown for the final depth")
	workers := flag.Int("workers", 0, "number of worker goroutines\n0 uses the configured default")
	singleThreaded := flag.Bool("single-threaded", false, "forces a single worker regardless of -workers or depth")
	hashSize := flag.Int("hash-size", 10_000_000, "total byte budget for the shared hash cache")
	hashStats := flag.Bool("hash-stats", false, "prints shared/thread-hash cache statistics after each depth")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile (cpu.pprof) of the run to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if _, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = *logLvl
	}
	log := logging.GetLog()

	if *depth <= 0 {
		flag.Usage()
		return
	}

	d := perft.NewDriver()
	if *workers > 0 {
		d.Workers = *workers
	}
	if *singleThreaded {
		d.SingleThreaded = true
	}
	if *hashSize > 0 {
		d.SharedCacheEntries = cache.EntriesForBytes(*hashSize)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		stats, divideEntries, report, err := d.Run(context.Background(), *fenStr, i)
		elapsed := time.Since(start)
		if err != nil {
			log.Errorf("perft failed at depth %d: %v", i, err)
			os.Exit(1)
		}

		out.Printf("Perft depth %d: %d nodes in %s (%d nps)\n",
			i, stats.Nodes, elapsed, util.Nps(stats.Nodes, elapsed))
		out.Printf("  captures: %d  en passant: %d  castles: %d  promotions: %d  checks: %d  checkmates: %d\n",
			stats.Captures, stats.EnPassant, stats.Castles, stats.Promotions, stats.Checks, stats.Checkmates)

		if *hashStats {
			out.Printf("  shared hash: %d/%d entries (%d permill full), %d probes %d hits (%.1f%%)\n",
				report.SharedEntries, report.SharedCapacity, report.SharedHashfull,
				stats.SharedHashProbes, stats.SharedHashHits, report.SharedHitRatio)
			out.Printf("  thread hash: %d probes %d hits (%.1f%%)\n",
				stats.ThreadHashProbes, stats.ThreadHashHits, report.ThreadHitRatio)
		}

		if *divide && i == *depth {
			for _, entry := range divideEntries {
				out.Printf("  %s: %d\n", entry.Move.StringUci(), entry.Stats.Nodes)
			}
		}
	}
}

func printVersionInfo() {
	out.Printf("perftgo %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
