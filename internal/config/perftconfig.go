//
// perftgo - bitboard move generator and perft engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// perftConfiguration holds the knobs the parallel perft driver reads at
// startup - worker count, the two cache sizes, and the remaining-depth
// threshold above which the shared cache is consulted at all.
type perftConfiguration struct {
	// Workers is how many goroutines split the root move list. 0 means
	// "use every detected CPU".
	Workers int

	// SingleThreaded forces Workers to 1 regardless of CPU count, overriding
	// the driver's own small-depth single-thread fallback.
	SingleThreaded bool

	// CacheDepthThreshold is the minimum remaining_depth at which the
	// shared cache is consulted; below it, only the leaf cache applies.
	CacheDepthThreshold int

	// LeafCacheBytes bounds each worker's unsynchronized leaf cache.
	LeafCacheBytes int

	// SharedCacheEntries is the (rounded up to a power of two) entry count
	// of the mutex-guarded shared cache.
	SharedCacheEntries int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Perft.Workers = 0
	Settings.Perft.SingleThreaded = false
	Settings.Perft.CacheDepthThreshold = 3
	Settings.Perft.LeafCacheBytes = 512 * 1024
	Settings.Perft.SharedCacheEntries = 1 << 20
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupPerft() {
	if Settings.Perft.Workers <= 0 {
		Settings.Perft.Workers = cpuCount()
	}
	if Settings.Perft.SingleThreaded {
		Settings.Perft.Workers = 1
	}
	if Settings.Perft.CacheDepthThreshold <= 0 {
		Settings.Perft.CacheDepthThreshold = 3
	}
	if Settings.Perft.LeafCacheBytes <= 0 {
		Settings.Perft.LeafCacheBytes = 512 * 1024
	}
	if Settings.Perft.SharedCacheEntries <= 0 {
		Settings.Perft.SharedCacheEntries = 1 << 20
	}
}
