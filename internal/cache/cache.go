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

// Package cache implements the perft driver's two-level position cache:
// a per-worker leaf cache consulted at remaining_depth <= 1, and a single
// mutex-guarded shared cache consulted at remaining_depth >= a threshold.
// Both are fixed-size, power-of-two-indexed, always-replace tables - the
// same shape as the teacher's transposition table, generalized from
// storing a search value to storing a perft node-count breakdown.
package cache

import (
	"math/bits"
	"sync"
)

// Stats is the node-count breakdown perft reports at a given depth, and
// the payload cached by both cache levels. SharedHashProbes/ThreadHashProbes
// count every lookup against the respective cache level; the Hits fields
// count how many of those probes were served from the cache rather than
// recomputed - the same probes/hits split the teacher's TtTable.String()
// reports for its transposition table.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64

	SharedHashProbes uint64
	SharedHashHits   uint64
	ThreadHashProbes uint64
	ThreadHashHits   uint64
}

// Add accumulates other into s, in place.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Captures += other.Captures
	s.EnPassant += other.EnPassant
	s.Castles += other.Castles
	s.Promotions += other.Promotions
	s.Checks += other.Checks
	s.Checkmates += other.Checkmates
	s.SharedHashProbes += other.SharedHashProbes
	s.SharedHashHits += other.SharedHashHits
	s.ThreadHashProbes += other.ThreadHashProbes
	s.ThreadHashHits += other.ThreadHashHits
}

const entrySize = 64 // bytes; generous upper bound for key+Stats+padding

// EntriesForBytes converts a total hash-table byte budget (as taken by the
// --hash-size flag) into the entry count NewSharedCache expects, using the
// same per-entry sizing as the leaf cache.
func EntriesForBytes(byteCap int) int { return int(capacityFor(byteCap)) }

// capacityFor returns the largest power of two number of entries fitting
// into byteCap bytes of entrySize each, at least 1.
func capacityFor(byteCap int) uint64 {
	n := uint64(byteCap) / entrySize
	if n == 0 {
		return 1
	}
	return uint64(1) << (bits.Len64(n) - 1)
}

type leafEntry struct {
	key   uint64
	valid bool
	stats Stats
}

// LeafCache is a per-worker, unsynchronized cache of perft leaf counts
// (remaining_depth == 1), indexed by the low bits of the Zobrist key.
// Not safe for concurrent use - the perft driver gives each worker its
// own LeafCache.
type LeafCache struct {
	data []leafEntry
	mask uint64
}

// DefaultLeafCacheBytes keeps a worker's leaf cache small enough to stay
// resident in L2 cache, per the teacher's sizing philosophy for its own
// per-purpose caches (pawn cache, transposition table).
const DefaultLeafCacheBytes = 512 * 1024

// NewLeafCache returns a LeafCache sized to the largest power of two
// entry count fitting within byteCap bytes.
func NewLeafCache(byteCap int) *LeafCache {
	n := capacityFor(byteCap)
	return &LeafCache{data: make([]leafEntry, n), mask: n - 1}
}

// Get returns the cached Stats for key, if present.
func (c *LeafCache) Get(key uint64) (Stats, bool) {
	e := &c.data[key&c.mask]
	if e.valid && e.key == key {
		return e.stats, true
	}
	return Stats{}, false
}

// Put stores stats under key, always replacing whatever previously
// occupied that slot.
func (c *LeafCache) Put(key uint64, stats Stats) {
	e := &c.data[key&c.mask]
	e.key = key
	e.valid = true
	e.stats = stats
}

type sharedEntry struct {
	key            uint64
	valid          bool
	remainingDepth int
	stats          Stats
}

// SharedCache is a single mutex-guarded cache consulted above a remaining-
// depth threshold, shared by reference across all perft workers. A hit
// requires both the key and the stored remaining_depth to match the
// current remaining_depth - matching on remaining_depth rather than
// absolute depth makes the cache valid regardless of which root move led
// to this position, since the subtree below a fixed remaining depth is
// independent of how deep the root split is.
type SharedCache struct {
	mu   sync.Mutex
	data []sharedEntry
	mask uint64
}

// NewSharedCache returns a SharedCache with room for maxEntries rounded
// up to the next power of two.
func NewSharedCache(maxEntries int) *SharedCache {
	n := uint64(1)
	for n < uint64(maxEntries) {
		n <<= 1
	}
	if n == 0 {
		n = 1
	}
	return &SharedCache{data: make([]sharedEntry, n), mask: n - 1}
}

// Get returns the cached Stats for key at the given remaining depth.
func (c *SharedCache) Get(key uint64, remainingDepth int) (Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := &c.data[key&c.mask]
	if e.valid && e.key == key && e.remainingDepth == remainingDepth {
		return e.stats, true
	}
	return Stats{}, false
}

// Put stores stats for key at remainingDepth, always replacing whatever
// previously occupied that slot.
func (c *SharedCache) Put(key uint64, remainingDepth int, stats Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := &c.data[key&c.mask]
	e.key = key
	e.valid = true
	e.remainingDepth = remainingDepth
	e.stats = stats
}

// Len returns how many slots currently hold an entry.
func (c *SharedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i := range c.data {
		if c.data[i].valid {
			n++
		}
	}
	return n
}

// Cap returns the shared cache's total slot count.
func (c *SharedCache) Cap() int {
	return len(c.data)
}

// Hashfull returns how full the shared cache is in permille, as per the
// UCI "hashfull" convention the teacher's transposition table also reports.
func (c *SharedCache) Hashfull() int {
	if len(c.data) == 0 {
		return 0
	}
	return (1000 * c.Len()) / len(c.data)
}

// Report is the aggregated cache-statistics summary: occupancy of the
// shared cache plus hit ratios for both cache levels, computed from a
// Stats accumulated across an entire perft run.
type Report struct {
	SharedEntries  int
	SharedCapacity int
	SharedHashfull int
	SharedHitRatio float64 // percent of shared-cache probes served from cache
	ThreadHitRatio float64 // percent of thread-cache probes served from cache
}

// BuildReport summarizes sc's current occupancy together with the hit
// ratios recorded in s.
func BuildReport(sc *SharedCache, s Stats) Report {
	r := Report{
		SharedEntries:  sc.Len(),
		SharedCapacity: sc.Cap(),
		SharedHashfull: sc.Hashfull(),
	}
	if s.SharedHashProbes > 0 {
		r.SharedHitRatio = 100 * float64(s.SharedHashHits) / float64(s.SharedHashProbes)
	}
	if s.ThreadHashProbes > 0 {
		r.ThreadHitRatio = 100 * float64(s.ThreadHashHits) / float64(s.ThreadHashProbes)
	}
	return r
}
