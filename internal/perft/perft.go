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

// Package perft implements the parallel perft driver: split the root move
// list across workers, have each recursively make/generate/recurse/unmake
// through its own Tree, consult the two-level cache package along the way,
// and sum the per-worker node-count breakdowns.
package perft

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/perftgo/internal/cache"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
	"github.com/frankkopp/perftgo/internal/config"
	"github.com/frankkopp/perftgo/internal/move"
	"github.com/frankkopp/perftgo/internal/movegen"
	"github.com/frankkopp/perftgo/internal/tree"
	"github.com/frankkopp/perftgo/internal/util"
)

// Stats is the node-count breakdown perft reports, re-exported from cache
// since it is also the cache's payload type.
type Stats = cache.Stats

// DivideEntry is one root move's contribution to the perft result, as
// printed by --divide mode.
type DivideEntry struct {
	Move  move.Move
	Stats Stats
}

// Driver holds the tunables the parallel perft run is configured with.
// The zero value is usable - NewDriver fills it in from internal/config.
type Driver struct {
	Workers             int
	SingleThreaded      bool
	CacheDepthThreshold int
	LeafCacheBytes      int
	SharedCacheEntries  int
}

// NewDriver returns a Driver configured from internal/config's settings.
func NewDriver() *Driver {
	config.Setup()
	return &Driver{
		Workers:             config.Settings.Perft.Workers,
		SingleThreaded:      config.Settings.Perft.SingleThreaded,
		CacheDepthThreshold: config.Settings.Perft.CacheDepthThreshold,
		LeafCacheBytes:      config.Settings.Perft.LeafCacheBytes,
		SharedCacheEntries:  config.Settings.Perft.SharedCacheEntries,
	}
}

func (d *Driver) workerCount(depth int) int {
	if d.SingleThreaded || depth <= 3 {
		return 1
	}
	if d.Workers < 1 {
		return 1
	}
	return d.Workers
}

// Run computes the perft node-count breakdown for fen at the given depth,
// splitting the root move list across workers and returning the aggregate
// Stats, the per-root-move divide breakdown, and a cache.Report summarizing
// shared/thread-hash occupancy and hit ratios over the run.
func (d *Driver) Run(ctx context.Context, fen string, depth int) (Stats, []DivideEntry, cache.Report, error) {
	if depth < 1 {
		return Stats{}, nil, cache.Report{}, errors.New("perft depth must be >= 1")
	}

	rootTree, err := tree.New(fen, depth)
	if err != nil {
		return Stats{}, nil, cache.Report{}, err
	}
	_, start, end := rootTree.GenerateLegalMoves()
	rootMoves := make([]move.Move, end-start)
	for i := range rootMoves {
		rootMoves[i] = rootTree.MoveAt(start + i)
	}
	rootTree.ClearStack(start)

	if len(rootMoves) == 0 {
		return Stats{}, nil, cache.Report{}, nil
	}

	shared := cache.NewSharedCache(d.SharedCacheEntries)
	sem := semaphore.NewWeighted(int64(d.workerCount(depth)))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		total    Stats
		divide   = make([]DivideEntry, len(rootMoves))
		firstErr error
	)
	// aborted is set once any worker fails. There are no retries or partial
	// results - a failed run always returns an error - so once the outcome
	// is decided there is no point launching further root-move workers.
	aborted := util.NewBool(false)

	for i, m := range rootMoves {
		if aborted.Load() {
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(i int, m move.Move) {
			defer wg.Done()
			defer sem.Release(1)

			if aborted.Load() {
				return
			}

			workerTree, err := tree.New(fen, depth)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				aborted.Store(true)
				return
			}
			leafCache := cache.NewLeafCache(d.LeafCacheBytes)
			stats := perftMoveStats(workerTree, m, depth-1, leafCache, shared, d.CacheDepthThreshold)

			mu.Lock()
			total.Add(stats)
			divide[i] = DivideEntry{Move: m, Stats: stats}
			mu.Unlock()
		}(i, m)
	}
	wg.Wait()

	if firstErr != nil {
		return Stats{}, nil, cache.Report{}, firstErr
	}
	return total, divide, cache.BuildReport(shared, total), nil
}

// perftMoveStats classifies m against the position currently held by t,
// makes it, and either resolves the leaf it produces directly (when
// remainingAfterMove is 0) or recurses through perftLayer, then unmakes it.
func perftMoveStats(t *tree.Tree, m move.Move, remainingAfterMove int, lc *cache.LeafCache, sc *cache.SharedCache, threshold int) Stats {
	pos := t.Position()
	wasCapture := pos.PieceOn(m.To()) != PieceNone
	wasEnPassant := m.Type() == move.EnPassant
	wasCastle := m.Type() == move.Castling
	wasPromotion := m.Type() == move.Promotion

	t.Make(m)
	defer t.Unmake()

	if remainingAfterMove == 0 {
		var s Stats
		s.Nodes = 1
		switch {
		case wasEnPassant:
			s.EnPassant++
			s.Captures++
		case wasCapture:
			s.Captures++
		}
		if wasCastle {
			s.Castles++
		}
		if wasPromotion {
			s.Promotions++
		}
		if movegen.IsInCheck(pos) {
			s.Checks++
			if !movegen.HasLegalMove(pos) {
				s.Checkmates++
			}
		}
		return s
	}

	return perftLayer(t, remainingAfterMove, lc, sc, threshold)
}

// perftLayer returns the Stats for the subtree rooted at t's current
// position, remaining plies deep. remaining is always >= 1 here -
// perftMoveStats handles the remaining == 0 leaf case itself.
func perftLayer(t *tree.Tree, remaining int, lc *cache.LeafCache, sc *cache.SharedCache, threshold int) Stats {
	if remaining == 1 {
		return perftLeaves(t, lc)
	}

	if remaining >= threshold {
		if stats, ok := sc.Get(t.Key(), remaining); ok {
			// the stored counters record lookups made when the entry was
			// built; this hit is the only lookup actually made here
			stats.SharedHashProbes, stats.SharedHashHits = 1, 1
			stats.ThreadHashProbes, stats.ThreadHashHits = 0, 0
			return stats
		}
	}

	_, start, end := t.GenerateLegalMoves()
	var total Stats
	for i := start; i < end; i++ {
		total.Add(perftMoveStats(t, t.MoveAt(i), remaining-1, lc, sc, threshold))
	}
	t.ClearStack(start)

	if remaining >= threshold {
		total.SharedHashProbes++
		sc.Put(t.Key(), remaining, total)
	}
	return total
}

// perftLeaves handles remaining == 1: every legal move from here is itself
// a leaf, so each is classified directly rather than recursed into.
func perftLeaves(t *tree.Tree, lc *cache.LeafCache) Stats {
	if stats, ok := lc.Get(t.Key()); ok {
		stats.ThreadHashProbes, stats.ThreadHashHits = 1, 1
		return stats
	}

	_, start, end := t.GenerateLegalMoves()
	var total Stats
	for i := start; i < end; i++ {
		total.Add(perftMoveStats(t, t.MoveAt(i), 0, nil, nil, 0))
	}
	t.ClearStack(start)

	total.ThreadHashProbes++
	lc.Put(t.Key(), total)
	return total
}
