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

package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityForIsPowerOfTwo(t *testing.T) {
	c := NewLeafCache(DefaultLeafCacheBytes)
	n := len(c.data)
	assert.Equal(t, n, n&-n)
	assert.True(t, n > 0)
}

func TestLeafCacheMissThenHit(t *testing.T) {
	c := NewLeafCache(4096)
	_, ok := c.Get(0xDEADBEEF)
	assert.False(t, ok)

	want := Stats{Nodes: 20, Captures: 0}
	c.Put(0xDEADBEEF, want)
	got, ok := c.Get(0xDEADBEEF)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestLeafCacheAlwaysReplace(t *testing.T) {
	c := NewLeafCache(64) // forced to a single slot
	c.Put(1, Stats{Nodes: 1})
	c.Put(2, Stats{Nodes: 2}) // collides with key 1 in a 1-slot table
	got, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), got.Nodes)
	_, ok = c.Get(1)
	assert.False(t, ok, "always-replace means the older key is evicted")
}

func TestSharedCacheRequiresDepthMatch(t *testing.T) {
	sc := NewSharedCache(16)
	sc.Put(42, 5, Stats{Nodes: 100})

	_, ok := sc.Get(42, 4)
	assert.False(t, ok, "a different remaining depth must miss even on key match")

	got, ok := sc.Get(42, 5)
	assert.True(t, ok)
	assert.Equal(t, uint64(100), got.Nodes)
}

func TestSharedCacheLenAndCap(t *testing.T) {
	sc := NewSharedCache(8)
	assert.Equal(t, 8, sc.Cap())
	assert.Equal(t, 0, sc.Len())
	sc.Put(1, 3, Stats{Nodes: 1})
	sc.Put(2, 3, Stats{Nodes: 1})
	assert.Equal(t, 2, sc.Len())
}

func TestSharedCacheConcurrentAccessDoesNotRace(t *testing.T) {
	sc := NewSharedCache(1024)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i uint64) {
			defer wg.Done()
			sc.Put(i, 3, Stats{Nodes: i})
			sc.Get(i, 3)
		}(uint64(i))
	}
	wg.Wait()
}

func TestStatsAddAccumulates(t *testing.T) {
	s := Stats{Nodes: 1, Captures: 2}
	s.Add(Stats{Nodes: 3, Checks: 4})
	assert.Equal(t, Stats{Nodes: 4, Captures: 2, Checks: 4}, s)
}
