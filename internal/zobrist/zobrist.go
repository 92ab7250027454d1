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

// Package zobrist holds the Zobrist hashing keys used to maintain a
// position's incremental hash across make/unmake. Keys are generated once
// at package init from a fixed seed, so the same position always hashes to
// the same key across runs and across processes - required for the perft
// caches to be meaningfully shared between worker goroutines.
package zobrist

import (
	"github.com/frankkopp/perftgo/internal/chesstypes"
)

// Key is a 64-bit position hash.
type Key uint64

const castlingCombinations = int(chesstypes.CastlingAll) + 1

var (
	pieces         [chesstypes.PieceLength][chesstypes.SqLength]Key
	castlingRights [castlingCombinations]Key
	enPassantFile  [8]Key
	nextPlayer     Key
)

func init() {
	r := newRandom(1070372)
	for pc := 0; pc < chesstypes.PieceLength; pc++ {
		for sq := chesstypes.SqA1; sq < chesstypes.SqNone; sq++ {
			pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := 0; cr < castlingCombinations; cr++ {
		castlingRights[cr] = Key(r.rand64())
	}
	for f := chesstypes.FileA; f <= chesstypes.FileH; f++ {
		enPassantFile[f] = Key(r.rand64())
	}
	nextPlayer = Key(r.rand64())
}

// Piece returns the key contribution of piece p standing on sq.
func Piece(p chesstypes.Piece, sq chesstypes.Square) Key { return pieces[p][sq] }

// Castling returns the key contribution of the given castling rights
// combination. Rights are keyed by their full combined value rather than
// per-bit, so a rights change is one XOR-out of the old combination and one
// XOR-in of the new one.
func Castling(cr chesstypes.CastlingRights) Key { return castlingRights[cr] }

// EnPassantFile returns the key contribution of an en-passant target on
// file f. There is no entry for "no en passant square" - callers only XOR
// this in/out when a double pawn push actually creates a target.
func EnPassantFile(f chesstypes.File) Key { return enPassantFile[f] }

// SideToMove returns the key contribution of the side to move. Since there
// are only two sides, toggling is a single XOR with this same value
// regardless of which side is moving.
func SideToMove() Key { return nextPlayer }

// random is the xorshift64star PRNG, taken (like the teacher's own
// zobrist key generator) from Sebastiano Vigna's public-domain
// implementation: 64-bit output, no warm-up needed, period 2^64-1.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: random seed must not be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
