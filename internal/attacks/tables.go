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

// Package attacks holds the precomputed, non-sliding attack tables (knight,
// king, pawn) and the between-squares ray table, plus the per-square
// subtraction-method sliding-piece attacks. The parallel dumb7fill on double
// bitboards lives in internal/bitboard (dbb.go).
//
// The concrete contents of the knight/king/between tables are treated as
// given constants generated once at package init - the interesting design
// is in how they (and the slider algorithms) are used, not in how the tables
// themselves are populated.
package attacks

import (
	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

var (
	knightAttacks [SqLength]BB
	kingAttacks   [SqLength]BB
	pawnAttacks   [ColorLength][SqLength]BB
	betweenBB     [SqLength][SqLength]BB
	rayMask       [SqLength][8]BB // indexed by Direction order in chesstypes.Directions
)

var dirIndex = map[Direction]int{
	North: 0, East: 1, South: 2, West: 3,
	Northeast: 4, Southeast: 5, Southwest: 6, Northwest: 7,
}

func init() {
	initKnightKing()
	initRayMasks()
	initBetween()
	initPawnAttacks()
}

var knightDeltas = []int{17, 15, 10, 6, -6, -10, -15, -17}
var kingDeltas = []int{8, 9, 1, -7, -8, -9, -1, 7}

func initKnightKing() {
	for sq := SqA1; sq < SqNone; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, d := range knightDeltas {
			to := int(sq) + d
			if to < 0 || to > 63 {
				continue
			}
			tf, tr := to&7, to>>3
			if abs(tf-f) <= 2 && abs(tr-r) <= 2 && abs(tf-f) != 0 && abs(tr-r) != 0 {
				knightAttacks[sq] |= SquareBB(Square(to))
			}
		}
		for _, d := range kingDeltas {
			to := int(sq) + d
			if to < 0 || to > 63 {
				continue
			}
			tf, tr := to&7, to>>3
			if abs(tf-f) <= 1 && abs(tr-r) <= 1 {
				kingAttacks[sq] |= SquareBB(Square(to))
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// initRayMasks computes, for every square and every one of the 8 directions,
// the ray of squares strictly beyond sq in that direction, stopping at the
// board edge and excluding sq itself.
func initRayMasks() {
	for sq := SqA1; sq < SqNone; sq++ {
		for _, d := range Directions {
			var ray BB
			cur := sq
			for {
				next := step(cur, d)
				if next == SqNone {
					break
				}
				ray |= SquareBB(next)
				cur = next
			}
			rayMask[sq][dirIndex[d]] = ray
		}
	}
}

// step returns the square one step from sq in direction d, or SqNone if that
// would leave the board or wrap around a file edge.
func step(sq Square, d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	}
	switch d {
	case North, Northeast, Northwest:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South, Southeast, Southwest:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	}
	to := int(sq) + int(d)
	if to < 0 || to > 63 {
		return SqNone
	}
	return Square(to)
}

// initBetween computes, for every pair of squares lying on a common
// rank/file/diagonal, the (exclusive) set of squares strictly between them -
// used for check-interposition masks and, together with the attacker's own
// square, for pin-ray legality masks.
func initBetween() {
	for sq := SqA1; sq < SqNone; sq++ {
		for _, d := range Directions {
			full := rayMask[sq][dirIndex[d]]
			var acc BB
			bb := full
			for bb != Empty {
				// walk the ray nearest square first
				to := bb.Lsb()
				if d < 0 {
					to = bb.Msb()
				}
				bb = bb.Without(to)
				betweenBB[sq][to] = acc
				acc |= SquareBB(to)
			}
		}
	}
}

func initPawnAttacks() {
	for sq := SqA1; sq < SqNone; sq++ {
		bb := SquareBB(sq)
		pawnAttacks[White][sq] = Shift(bb, Northeast) | Shift(bb, Northwest)
		pawnAttacks[Black][sq] = Shift(bb, Southeast) | Shift(bb, Southwest)
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) BB { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) BB { return kingAttacks[sq] }

// PawnAttacks returns the pawn capture set for a pawn of color c on sq.
func PawnAttacks(c Color, sq Square) BB { return pawnAttacks[c][sq] }

// Between returns the squares strictly between a and b if they share a
// rank, file or diagonal; Empty otherwise (including when a == b).
func Between(a, b Square) BB { return betweenBB[a][b] }

// RayMask returns the ray mask from sq in direction d (excludes sq, stops at
// the board edge, does not depend on occupancy).
func RayMask(sq Square, d Direction) BB { return rayMask[sq][dirIndex[d]] }
