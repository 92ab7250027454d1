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

package attacks

import (
	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

// positiveRayAttacks isolates the nearest blocker on a ray whose squares are
// ordered with increasing bit index as distance from the origin grows (N, E,
// NE, NW), and returns the attacked squares: every ray square up to and
// including the first blocker.
func positiveRayAttacks(ray, occ BB) BB {
	blockers := ray & occ
	if blockers == Empty {
		return ray
	}
	nearest := SquareBB(blockers.Lsb())
	return ray & (nearest<<1 - 1)
}

// negativeRayAttacks is positiveRayAttacks' counterpart for rays whose
// squares are ordered with decreasing bit index as distance grows (S, W, SE,
// SW): the nearest blocker is isolated via the ray's most significant bit.
func negativeRayAttacks(ray, occ BB) BB {
	blockers := ray & occ
	if blockers == Empty {
		return ray
	}
	nearest := SquareBB(blockers.Msb())
	return ray & ^(nearest - 1)
}

// RookAttacks returns the rook attack set from sq given occupancy occ, via
// the per-square subtraction method: for each of the 4 ray directions, the
// ray mask is intersected with the occupancy to find blockers, and isolating
// the nearest blocker's bit yields the attacked squares on that ray.
func RookAttacks(sq Square, occ BB) BB {
	return positiveRayAttacks(RayMask(sq, North), occ) |
		negativeRayAttacks(RayMask(sq, South), occ) |
		positiveRayAttacks(RayMask(sq, East), occ) |
		negativeRayAttacks(RayMask(sq, West), occ)
}

// BishopAttacks is RookAttacks' diagonal counterpart.
func BishopAttacks(sq Square, occ BB) BB {
	return positiveRayAttacks(RayMask(sq, Northeast), occ) |
		negativeRayAttacks(RayMask(sq, Southwest), occ) |
		positiveRayAttacks(RayMask(sq, Northwest), occ) |
		negativeRayAttacks(RayMask(sq, Southeast), occ)
}

// QueenAttacks combines RookAttacks and BishopAttacks.
func QueenAttacks(sq Square, occ BB) BB {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// RankAttacks returns just the horizontal (same-rank) attacks from sq. This
// is the primitive the en-passant discovered-check filter needs: it tests
// whether removing both pawns involved in an en-passant capture exposes the
// king to a rook or queen along the 5th/4th rank.
func RankAttacks(sq Square, occ BB) BB {
	return positiveRayAttacks(RayMask(sq, East), occ) | negativeRayAttacks(RayMask(sq, West), occ)
}

// NearestBlocker returns the closest occupied square to sq along direction
// d, or SqNone if the ray is clear to the board edge. Positive-valued
// directions (North, East, Northeast, Northwest) resolve ties by least
// significant bit, matching positiveRayAttacks; negative-valued directions
// use the most significant bit, matching negativeRayAttacks.
func NearestBlocker(sq Square, d Direction, occ BB) Square {
	blockers := RayMask(sq, d) & occ
	if blockers == Empty {
		return SqNone
	}
	if d > 0 {
		return blockers.Lsb()
	}
	return blockers.Msb()
}

// Attacks returns the attack set of a piece of type pt (not Pawn) from sq
// given occupancy occ. For Knight and King occ is ignored.
func Attacks(pt PieceType, sq Square, occ BB) BB {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	default:
		return Empty
	}
}
