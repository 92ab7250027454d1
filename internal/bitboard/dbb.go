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

package bitboard

// DBB (double bitboard) is an ordered pair of bitboards operated on in
// parallel. Its usual purpose is holding two opposite-direction occluded
// fills in one value - e.g. a northward fill in Lo and a southward fill in
// Hi - so that a single pass of lane-wise shifts produces both rays at once.
// Every operation here is defined in terms of two independent 64-bit words;
// any SIMD lowering of these ops must be bit-identical to this definition.
type DBB struct {
	Lo BB
	Hi BB
}

// And returns the lane-wise intersection of a and b.
func (a DBB) And(b DBB) DBB { return DBB{a.Lo & b.Lo, a.Hi & b.Hi} }

// Or returns the lane-wise union of a and b.
func (a DBB) Or(b DBB) DBB { return DBB{a.Lo | b.Lo, a.Hi | b.Hi} }

// Xor returns the lane-wise symmetric difference of a and b.
func (a DBB) Xor(b DBB) DBB { return DBB{a.Lo ^ b.Lo, a.Hi ^ b.Hi} }

// Not returns the lane-wise complement of a.
func (a DBB) Not() DBB { return DBB{^a.Lo, ^a.Hi} }

// ReverseBytes reverses the bytes of each lane independently.
func (a DBB) ReverseBytes() DBB { return DBB{a.Lo.ReverseBytes(), a.Hi.ReverseBytes()} }

// Extract folds the two lanes back into a single set via OR, discarding the
// pairing - used once a paired fill/attack computation is done and only the
// combined result is needed.
func (a DBB) Extract() BB { return a.Lo | a.Hi }

// dirPair names the two opposite directions packed into a DBB's Lo/Hi lanes.
type dirPair struct {
	lo, hi       int // shift distance in bits for lane Lo (towards msb) and Hi (towards lsb)
	loWrap       BB  // mask applied to Lo's shift destinations to drop wrapped squares
	hiWrap       BB  // mask applied to Hi's shift destinations to drop wrapped squares
}

var (
	pairNorthSouth = dirPair{lo: 8, hi: 8, loWrap: Universe, hiWrap: Universe}
	pairEastWest   = dirPair{lo: 1, hi: 1, loWrap: NotFileA, hiWrap: NotFileH}
	pairNeSw       = dirPair{lo: 9, hi: 9, loWrap: NotFileA, hiWrap: NotFileH}
	pairNwSe       = dirPair{lo: 7, hi: 7, loWrap: NotFileH, hiWrap: NotFileA}
)

// occludedFill performs the three-doubling dumb7fill described in the design:
// gen is flooded along the direction pair through empty squares. Lo floods
// towards increasing bit index (north-ish), Hi towards decreasing bit index
// (south-ish).
func occludedFill(gen, empty DBB, p dirPair) DBB {
	emptyLo := empty.Lo & p.loWrap
	emptyHi := empty.Hi & p.hiWrap

	gen.Lo |= emptyLo & (gen.Lo << p.lo)
	gen.Hi |= emptyHi & (gen.Hi >> p.hi)
	emptyLo &= emptyLo << p.lo
	emptyHi &= emptyHi >> p.hi

	gen.Lo |= emptyLo & (gen.Lo << (2 * p.lo))
	gen.Hi |= emptyHi & (gen.Hi >> (2 * p.hi))
	emptyLo &= emptyLo << (2 * p.lo)
	emptyHi &= emptyHi >> (2 * p.hi)

	gen.Lo |= emptyLo & (gen.Lo << (4 * p.lo))
	gen.Hi |= emptyHi & (gen.Hi >> (4 * p.hi))

	return gen
}

// fillToAttacks shifts an occluded fill one more square in each direction and
// re-applies the file-wrap mask, turning "squares reachable through empties"
// into "squares attacked", which includes the first blocker on each ray.
func fillToAttacks(fill DBB, p dirPair) DBB {
	return DBB{
		Lo: (fill.Lo << p.lo) & p.loWrap,
		Hi: (fill.Hi >> p.hi) & p.hiWrap,
	}
}

// RookFillsDBB returns, for each of the two ray-family pairs a rook moves
// along, the occluded fill from every square in gen (a set of rook/queen
// origins) through the empty squares in empty. Use Extract after Or-ing the
// North/South and East/West results together, or call RookAttacksDBB for the
// attack sets directly.
func RookFillsDBB(gen, empty BB) (ns, ew DBB) {
	ns = occludedFill(DBB{gen, gen}, DBB{empty, empty}, pairNorthSouth)
	ew = occludedFill(DBB{gen, gen}, DBB{empty, empty}, pairEastWest)
	return
}

// BishopFillsDBB is RookFillsDBB's diagonal counterpart: NE/SW and NW/SE.
func BishopFillsDBB(gen, empty BB) (neSw, nwSe DBB) {
	neSw = occludedFill(DBB{gen, gen}, DBB{empty, empty}, pairNeSw)
	nwSe = occludedFill(DBB{gen, gen}, DBB{empty, empty}, pairNwSe)
	return
}

// RookAttacksDBB returns the combined attack set (including first blockers)
// of every rook/queen origin square in gen, given the empty squares of the
// board - all in one parallel dumb7fill pass.
func RookAttacksDBB(gen, empty BB) BB {
	ns, ew := RookFillsDBB(gen, empty)
	a := fillToAttacks(ns, pairNorthSouth)
	b := fillToAttacks(ew, pairEastWest)
	return a.Extract() | b.Extract()
}

// BishopAttacksDBB is RookAttacksDBB's diagonal counterpart.
func BishopAttacksDBB(gen, empty BB) BB {
	neSw, nwSe := BishopFillsDBB(gen, empty)
	a := fillToAttacks(neSw, pairNeSw)
	b := fillToAttacks(nwSe, pairNwSe)
	return a.Extract() | b.Extract()
}
