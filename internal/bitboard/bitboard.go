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

// Package bitboard implements the 64-bit square-set primitive (BB) and the
// paired double-bitboard (DBB) used for parallel dumb7fill/Kogge-Stone
// sliding attack generation.
package bitboard

import (
	"fmt"
	"math/bits"
	"strings"

	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

// BB is a set of up to 64 squares, one bit per square, bit i set iff square i
// is a member of the set.
type BB uint64

const (
	// Empty is the empty set.
	Empty BB = 0
	// Universe contains every square.
	Universe BB = ^BB(0)
)

// File masks.
const (
	FileABB BB = 0x0101010101010101 << iota
	FileBBB
	FileCBB
	FileDBB
	FileEBB
	FileFBB
	FileGBB
	FileHBB
)

// Rank masks.
const (
	Rank1BB BB = 0xFF << (8 * iota)
	Rank2BB
	Rank3BB
	Rank4BB
	Rank5BB
	Rank6BB
	Rank7BB
	Rank8BB
)

// NotFileA and NotFileH are used to stop eastward/westward fills and shifts
// from wrapping around the board edge.
const (
	NotFileA = ^FileABB
	NotFileH = ^FileHBB
)

var fileBB = [8]BB{FileABB, FileBBB, FileCBB, FileDBB, FileEBB, FileFBB, FileGBB, FileHBB}
var rankBB = [8]BB{Rank1BB, Rank2BB, Rank3BB, Rank4BB, Rank5BB, Rank6BB, Rank7BB, Rank8BB}

// FileMask returns the full-file bitboard containing f.
func FileMask(f File) BB { return fileBB[f] }

// RankMask returns the full-rank bitboard containing r.
func RankMask(r Rank) BB { return rankBB[r] }

// SquareBB returns the singleton set containing just sq.
func SquareBB(sq Square) BB {
	if !sq.IsValid() {
		return Empty
	}
	return BB(1) << sq
}

// Has reports whether sq is a member of b.
func (b BB) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

// With returns b with sq added.
func (b BB) With(sq Square) BB { return b | SquareBB(sq) }

// Without returns b with sq removed.
func (b BB) Without(sq Square) BB { return b &^ SquareBB(sq) }

// Lsb returns the least significant set square (bit-scan-forward). Returns
// SqNone if b is empty.
func (b BB) Lsb() Square {
	if b == Empty {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square. Returns SqNone if b is empty.
func (b BB) Msb() Square {
	if b == Empty {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns and clears the least significant square of *b.
func (b *BB) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// PopCount returns the number of squares in b.
func (b BB) PopCount() int { return bits.OnesCount64(uint64(b)) }

// RotateLeft rotates the bits of b left by k, wrapping around - used to
// realize directional shifts that wrap (e.g. a rank-relative shift).
func (b BB) RotateLeft(k int) BB { return BB(bits.RotateLeft64(uint64(b), k)) }

// ReverseBytes reverses the 8 bytes of b, a cheap way to vertically flip a
// bitboard (rank 1 <-> rank 8, etc.) used by the double-bitboard fills.
func (b BB) ReverseBytes() BB { return BB(bits.ReverseBytes64(uint64(b))) }

// Shift moves every set bit of b by one square in direction d, clearing bits
// that would wrap around a file edge.
func Shift(b BB, d Direction) BB {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & NotFileH) << 1
	case West:
		return (b & NotFileA) >> 1
	case Northeast:
		return (b & NotFileH) << 9
	case Northwest:
		return (b & NotFileA) << 7
	case Southeast:
		return (b & NotFileH) >> 7
	case Southwest:
		return (b & NotFileA) >> 9
	default:
		return Empty
	}
}

// ForEach calls fn once for every square set in b, in increasing order.
func (b BB) ForEach(fn func(sq Square)) {
	for bb := b; bb != Empty; {
		fn(bb.PopLsb())
	}
}

// String renders b as a human readable 8x8 board, rank 8 first.
func (b BB) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString(fmt.Sprintf("| %d\n", r+1))
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}
