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

// Package chesstypes holds the scalar domain types shared by every other
// package: Square, Color, Piece, PieceType, CastlingRights and Direction.
package chesstypes

import "fmt"

// Square represents one square on the board, 0..63, A1=0 ... H8=63.
// SqNone (64) represents "no square".
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SqLength is the number of valid squares.
const SqLength = int(SqNone)

// File is a board file, A..H.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// Rank is a board rank, 1..8 represented 0..7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool { return sq < SqNone }

// FileOf returns the file of the square.
func (sq Square) FileOf() File { return File(sq & 7) }

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank { return Rank(sq >> 3) }

// IsValid reports whether the file is on the board.
func (f File) IsValid() bool { return f < FileNone }

// IsValid reports whether the rank is on the board.
func (r Rank) IsValid() bool { return r < RankNone }

// SquareOf builds a square from a file and a rank. Returns SqNone for an
// out-of-range file or rank.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two character algebraic square such as "e4". Returns
// SqNone if s is not a valid square string.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the algebraic notation of the square, e.g. "e4", or "-" for
// SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.FileOf()), '1'+byte(sq.RankOf()))
}

// String returns the file letter.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + byte(f)))
}

// String returns the rank digit.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + byte(r)))
}

// Direction is one of the 8 ray directions on the board, expressed as the
// square-index delta it corresponds to.
type Direction int

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 9
	Northwest Direction = 7
	Southeast Direction = -7
	Southwest Direction = -9
)

// Directions lists all 8 ray directions in a fixed order used for table
// initialization.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}
