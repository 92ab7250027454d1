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

// Board is the minimal read-only view of a position that the attacks
// aggregator needs. internal/position.Position satisfies it; keeping it as
// an interface here (instead of importing position directly) avoids an
// import cycle, since position depends on attacks for move generation.
type Board interface {
	OccupiedAll() BB
	OccupiedBy(c Color) BB
	PiecesBB(c Color, pt PieceType) BB
	EnPassantSquare() Square
	ZobristKey() uint64
}

var nonPawnTypes = [5]PieceType{King, Knight, Bishop, Rook, Queen}

// PositionAttacks holds every from-square and to-square attack/defend
// bitboard for a position, plus per-color aggregates and mobility counts.
// It is computed once per position and reused by check detection, pin
// detection and static-exchange-style queries; Compute is a no-op if
// called again with the same zobrist key.
type PositionAttacks struct {
	zobrist uint64

	// From[c][sq] is every square a piece of color c on sq attacks/defends.
	From [ColorLength][SqLength]BB
	// To[c][sq] is every square of color c that attacks/defends sq.
	To [ColorLength][SqLength]BB
	// All[c] is the union of every attack/defend square of color c.
	All [ColorLength]BB
	// Piece[c][pt] is the union of every attack/defend square of color c's
	// pieces of type pt.
	Piece [ColorLength][PtLength]BB
	// Mobility[c] counts pseudo-legal destination squares not occupied by
	// color c's own pieces.
	Mobility [ColorLength]int
	// Pawns[c] is every square attacked by a pawn of color c.
	Pawns [ColorLength]BB
	// PawnsDouble[c] is every square attacked by two pawns of color c at once.
	PawnsDouble [ColorLength]BB
}

// NewPositionAttacks returns a zero-value PositionAttacks ready for Compute.
func NewPositionAttacks() *PositionAttacks {
	return &PositionAttacks{zobrist: ^uint64(0)}
}

// Clear resets every field without reallocating, for reuse across positions.
func (a *PositionAttacks) Clear() {
	for sq := SqA1; sq < SqNone; sq++ {
		a.From[White][sq] = Empty
		a.From[Black][sq] = Empty
		a.To[White][sq] = Empty
		a.To[Black][sq] = Empty
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = Empty
		a.Piece[Black][pt] = Empty
	}
	a.All[White], a.All[Black] = Empty, Empty
	a.Mobility[White], a.Mobility[Black] = 0, 0
	a.Pawns[White], a.Pawns[Black] = Empty, Empty
	a.PawnsDouble[White], a.PawnsDouble[Black] = Empty, Empty
}

// Compute (re)derives every attack table for b, skipping the work entirely
// if b's zobrist key matches the last position this instance computed.
func (a *PositionAttacks) Compute(b Board) {
	key := b.ZobristKey()
	if key == a.zobrist {
		return
	}
	a.Clear()
	a.zobrist = key
	a.nonPawnAttacks(b)
	a.pawnAttacks(b)
}

func (a *PositionAttacks) nonPawnAttacks(b Board) {
	occ := b.OccupiedAll()
	for c := White; c <= Black; c++ {
		own := b.OccupiedBy(c)
		for _, pt := range nonPawnTypes {
			pieces := b.PiecesBB(c, pt)
			for pieces != Empty {
				sq := pieces.PopLsb()
				atk := Attacks(pt, sq, occ)
				a.From[c][sq] = atk
				a.Piece[c][pt] |= atk
				a.All[c] |= atk
				for tmp := atk; tmp != Empty; {
					to := tmp.PopLsb()
					a.To[c][to] |= SquareBB(sq)
				}
				a.Mobility[c] += (atk &^ own).PopCount()
			}
		}
	}
}

func (a *PositionAttacks) pawnAttacks(b Board) {
	for c := White; c <= Black; c++ {
		pawns := b.PiecesBB(c, Pawn)
		var east, west BB
		if c == White {
			east, west = Shift(pawns, Northeast), Shift(pawns, Northwest)
		} else {
			east, west = Shift(pawns, Southeast), Shift(pawns, Southwest)
		}
		a.Pawns[c] = east | west
		a.PawnsDouble[c] = east & west
	}
}

// AttacksTo returns every square occupied by a piece of color c that attacks
// sq, including an en-passant capturer of a pawn standing on sq (used when
// sq is the en-passant target).
func AttacksTo(b Board, sq Square, c Color) BB {
	occ := b.OccupiedAll()
	result := (PawnAttacks(c.Flip(), sq) & b.PiecesBB(c, Pawn)) |
		(Attacks(Knight, sq, occ) & b.PiecesBB(c, Knight)) |
		(Attacks(King, sq, occ) & b.PiecesBB(c, King)) |
		(Attacks(Rook, sq, occ) & (b.PiecesBB(c, Rook) | b.PiecesBB(c, Queen))) |
		(Attacks(Bishop, sq, occ) & (b.PiecesBB(c, Bishop) | b.PiecesBB(c, Queen)))

	if ep := b.EnPassantSquare(); ep != SqNone && ep == sq {
		result |= PawnAttacks(c.Flip(), sq) & b.PiecesBB(c, Pawn)
	}
	return result
}

// RevealedAttacks returns the slider attacks (rook/queen and bishop/queen)
// of color c onto sq after occupied has already had some piece removed from
// it, restricted to attackers still present in occupied - used to detect
// discovered checks/pins once a blocker is hypothetically lifted.
func RevealedAttacks(b Board, sq Square, occupied BB, c Color) BB {
	return (Attacks(Rook, sq, occupied) & (b.PiecesBB(c, Rook) | b.PiecesBB(c, Queen)) & occupied) |
		(Attacks(Bishop, sq, occupied) & (b.PiecesBB(c, Bishop) | b.PiecesBB(c, Queen)) & occupied)
}
