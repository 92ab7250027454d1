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

// Package move implements the tagged, bit-packed Move encoding and the
// Sink capability interface move generation writes through - a plain
// counter for perft's hot leaf-counting path, or a Move slice when the
// actual moves are needed (divide mode, tests, or a future search).
package move

import (
	"fmt"
	"strings"

	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

// Move is a move encoded into 16 bits: 6 bits to-square, 6 bits
// from-square, 2 bits promotion piece type, 2 bits move type.
//
//	BITMAP 16-bit
//	1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//	5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	-------------------------------
//	                    1 1 1 1 1 1   to
//	        1 1 1 1 1 1               from
//	    1 1                           promotion piece type (pt-Knight, 0-3)
//	1 1                               move type
type Move uint16

// MoveNone is the zero value: not a valid move.
const MoveNone Move = 0

// Type identifies the special rule a move falls under.
type Type uint8

const (
	Normal Type = iota
	Promotion
	EnPassant
	Castling
)

// IsValid reports whether t is one of the four defined move types.
func (t Type) IsValid() bool { return t <= Castling }

// String names the move type, matching the single-letter tags used in
// move dumps and the teacher's own Move.String().
func (t Type) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		return "-"
	}
}

const (
	fromShift     uint   = 6
	promTypeShift uint   = 12
	typeShift     uint   = 14
	squareMask    Move   = 0x3F
	toMask               = squareMask
	fromMask      Move   = squareMask << fromShift
	promTypeMask  Move   = 3 << promTypeShift
	moveTypeMask  Move   = 3 << typeShift
)

// Create returns an encoded Move. promType is only meaningful when t is
// Promotion; it is clamped to Knight when not promoting so the 2-bit field
// always round-trips to a valid piece type.
func Create(from, to Square, t Type, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// From returns the origin square.
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// To returns the destination square.
func (m Move) To() Square { return Square(m & toMask) }

// Type returns the move's special-rule tag.
func (m Move) Type() Type { return Type((m & moveTypeMask) >> typeShift) }

// PromotionType returns the promotion piece type. Must be ignored unless
// Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid reports whether m has well-formed squares, move type and
// promotion type. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.Type().IsValid() &&
		m.PromotionType().IsValid()
}

// StringUci renders m in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Type() == Promotion {
		sb.WriteByte(m.PromotionType().Char() - 'A' + 'a')
	}
	return sb.String()
}

// String implements fmt.Stringer with a StringBits-style debug dump.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{ none }"
	}
	return fmt.Sprintf("Move{ %-5s type:%s prom:%c (%d) }",
		m.StringUci(), m.Type().String(), m.PromotionType().Char(), uint16(m))
}

// CastleSide identifies one of the four possible castling moves, so Sink's
// AddCastle need not take an already-encoded from/to pair.
type CastleSide uint8

const (
	WhiteKingsideCastle CastleSide = iota
	WhiteQueensideCastle
	BlackKingsideCastle
	BlackQueensideCastle
)

// Squares returns the king's origin and destination square for c.
func (c CastleSide) Squares() (from, to Square) {
	switch c {
	case WhiteKingsideCastle:
		return SqE1, SqG1
	case WhiteQueensideCastle:
		return SqE1, SqC1
	case BlackKingsideCastle:
		return SqE8, SqG8
	case BlackQueensideCastle:
		return SqE8, SqC8
	default:
		return SqNone, SqNone
	}
}

// Sink is the capability a move generator writes discovered moves through.
// Every call names a batch of destination squares reached the same way from
// the same origin (or, for pawn moves that shift a whole bitboard of pawns
// at once, the same origin-to-destination shift), so a Sink that only
// counts moves - the hot perft leaf-counting path - never needs to decode
// an origin square or build a Move value: a pop-count on targets suffices.
// A Sink that needs the actual moves (divide mode, tests, a future search)
// decodes from = to - shift and materializes each one.
type Sink interface {
	// AddPush records non-capturing king/knight/slider moves from a single
	// origin square to each square set in targets.
	AddPush(from Square, targets BB)
	// AddCapture records capturing king/knight/slider moves from a single
	// origin square to each square set in targets.
	AddCapture(from Square, targets BB)
	// AddCastle records a single castling move.
	AddCastle(side CastleSide)
	// AddPawnPush records single pawn pushes landing on targets, shift
	// squares ahead of their origin, excluding the promotion rank.
	AddPawnPush(shift int, targets BB)
	// AddPawnCapture records pawn captures landing on targets, shift
	// squares ahead of their origin, excluding the promotion rank.
	AddPawnCapture(shift int, targets BB)
	// AddPawnDoublePush records two-square pawn pushes landing on targets,
	// shift squares ahead of their origin.
	AddPawnDoublePush(shift int, targets BB)
	// AddPawnPromotion records non-capturing pawn pushes onto the
	// promotion rank, fanning out to all 4 promotion piece types.
	AddPawnPromotion(shift int, targets BB)
	// AddPawnCapturePromotion records capturing pawn moves onto the
	// promotion rank, fanning out to all 4 promotion piece types.
	AddPawnCapturePromotion(shift int, targets BB)
	// AddPawnEpCapture records an en-passant capture from a single origin
	// square onto targets (at most the single en-passant target square).
	AddPawnEpCapture(from Square, targets BB)
}

// Counter is a Sink that only counts pushes, never storing a move or
// decoding an origin square: every method reduces to a pop-count on
// targets (times 4 for the two promotion-fan-out methods), plus one for
// AddCastle. This is the sink movegen uses inside the perft leaf loop and
// for check/checkmate detection, where only the move count is needed.
type Counter struct {
	N uint64
}

func (c *Counter) AddPush(_ Square, targets BB)    { c.N += uint64(targets.PopCount()) }
func (c *Counter) AddCapture(_ Square, targets BB) { c.N += uint64(targets.PopCount()) }
func (c *Counter) AddCastle(CastleSide)            { c.N++ }
func (c *Counter) AddPawnPush(_ int, targets BB)    { c.N += uint64(targets.PopCount()) }
func (c *Counter) AddPawnCapture(_ int, targets BB) { c.N += uint64(targets.PopCount()) }
func (c *Counter) AddPawnDoublePush(_ int, targets BB) { c.N += uint64(targets.PopCount()) }
func (c *Counter) AddPawnPromotion(_ int, targets BB)        { c.N += uint64(targets.PopCount()) * 4 }
func (c *Counter) AddPawnCapturePromotion(_ int, targets BB) { c.N += uint64(targets.PopCount()) * 4 }
func (c *Counter) AddPawnEpCapture(_ Square, targets BB)     { c.N += uint64(targets.PopCount()) }

// List is a Sink that decodes and appends every move to a slice, for
// callers that need the actual moves: --divide mode, perft's targeted test
// cases, and any future search built on this generator.
type List struct {
	Moves []Move
}

// NewList returns a List with capacity reserved for a typical branching
// factor, to avoid reallocation during generation of one position's moves.
func NewList() *List { return &List{Moves: make([]Move, 0, 64)} }

// Len returns the number of moves pushed so far.
func (l *List) Len() int { return len(l.Moves) }

func (l *List) push(from, to Square, t Type, promType PieceType) {
	l.Moves = append(l.Moves, Create(from, to, t, promType))
}

func (l *List) pushEach(from Square, targets BB, t Type) {
	for targets != Empty {
		to := targets.PopLsb()
		l.push(from, to, t, PtNone)
	}
}

func (l *List) pushShifted(shift int, targets BB, t Type) {
	for targets != Empty {
		to := targets.PopLsb()
		from := Square(int(to) - shift)
		l.push(from, to, t, PtNone)
	}
}

func (l *List) pushPromotions(shift int, targets BB) {
	for targets != Empty {
		to := targets.PopLsb()
		from := Square(int(to) - shift)
		l.push(from, to, Promotion, Queen)
		l.push(from, to, Promotion, Knight)
		l.push(from, to, Promotion, Rook)
		l.push(from, to, Promotion, Bishop)
	}
}

func (l *List) AddPush(from Square, targets BB)    { l.pushEach(from, targets, Normal) }
func (l *List) AddCapture(from Square, targets BB) { l.pushEach(from, targets, Normal) }

func (l *List) AddCastle(side CastleSide) {
	from, to := side.Squares()
	l.push(from, to, Castling, PtNone)
}

func (l *List) AddPawnPush(shift int, targets BB)       { l.pushShifted(shift, targets, Normal) }
func (l *List) AddPawnCapture(shift int, targets BB)    { l.pushShifted(shift, targets, Normal) }
func (l *List) AddPawnDoublePush(shift int, targets BB) { l.pushShifted(shift, targets, Normal) }
func (l *List) AddPawnPromotion(shift int, targets BB)        { l.pushPromotions(shift, targets) }
func (l *List) AddPawnCapturePromotion(shift int, targets BB) { l.pushPromotions(shift, targets) }

func (l *List) AddPawnEpCapture(from Square, targets BB) {
	l.pushEach(from, targets, EnPassant)
}
