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

// Package tree wraps a Position with the bookkeeping a recursive perft
// descent needs: a depth counter and a single shared move arena that every
// ply appends its legal moves onto, instead of allocating a fresh slice per
// ply. A ply's moves live in arena[start:end]; ClearStack truncates the
// arena back to a prior mark once a ply is done exploring its children,
// making the arena a LIFO stack shared across the whole recursion.
package tree

import (
	"github.com/frankkopp/perftgo/internal/assert"
	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
	"github.com/frankkopp/perftgo/internal/move"
	"github.com/frankkopp/perftgo/internal/movegen"
	"github.com/frankkopp/perftgo/internal/position"
)

// Tree is a position plus the shared move arena and depth counter a perft
// (or any other fixed-depth recursive) walk needs.
type Tree struct {
	pos          *position.Position
	maxDepth     int
	currentDepth int
	moves        []move.Move
}

// New returns a Tree rooted at the position described by fen, sized for a
// walk of at most maxDepth plies.
func New(fen string, maxDepth int) (*Tree, error) {
	pos, err := position.NewPositionFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Tree{
		pos:      pos,
		maxDepth: maxDepth,
		moves:    make([]move.Move, 0, 4096),
	}, nil
}

// Position returns the underlying position.
func (t *Tree) Position() *position.Position { return t.pos }

// Key returns the current position's Zobrist hash.
func (t *Tree) Key() uint64 { return t.pos.ZobristKey() }

// Depth returns how many moves deep the current recursion has made.
func (t *Tree) Depth() int { return t.currentDepth }

// RemainingDepth returns how many plies are left before maxDepth.
func (t *Tree) RemainingDepth() int { return t.maxDepth - t.currentDepth }

// Make applies m to the position and advances the depth counter.
func (t *Tree) Make(m move.Move) {
	t.pos.DoMove(m)
	t.currentDepth++
}

// Unmake reverses the most recently applied move and retreats the depth
// counter.
func (t *Tree) Unmake() {
	t.pos.UndoMove()
	t.currentDepth--
}

// arenaSink is a move.Sink that decodes and appends onto the tree's shared
// arena through a pointer, so every ply's generation grows the same backing
// slice rather than allocating its own.
type arenaSink struct {
	moves *[]move.Move
}

func (s arenaSink) push(from, to Square, t move.Type, promType PieceType) {
	*s.moves = append(*s.moves, move.Create(from, to, t, promType))
}

func (s arenaSink) pushEach(from Square, targets BB, t move.Type) {
	for targets != Empty {
		to := targets.PopLsb()
		s.push(from, to, t, PtNone)
	}
}

func (s arenaSink) pushShifted(shift int, targets BB, t move.Type) {
	for targets != Empty {
		to := targets.PopLsb()
		from := Square(int(to) - shift)
		s.push(from, to, t, PtNone)
	}
}

func (s arenaSink) pushPromotions(shift int, targets BB) {
	for targets != Empty {
		to := targets.PopLsb()
		from := Square(int(to) - shift)
		s.push(from, to, move.Promotion, Queen)
		s.push(from, to, move.Promotion, Knight)
		s.push(from, to, move.Promotion, Rook)
		s.push(from, to, move.Promotion, Bishop)
	}
}

func (s arenaSink) AddPush(from Square, targets BB)    { s.pushEach(from, targets, move.Normal) }
func (s arenaSink) AddCapture(from Square, targets BB) { s.pushEach(from, targets, move.Normal) }

func (s arenaSink) AddCastle(side move.CastleSide) {
	from, to := side.Squares()
	s.push(from, to, move.Castling, PtNone)
}

func (s arenaSink) AddPawnPush(shift int, targets BB)       { s.pushShifted(shift, targets, move.Normal) }
func (s arenaSink) AddPawnCapture(shift int, targets BB)    { s.pushShifted(shift, targets, move.Normal) }
func (s arenaSink) AddPawnDoublePush(shift int, targets BB) { s.pushShifted(shift, targets, move.Normal) }
func (s arenaSink) AddPawnPromotion(shift int, targets BB)        { s.pushPromotions(shift, targets) }
func (s arenaSink) AddPawnCapturePromotion(shift int, targets BB) { s.pushPromotions(shift, targets) }

func (s arenaSink) AddPawnEpCapture(from Square, targets BB) {
	s.pushEach(from, targets, move.EnPassant)
}

// GenerateLegalMoves appends the current position's legal moves onto the
// shared arena and returns whether the side to move is in check, plus the
// arena segment [start, end) holding this ply's moves.
func (t *Tree) GenerateLegalMoves() (inCheck bool, start, end int) {
	start = len(t.moves)
	movegen.GenerateLegalMoves(t.pos, arenaSink{&t.moves})
	end = len(t.moves)
	inCheck = movegen.IsInCheck(t.pos)
	return inCheck, start, end
}

// CountLegalMoves returns whether the side to move is in check and a
// Counter holding how many legal moves it has, without growing the arena -
// the perft leaf case needs only the count.
func (t *Tree) CountLegalMoves() (inCheck bool, counter *move.Counter) {
	counter = &move.Counter{}
	movegen.GenerateLegalMoves(t.pos, counter)
	return movegen.IsInCheck(t.pos), counter
}

// MoveAt returns the move stored at arena index idx.
func (t *Tree) MoveAt(idx int) move.Move { return t.moves[idx] }

// ClearStack truncates the shared arena back to length, discarding every
// move pushed after that mark - used once a ply has finished exploring all
// of its children, reclaiming the arena space in LIFO order.
func (t *Tree) ClearStack(length int) {
	if assert.DEBUG {
		assert.Assert(length >= 0 && length <= len(t.moves),
			"tree: ClearStack(%d) out of bounds for arena of length %d", length, len(t.moves))
	}
	t.moves = t.moves[:length]
}
