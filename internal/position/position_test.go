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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/perftgo/internal/chesstypes"
	"github.com/frankkopp/perftgo/internal/move"
)

func TestNewPositionIsStartPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqA1))
	assert.Equal(t, MakePiece(Black, King), p.PieceOn(SqE8))
	assert.Equal(t, SqE1, p.KingSquare(White))
}

func TestDoMoveUndoMoveRestoresState(t *testing.T) {
	p := NewPosition()
	before := p.FEN()
	beforeKey := p.ZobristKey()

	m := move.Create(SqE2, SqE4, move.Normal, PtNone)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqE4))
	assert.Equal(t, PieceNone, p.PieceOn(SqE2))
	assert.Equal(t, SqE3, p.EnPassantSquare())
	assert.Equal(t, Black, p.SideToMove())
	assert.NotEqual(t, beforeKey, p.ZobristKey())

	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestEnPassantCaptureRemovesCapturedPawn(t *testing.T) {
	p, err := NewPositionFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	m := move.Create(SqE5, SqD6, move.EnPassant, PtNone)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.PieceOn(SqD5))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqD6))
	p.UndoMove()
	assert.Equal(t, MakePiece(Black, Pawn), p.PieceOn(SqD5))
	assert.Equal(t, PieceNone, p.PieceOn(SqD6))
}

func TestCastlingMovesRookToo(t *testing.T) {
	p, err := NewPositionFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m := move.Create(SqE1, SqG1, move.Castling, PtNone)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, King), p.PieceOn(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqE1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
	assert.False(t, p.CastlingRights().Has(WhiteKingside))
	assert.False(t, p.CastlingRights().Has(WhiteQueenside))
	p.UndoMove()
	assert.True(t, p.CastlingRights().Has(WhiteKingside))
	assert.Equal(t, MakePiece(White, Rook), p.PieceOn(SqH1))
}

func TestPromotionReplacesPawn(t *testing.T) {
	p, err := NewPositionFEN("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	m := move.Create(SqA7, SqA8, move.Promotion, Queen)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Queen), p.PieceOn(SqA8))
	p.UndoMove()
	assert.Equal(t, MakePiece(White, Pawn), p.PieceOn(SqA7))
	assert.Equal(t, PieceNone, p.PieceOn(SqA8))
}

func TestIsAttacked(t *testing.T) {
	p, err := NewPositionFEN("4k3/8/8/8/4r3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsAttacked(SqE1, Black))
	assert.False(t, p.IsAttacked(SqD1, Black))
}

func TestRoundTripThroughFEN(t *testing.T) {
	f := "r1b1k2r/pppp1ppp/2n2n2/1Bb1p2q/4P3/2NP1N2/1PP2PPP/R1BQK2R w KQkq - 4 6"
	p, err := NewPositionFEN(f)
	assert.NoError(t, err)
	assert.Equal(t, f, p.FEN())
}
