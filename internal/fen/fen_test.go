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

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

func TestParseStartFEN(t *testing.T) {
	p, err := Parse(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, p.SideToMove)
	assert.Equal(t, CastlingAll, p.Castling)
	assert.Equal(t, SqNone, p.EnPassant)
	assert.Equal(t, 0, p.HalfMoveClock)
	assert.Equal(t, 1, p.FullMoveNumber)
	assert.Equal(t, MakePiece(White, Rook), p.Placement[SqA1])
	assert.Equal(t, MakePiece(Black, King), p.Placement[SqE8])
	assert.Equal(t, PieceNone, p.Placement[SqE4])
}

func TestParseOnlyPlacementFieldDefaults(t *testing.T) {
	p, err := Parse("8/8/8/8/8/8/8/K6k")
	assert.NoError(t, err)
	assert.Equal(t, White, p.SideToMove)
	assert.Equal(t, CastlingNone, p.Castling)
	assert.Equal(t, SqNone, p.EnPassant)
	assert.Equal(t, 1, p.FullMoveNumber)
}

func TestParseCastlingAndEnPassant(t *testing.T) {
	p, err := Parse("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	assert.Equal(t, SqD6, p.EnPassant)
	assert.Equal(t, CastlingNone, p.Castling)

	p, err = Parse("r3k2r/8/8/8/8/8/8/R3K2R w Qk - 12 34")
	assert.NoError(t, err)
	assert.Equal(t, WhiteQueenside|BlackKingside, p.Castling)
	assert.Equal(t, 12, p.HalfMoveClock)
	assert.Equal(t, 34, p.FullMoveNumber)
}

func TestParseRejectsEmptyPositionField(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestParseRejectsInvalidPositionCharacters(t *testing.T) {
	_, err := Parse("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsPositionFieldOverrunningTheBoard(t *testing.T) {
	_, err := Parse("rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsPositionFieldEndingEarly(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidSideToMove(t *testing.T) {
	_, err := Parse("8/8/8/8/8/8/8/K6k x - - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidCastlingRights(t *testing.T) {
	_, err := Parse("8/8/8/8/8/8/8/K6k w XYZ - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidEnPassantTarget(t *testing.T) {
	_, err := Parse("8/8/8/8/8/8/8/K6k w - z9 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidHalfMoveClock(t *testing.T) {
	_, err := Parse("8/8/8/8/8/8/8/K6k w - - abc 0")
	assert.Error(t, err)
}

func TestParseRejectsInvalidFullMoveNumber(t *testing.T) {
	_, err := Parse("8/8/8/8/8/8/8/K6k w - - 0 xyz")
	assert.Error(t, err)
}

func TestParseFullMoveNumberZeroClampsToOne(t *testing.T) {
	p, err := Parse("8/8/8/8/8/8/8/K6k w - - 0 0")
	assert.NoError(t, err)
	assert.Equal(t, 1, p.FullMoveNumber)
}

func TestFormatRoundTripsStartFEN(t *testing.T) {
	p, err := Parse(StartFEN)
	assert.NoError(t, err)

	got := Format(func(sq Square) Piece { return p.Placement[sq] },
		p.SideToMove, p.Castling, p.EnPassant, p.HalfMoveClock, p.FullMoveNumber)
	assert.Equal(t, StartFEN, got)
}

func TestFormatRoundTripsEnPassantAndPartialCastling(t *testing.T) {
	const in = "r3k2r/8/8/3pP3/8/8/8/R3K2R w Qk d6 7 21"
	p, err := Parse(in)
	assert.NoError(t, err)

	got := Format(func(sq Square) Piece { return p.Placement[sq] },
		p.SideToMove, p.Castling, p.EnPassant, p.HalfMoveClock, p.FullMoveNumber)
	assert.Equal(t, in, got)
}
