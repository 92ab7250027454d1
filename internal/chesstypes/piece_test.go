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

package chesstypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
	assert.Equal(t, "-", ColorNone.String())
}

func TestMakePieceRoundTripsTypeAndColor(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			assert.True(t, p.IsValid())
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
}

func TestPieceNoneIsInvalid(t *testing.T) {
	assert.False(t, PieceNone.IsValid())
}

func TestPieceChar(t *testing.T) {
	tests := []struct {
		p    Piece
		want byte
	}{
		{MakePiece(White, Pawn), 'P'},
		{MakePiece(Black, Pawn), 'p'},
		{MakePiece(White, Knight), 'N'},
		{MakePiece(Black, Queen), 'q'},
		{MakePiece(White, King), 'K'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.Char())
	}
}

func TestPieceStringAndInvalid(t *testing.T) {
	assert.Equal(t, "K", MakePiece(White, King).String())
	assert.Equal(t, "-", PieceNone.String())
}

func TestCastlingRightsHasAndString(t *testing.T) {
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAll.String())

	cr := WhiteKingside | BlackQueenside
	assert.True(t, cr.Has(WhiteKingside))
	assert.True(t, cr.Has(BlackQueenside))
	assert.False(t, cr.Has(WhiteQueenside))
	assert.Equal(t, "Kq", cr.String())
}

func TestKingsideQueensideHelpers(t *testing.T) {
	assert.Equal(t, WhiteKingside, Kingside(White))
	assert.Equal(t, BlackKingside, Kingside(Black))
	assert.Equal(t, WhiteQueenside, Queenside(White))
	assert.Equal(t, BlackQueenside, Queenside(Black))
}
