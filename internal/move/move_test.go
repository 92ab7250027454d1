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

package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

func TestCreateRoundTripsFields(t *testing.T) {
	tests := []struct {
		name     string
		from, to Square
		t        Type
		prom     PieceType
	}{
		{"normal", SqE2, SqE4, Normal, PtNone},
		{"capture", SqD4, SqE5, Normal, PtNone},
		{"en passant", SqE5, SqD6, EnPassant, PtNone},
		{"castling", SqE1, SqG1, Castling, PtNone},
		{"promotion to queen", SqE7, SqE8, Promotion, Queen},
		{"promotion to knight", SqA7, SqB8, Promotion, Knight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Create(tt.from, tt.to, tt.t, tt.prom)
			assert.Equal(t, tt.from, m.From())
			assert.Equal(t, tt.to, m.To())
			assert.Equal(t, tt.t, m.Type())
			assert.True(t, m.IsValid())
			if tt.t == Promotion {
				assert.Equal(t, tt.prom, m.PromotionType())
			}
		})
	}
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.StringUci())
	assert.Equal(t, "Move{ none }", MoveNone.String())
}

func TestMoveStringUci(t *testing.T) {
	m := Create(SqE2, SqE4, Normal, PtNone)
	assert.Equal(t, "e2e4", m.StringUci())

	promo := Create(SqE7, SqE8, Promotion, Queen)
	assert.Equal(t, "e7e8q", promo.StringUci())

	promoKnight := Create(SqA7, SqB8, Promotion, Knight)
	assert.Equal(t, "a7b8n", promoKnight.StringUci())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "n", Normal.String())
	assert.Equal(t, "p", Promotion.String())
	assert.Equal(t, "e", EnPassant.String())
	assert.Equal(t, "c", Castling.String())
}

func TestCastleSideSquares(t *testing.T) {
	tests := []struct {
		side     CastleSide
		from, to Square
	}{
		{WhiteKingsideCastle, SqE1, SqG1},
		{WhiteQueensideCastle, SqE1, SqC1},
		{BlackKingsideCastle, SqE8, SqG8},
		{BlackQueensideCastle, SqE8, SqC8},
	}
	for _, tt := range tests {
		from, to := tt.side.Squares()
		assert.Equal(t, tt.from, from)
		assert.Equal(t, tt.to, to)
	}
}

func TestCounterCountsEveryKindOfAdd(t *testing.T) {
	var c Counter
	c.AddPush(SqE4, SquareBB(SqE5)|SquareBB(SqD5))
	c.AddCapture(SqE4, SquareBB(SqD5))
	c.AddCastle(WhiteKingsideCastle)
	c.AddPawnPush(8, SquareBB(SqE4))
	c.AddPawnCapture(9, SquareBB(SqD4))
	c.AddPawnDoublePush(16, SquareBB(SqE4))
	c.AddPawnPromotion(8, SquareBB(SqE8))
	c.AddPawnCapturePromotion(9, SquareBB(SqD8))
	c.AddPawnEpCapture(SqE5, SquareBB(SqD6))

	// 2 pushes + 1 capture + 1 castle + 1 pawn push + 1 pawn capture +
	// 1 double push + 4 promotions + 4 capture-promotions + 1 ep capture.
	assert.Equal(t, uint64(16), c.N)
}

func TestListAddPushAndAddCaptureDecodeFromSquare(t *testing.T) {
	l := NewList()
	l.AddPush(SqE4, SquareBB(SqE5)|SquareBB(SqD5))
	l.AddCapture(SqE4, SquareBB(SqF5))
	assert.Equal(t, 3, l.Len())
	for _, m := range l.Moves {
		assert.Equal(t, SqE4, m.From())
		assert.Equal(t, Normal, m.Type())
	}
}

func TestListAddCastle(t *testing.T) {
	l := NewList()
	l.AddCastle(BlackQueensideCastle)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, SqE8, l.Moves[0].From())
	assert.Equal(t, SqC8, l.Moves[0].To())
	assert.Equal(t, Castling, l.Moves[0].Type())
}

func TestListAddPawnPushDecodesFromShift(t *testing.T) {
	l := NewList()
	l.AddPawnPush(8, SquareBB(SqE4))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, SqE3, l.Moves[0].From())
	assert.Equal(t, SqE4, l.Moves[0].To())
}

func TestListAddPawnDoublePushDecodesFromShift(t *testing.T) {
	l := NewList()
	l.AddPawnDoublePush(16, SquareBB(SqE4))
	assert.Equal(t, SqE2, l.Moves[0].From())
	assert.Equal(t, SqE4, l.Moves[0].To())
}

func TestListAddPawnPromotionFansOutToFourPieces(t *testing.T) {
	l := NewList()
	l.AddPawnPromotion(8, SquareBB(SqE8))
	assert.Equal(t, 4, l.Len())

	seen := map[PieceType]bool{}
	for _, m := range l.Moves {
		assert.Equal(t, SqE7, m.From())
		assert.Equal(t, SqE8, m.To())
		assert.Equal(t, Promotion, m.Type())
		seen[m.PromotionType()] = true
	}
	assert.True(t, seen[Queen])
	assert.True(t, seen[Knight])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Bishop])
}

func TestListAddPawnCapturePromotionFansOutToFourPieces(t *testing.T) {
	l := NewList()
	l.AddPawnCapturePromotion(9, SquareBB(SqD8))
	assert.Equal(t, 4, l.Len())
	for _, m := range l.Moves {
		assert.Equal(t, SqC7, m.From())
		assert.Equal(t, SqD8, m.To())
	}
}

func TestListAddPawnEpCapture(t *testing.T) {
	l := NewList()
	l.AddPawnEpCapture(SqE5, SquareBB(SqD6))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, SqE5, l.Moves[0].From())
	assert.Equal(t, SqD6, l.Moves[0].To())
	assert.Equal(t, EnPassant, l.Moves[0].Type())
}
