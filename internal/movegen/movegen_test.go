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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/perftgo/internal/chesstypes"
	"github.com/frankkopp/perftgo/internal/move"
	"github.com/frankkopp/perftgo/internal/position"
)

func moveCount(t *testing.T, fen string) int {
	p, err := position.NewPositionFEN(fen)
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	return list.Len()
}

func TestStartPositionHas20Moves(t *testing.T) {
	p := position.NewPosition()
	list := move.NewList()
	GenerateLegalMoves(p, list)
	assert.Equal(t, 20, list.Len())
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// white king on e1 is attacked by both the rook on e8 (file) and the
	// knight on d3 (fork) - only the king may move.
	p, err := position.NewPositionFEN("4r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	for _, m := range list.Moves {
		assert.Equal(t, SqE1, m.From())
	}
	assert.True(t, list.Len() > 0)
}

func TestSingleCheckMustCaptureOrBlockOrMoveKing(t *testing.T) {
	// black rook checks along the e-file (e2-e7 clear); only the king,
	// the bishop (blocking on e3/e7) or the knight (blocking on e5) have a
	// legal move.
	p, err := position.NewPositionFEN("4r3/8/8/2B5/8/3N4/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	assert.True(t, list.Len() > 0)
	for _, m := range list.Moves {
		switch m.From() {
		case SqE1, SqD3, SqC5:
			// king, knight and bishop are the only pieces with a legal move
		default:
			t.Fatalf("unexpected mover %s in single-check position", m.From())
		}
	}
}

func TestPinnedRookCannotLeavePinLine(t *testing.T) {
	// white rook on e2 is pinned to the king on e1 by the black rook on e8;
	// it may only move along the e-file, never sideways.
	p, err := position.NewPositionFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	for _, m := range list.Moves {
		if m.From() == SqE2 {
			assert.Equal(t, FileE, m.To().FileOf())
		}
	}
}

func TestEnPassantDiscoveredCheckIsFiltered(t *testing.T) {
	// capturing en passant would remove both the d5 and e5 pawns from rank
	// 5, opening the black rook's attack on the white king along that rank.
	p, err := position.NewPositionFEN("4k3/8/8/r2Pp2K/8/8/8/8 w - e6 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	for _, m := range list.Moves {
		if m.Type() == move.EnPassant {
			t.Fatalf("en passant capture %s should have been filtered as a discovered check", m.StringUci())
		}
	}
}

func TestCastlingBlockedWhenPassingThroughAttackedSquare(t *testing.T) {
	// black rook on f8 attacks f1, which the white king would have to cross
	// to castle kingside.
	p, err := position.NewPositionFEN("5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	for _, m := range list.Moves {
		assert.NotEqual(t, move.Castling, m.Type())
	}
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	p, err := position.NewPositionFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	found := 0
	for _, m := range list.Moves {
		if m.Type() == move.Castling {
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	p, err := position.NewPositionFEN("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	list := move.NewList()
	GenerateLegalMoves(p, list)
	promotions := 0
	for _, m := range list.Moves {
		if m.Type() == move.Promotion && m.From() == SqA7 {
			promotions++
		}
	}
	assert.Equal(t, 4, promotions)
}

func TestHasLegalMoveFalseOnCheckmate(t *testing.T) {
	// back-rank mate: black king on h8 is boxed in by its own f7/g7/h7
	// pawns, and the white rook on a8 checks along the 8th rank, covering g8.
	p, err := position.NewPositionFEN("R6k/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(p))
	assert.True(t, IsInCheck(p))
}

func TestHasLegalMoveTrueOnStartPosition(t *testing.T) {
	p := position.NewPosition()
	assert.True(t, HasLegalMove(p))
	assert.False(t, IsInCheck(p))
}

func TestKiwipeteMoveCount(t *testing.T) {
	// the standard "Kiwipete" perft test position: depth-1 move count is a
	// well known reference value (48) that exercises castling, en passant
	// availability and promotions together.
	assert.Equal(t, 48, moveCount(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
}
