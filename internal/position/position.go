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

// Package position represents a chess board and its position: an 8x8 piece
// array, per-color-per-type bitboards, a fixed-size undo history and an
// incrementally maintained Zobrist key. Create one with NewPosition or
// NewPositionFEN; mutate it only through DoMove/UndoMove so the bitboards,
// king squares and hash key all stay in lockstep with the piece array.
package position

import (
	"fmt"

	"github.com/frankkopp/perftgo/internal/assert"
	"github.com/frankkopp/perftgo/internal/attacks"
	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
	"github.com/frankkopp/perftgo/internal/fen"
	"github.com/frankkopp/perftgo/internal/move"
	"github.com/frankkopp/perftgo/internal/zobrist"
)

// maxHistory bounds the undo stack. A perft/game tree deeper than this many
// plies from the root would be pathological; callers needing more should
// raise this constant rather than grow the stack dynamically, matching the
// teacher's own fixed-size history array.
const maxHistory = 512

// Key is a position's Zobrist hash.
type Key = zobrist.Key

type historyEntry struct {
	zobristKey      Key
	move            move.Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is a mutable chess board. The zero value is not usable; build
// one with NewPosition or NewPositionFEN.
type Position struct {
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	sideToMove      Color
	fullMoveNumber  int

	kingSquare [ColorLength]Square
	piecesBB   [ColorLength][PtLength]BB
	occupiedBB [ColorLength]BB
	zobristKey Key

	historyCount int
	history      [maxHistory]historyEntry
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFEN(fen.StartFEN)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return p
}

// NewPositionFEN returns a position built from a FEN string.
func NewPositionFEN(fenString string) (*Position, error) {
	parsed, err := fen.Parse(fenString)
	if err != nil {
		return nil, err
	}
	p := &Position{enPassantSquare: SqNone}
	for sq := SqA1; sq < SqNone; sq++ {
		p.board[sq] = PieceNone
	}
	for sq := SqA1; sq < SqNone; sq++ {
		if piece := parsed.Placement[sq]; piece != PieceNone {
			p.putPiece(piece, sq)
		}
	}
	p.sideToMove = parsed.SideToMove
	if p.sideToMove == Black {
		p.zobristKey ^= zobrist.SideToMove()
	}
	p.castlingRights = parsed.Castling
	p.zobristKey ^= zobrist.Castling(p.castlingRights)
	p.enPassantSquare = parsed.EnPassant
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
	}
	p.halfMoveClock = parsed.HalfMoveClock
	p.fullMoveNumber = parsed.FullMoveNumber
	return p, nil
}

// castlingLoss returns the castling rights forfeited when a piece leaves or
// arrives at sq - the four rook home squares and the two king home squares.
func castlingLoss(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return WhiteKingside | WhiteQueenside
	case SqA1:
		return WhiteQueenside
	case SqH1:
		return WhiteKingside
	case SqE8:
		return BlackKingside | BlackQueenside
	case SqA8:
		return BlackQueenside
	case SqH8:
		return BlackKingside
	default:
		return CastlingNone
	}
}

// DoMove applies m to the position. m is assumed pseudo-legal (legality
// w.r.t. leaving one's own king in check is the move generator's
// responsibility, not DoMove's) but must have a valid encoding and a piece
// of the side to move on its origin square.
func (p *Position) DoMove(m move.Move) {
	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	targetPc := p.board[toSq]

	h := &p.history[p.historyCount]
	h.zobristKey = p.zobristKey
	h.move = m
	h.capturedPiece = targetPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyCount++

	switch m.Type() {
	case move.Normal:
		p.doNormalMove(fromSq, toSq, targetPc, fromPc)
	case move.Promotion:
		p.doPromotionMove(m, myColor, toSq, targetPc, fromSq)
	case move.EnPassant:
		p.doEnPassantMove(toSq, fromSq)
	case move.Castling:
		p.doCastlingMove(toSq, fromSq)
	}

	p.fullMoveNumber += int(myColor) // increments after Black's move only
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.SideToMove()

	if assert.DEBUG {
		p.checkInvariants()
	}
}

// UndoMove reverts the most recently applied move.
func (p *Position) UndoMove() {
	p.historyCount--
	h := &p.history[p.historyCount]
	p.sideToMove = p.sideToMove.Flip()
	p.fullMoveNumber -= int(p.sideToMove)

	m := h.move
	switch m.Type() {
	case move.Normal:
		p.movePiece(m.To(), m.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, m.To())
		}
	case move.Promotion:
		p.removePiece(m.To())
		p.putPiece(MakePiece(p.sideToMove, Pawn), m.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, m.To())
		}
	case move.EnPassant:
		p.movePiece(m.To(), m.From())
		capSq := SquareOf(m.To().FileOf(), m.From().RankOf())
		p.putPiece(MakePiece(p.sideToMove.Flip(), Pawn), capSq)
	case move.Castling:
		p.movePiece(m.To(), m.From())
		switch m.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey

	if assert.DEBUG {
		p.checkInvariants()
	}
}

// checkInvariants enforces the §3 board invariants: grid/bitboard agreement,
// disjoint side occupancy, and exactly one king per side. No-op unless built
// with -tags debug.
func (p *Position) checkInvariants() {
	assert.Assert(p.occupiedBB[White]&p.occupiedBB[Black] == 0,
		"position: white/black occupancy overlap")

	var unionByColor [ColorLength]BB
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			unionByColor[c] |= p.piecesBB[c][pt]
		}
		assert.Assert(unionByColor[c] == p.occupiedBB[c],
			"position: occupiedBB[%d] disagrees with union of piecesBB", c)
		assert.Assert(p.piecesBB[c][King].PopCount() == 1,
			"position: color %d has %d kings, want 1", c, p.piecesBB[c][King].PopCount())
	}

	for sq := SqA1; sq < SqNone; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			assert.Assert(!p.occupiedBB[White].Has(sq) && !p.occupiedBB[Black].Has(sq),
				"position: square %d empty in grid but set in occupiedBB", sq)
			continue
		}
		c, pt := pc.ColorOf(), pc.TypeOf()
		assert.Assert(p.piecesBB[c][pt].Has(sq),
			"position: square %d holds %v in grid but not in piecesBB", sq, pc)
		assert.Assert(p.occupiedBB[c].Has(sq),
			"position: square %d holds %v in grid but not in occupiedBB", sq, pc)
	}
}

func (p *Position) doNormalMove(fromSq, toSq Square, targetPc, fromPc Piece) {
	if lost := castlingLoss(fromSq) | castlingLoss(toSq); lost != CastlingNone && p.castlingRights&lost != 0 {
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
		p.castlingRights &^= lost
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	}
	p.clearEnPassant()
	switch {
	case targetPc != PieceNone:
		p.removePiece(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if dist := int(toSq) - int(fromSq); dist == 16 || dist == -16 {
			mid := (int(fromSq) + int(toSq)) / 2
			p.enPassantSquare = Square(mid)
			p.zobristKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doCastlingMove(toSq, fromSq Square) {
	var rookFrom, rookTo Square
	var lost CastlingRights
	switch toSq {
	case SqG1:
		rookFrom, rookTo, lost = SqH1, SqF1, WhiteKingside|WhiteQueenside
	case SqC1:
		rookFrom, rookTo, lost = SqA1, SqD1, WhiteKingside|WhiteQueenside
	case SqG8:
		rookFrom, rookTo, lost = SqH8, SqF8, BlackKingside|BlackQueenside
	case SqC8:
		rookFrom, rookTo, lost = SqA8, SqD8, BlackKingside|BlackQueenside
	default:
		panic("position: invalid castling destination square")
	}
	p.movePiece(fromSq, toSq)
	p.movePiece(rookFrom, rookTo)
	p.zobristKey ^= zobrist.Castling(p.castlingRights)
	p.castlingRights &^= lost
	p.zobristKey ^= zobrist.Castling(p.castlingRights)
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) doEnPassantMove(toSq, fromSq Square) {
	capSq := SquareOf(toSq.FileOf(), fromSq.RankOf())
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doPromotionMove(m move.Move, myColor Color, toSq Square, targetPc Piece, fromSq Square) {
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	if lost := castlingLoss(fromSq) | castlingLoss(toSq); lost != CastlingNone && p.castlingRights&lost != 0 {
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
		p.castlingRights &^= lost
		p.zobristKey ^= zobrist.Castling(p.castlingRights)
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

func (p *Position) putPiece(piece Piece, sq Square) {
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.piecesBB[c][pt] = p.piecesBB[c][pt].With(sq)
	p.occupiedBB[c] = p.occupiedBB[c].With(sq)
	p.zobristKey ^= zobrist.Piece(piece, sq)
}

func (p *Position) removePiece(sq Square) Piece {
	removed := p.board[sq]
	c, pt := removed.ColorOf(), removed.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBB[c][pt] = p.piecesBB[c][pt].Without(sq)
	p.occupiedBB[c] = p.occupiedBB[c].Without(sq)
	p.zobristKey ^= zobrist.Piece(removed, sq)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantFile(p.enPassantSquare.FileOf())
		p.enPassantSquare = SqNone
	}
}

// IsAttacked reports whether sq is attacked by a piece of color by,
// including an en-passant pawn capture where sq is currently the en
// passant target square.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if attacks.PawnAttacks(by.Flip(), sq)&p.piecesBB[by][Pawn] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.piecesBB[by][Knight] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.piecesBB[by][King] != 0 {
		return true
	}
	if attacks.RookAttacks(sq, occ)&(p.piecesBB[by][Rook]|p.piecesBB[by][Queen]) != 0 {
		return true
	}
	if attacks.BishopAttacks(sq, occ)&(p.piecesBB[by][Bishop]|p.piecesBB[by][Queen]) != 0 {
		return true
	}
	return false
}

// OccupiedAll returns every occupied square.
func (p *Position) OccupiedAll() BB { return p.occupiedBB[White] | p.occupiedBB[Black] }

// OccupiedBy returns every square occupied by a piece of color c.
func (p *Position) OccupiedBy(c Color) BB { return p.occupiedBB[c] }

// PiecesBB returns every square occupied by a piece of color c and type pt.
func (p *Position) PiecesBB(c Color, pt PieceType) BB { return p.piecesBB[c][pt] }

// PieceOn returns the piece on sq, or PieceNone.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the 50-move-rule half-move counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the current full move number.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// ZobristKey returns the position's incrementally maintained hash.
func (p *Position) ZobristKey() uint64 { return uint64(p.zobristKey) }

// LastMove returns the most recently applied move, or move.MoveNone if the
// position has no history.
func (p *Position) LastMove() move.Move {
	if p.historyCount == 0 {
		return move.MoveNone
	}
	return p.history[p.historyCount-1].move
}

// FEN renders the position as a FEN string.
func (p *Position) FEN() string {
	return fen.Format(p.PieceOn, p.sideToMove, p.castlingRights, p.enPassantSquare, p.halfMoveClock, p.fullMoveNumber)
}

// String implements fmt.Stringer with the FEN representation.
func (p *Position) String() string { return p.FEN() }

// StringBoard renders an 8x8 ASCII board, rank 8 first.
func (p *Position) StringBoard() string {
	s := ""
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				s += ". "
			} else {
				s += fmt.Sprintf("%c ", pc.Char())
			}
		}
		s += "\n"
		if r == Rank1 {
			break
		}
	}
	return s
}
