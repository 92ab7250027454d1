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

// Package movegen generates legal chess moves for a position, pushing each
// one onto a move.Sink. The driver follows the checker-count case split: 2+
// checkers allows only king moves, 1 checker restricts every other piece to
// capturing the checker or interposing on its ray, 0 checkers generates
// normally (plus castling) with pinned pieces restricted to their pin ray.
package movegen

import (
	"github.com/frankkopp/perftgo/internal/assert"
	"github.com/frankkopp/perftgo/internal/attacks"
	. "github.com/frankkopp/perftgo/internal/bitboard"
	. "github.com/frankkopp/perftgo/internal/chesstypes"
	"github.com/frankkopp/perftgo/internal/move"
	"github.com/frankkopp/perftgo/internal/position"
)

// pinInfo records, for the side to move, which of its pieces are pinned to
// their king and the ray each pinned piece may still move along (including
// the pinning slider's own square, so capturing the pinner is legal).
type pinInfo struct {
	pinned BB
	ray    [SqLength]BB
}

// computePins walks all 8 directions from kingSq. If the nearest blocker is
// an own piece and the next blocker beyond it is an enemy slider that
// attacks along that same direction, the own piece is pinned.
func computePins(p *position.Position, kingSq Square, us Color) pinInfo {
	them := us.Flip()
	occ := p.OccupiedAll()
	own := p.OccupiedBy(us)

	var info pinInfo
	for sq := SqA1; sq < SqNone; sq++ {
		info.ray[sq] = Universe
	}

	for _, d := range Directions {
		first := attacks.NearestBlocker(kingSq, d, occ)
		if first == SqNone || !own.Has(first) {
			continue
		}
		second := attacks.NearestBlocker(kingSq, d, occ&^SquareBB(first))
		if second == SqNone {
			continue
		}
		pc := p.PieceOn(second)
		if pc.ColorOf() != them {
			continue
		}
		orthogonal := d == North || d == South || d == East || d == West
		pt := pc.TypeOf()
		if (orthogonal && (pt == Rook || pt == Queen)) || (!orthogonal && (pt == Bishop || pt == Queen)) {
			info.pinned = info.pinned.With(first)
			info.ray[first] = attacks.Between(kingSq, second).With(second)
		}
	}
	return info
}

// attackedBy reports whether sq is attacked by a piece of color by, given an
// explicit occupancy. King-move legality needs this instead of
// Position.IsAttacked: the king's own square must first be removed from
// occupancy, or a slider attacking straight through the king would appear
// blocked by the very piece trying to step out of its path.
func attackedBy(p *position.Position, sq Square, by Color, occ BB) bool {
	if attacks.PawnAttacks(by.Flip(), sq)&p.PiecesBB(by, Pawn) != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.PiecesBB(by, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.PiecesBB(by, King) != 0 {
		return true
	}
	if attacks.RookAttacks(sq, occ)&(p.PiecesBB(by, Rook)|p.PiecesBB(by, Queen)) != 0 {
		return true
	}
	if attacks.BishopAttacks(sq, occ)&(p.PiecesBB(by, Bishop)|p.PiecesBB(by, Queen)) != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether the side to move is in check.
func IsInCheck(p *position.Position) bool {
	us := p.SideToMove()
	return attacks.AttacksTo(p, p.KingSquare(us), us.Flip()) != Empty
}

// GenerateLegalMoves pushes every legal move of the side to move onto sink.
func GenerateLegalMoves(p *position.Position, sink move.Sink) {
	us := p.SideToMove()
	them := us.Flip()
	kingSq := p.KingSquare(us)
	occ := p.OccupiedAll()

	if assert.DEBUG {
		assert.Assert(p.PieceOn(kingSq) == MakePiece(us, King),
			"movegen: king square %d holds %v, not the %d king", kingSq, p.PieceOn(kingSq), us)
	}

	checkers := attacks.AttacksTo(p, kingSq, them)
	nCheckers := checkers.PopCount()

	generateKingMoves(p, us, kingSq, occ, sink)
	if nCheckers >= 2 {
		// double check: only the king can move.
		return
	}

	pins := computePins(p, kingSq, us)

	var captureMask, pushMask BB
	if nCheckers == 1 {
		checkerSq := checkers.Lsb()
		captureMask = SquareBB(checkerSq)
		pushMask = attacks.Between(kingSq, checkerSq)
	} else {
		captureMask = p.OccupiedBy(them)
		pushMask = ^occ
	}

	generatePawnMoves(p, us, captureMask, pushMask, pins, sink)
	generateKnightMoves(p, us, captureMask, pushMask, pins, sink)
	generateSliderMoves(p, us, Bishop, captureMask, pushMask, pins, sink)
	generateSliderMoves(p, us, Rook, captureMask, pushMask, pins, sink)
	generateSliderMoves(p, us, Queen, captureMask, pushMask, pins, sink)

	if nCheckers == 0 {
		generateCastling(p, us, occ, sink)
	}
}

func generateKingMoves(p *position.Position, us Color, kingSq Square, occ BB, sink move.Sink) {
	them := us.Flip()
	occWithoutKing := occ &^ SquareBB(kingSq)
	var legal BB
	for candidates := attacks.KingAttacks(kingSq) &^ p.OccupiedBy(us); candidates != Empty; {
		to := candidates.PopLsb()
		if attackedBy(p, to, them, occWithoutKing) {
			continue
		}
		legal = legal.With(to)
	}
	captures := legal & p.OccupiedBy(them)
	sink.AddCapture(kingSq, captures)
	sink.AddPush(kingSq, legal&^captures)
}

func generateKnightMoves(p *position.Position, us Color, captureMask, pushMask BB, pins pinInfo, sink move.Sink) {
	them := us.Flip()
	// a pinned knight can never move without exposing its king - it has no
	// move that stays on the pin line - so pinned knights are skipped
	// entirely rather than masked.
	knights := p.PiecesBB(us, Knight) &^ pins.pinned
	for knights != Empty {
		from := knights.PopLsb()
		targets := attacks.KnightAttacks(from) &^ p.OccupiedBy(us) & (captureMask | pushMask)
		captures := targets & p.OccupiedBy(them)
		sink.AddCapture(from, captures)
		sink.AddPush(from, targets&^captures)
	}
}

func generateSliderMoves(p *position.Position, us Color, pt PieceType, captureMask, pushMask BB, pins pinInfo, sink move.Sink) {
	them := us.Flip()
	occ := p.OccupiedAll()
	pieces := p.PiecesBB(us, pt)
	for pieces != Empty {
		from := pieces.PopLsb()
		targets := attacks.Attacks(pt, from, occ) &^ p.OccupiedBy(us) & (captureMask | pushMask)
		if pins.pinned.Has(from) {
			targets &= pins.ray[from]
		}
		captures := targets & p.OccupiedBy(them)
		sink.AddCapture(from, captures)
		sink.AddPush(from, targets&^captures)
	}
}

// filterPinned removes destinations a pinned pawn could only reach by
// leaving its pin ray from dests (every bit of which was reached from a
// distinct origin square, to = from + dir, via a single bitboard shift).
func filterPinned(dests BB, dir Direction, pins pinInfo) BB {
	filtered := dests
	for bits := dests; bits != Empty; {
		to := bits.PopLsb()
		from := Square(int(to) - int(dir))
		if pins.pinned.Has(from) && !pins.ray[from].Has(to) {
			filtered = filtered.Without(to)
		}
	}
	return filtered
}

func generatePawnMoves(p *position.Position, us Color, captureMask, pushMask BB, pins pinInfo, sink move.Sink) {
	them := us.Flip()
	occ := p.OccupiedAll()
	pawns := p.PiecesBB(us, Pawn)

	forward := North
	promRank := Rank8BB
	midRank := Rank3BB
	capEastDir, capWestDir := Northeast, Northwest
	if us == Black {
		forward = South
		promRank = Rank1BB
		midRank = Rank6BB
		capEastDir, capWestDir = Southeast, Southwest
	}

	rawSinglePush := Shift(pawns, forward) &^ occ
	rawDoublePush := Shift(rawSinglePush&midRank, forward) &^ occ

	singlePush := filterPinned(rawSinglePush&pushMask, forward, pins)
	doublePush := filterPinned(rawDoublePush&pushMask, forward*2, pins)

	sink.AddPawnPush(int(forward), singlePush&^promRank)
	sink.AddPawnPromotion(int(forward), singlePush&promRank)
	sink.AddPawnDoublePush(int(forward)*2, doublePush)

	oppPieces := p.OccupiedBy(them)
	eastCaptures := filterPinned(Shift(pawns, capEastDir)&oppPieces&captureMask, capEastDir, pins)
	westCaptures := filterPinned(Shift(pawns, capWestDir)&oppPieces&captureMask, capWestDir, pins)

	sink.AddPawnCapture(int(capEastDir), eastCaptures&^promRank)
	sink.AddPawnCapturePromotion(int(capEastDir), eastCaptures&promRank)
	sink.AddPawnCapture(int(capWestDir), westCaptures&^promRank)
	sink.AddPawnCapturePromotion(int(capWestDir), westCaptures&promRank)

	ep := p.EnPassantSquare()
	if ep == SqNone {
		return
	}
	for _, dir := range [2]Direction{capEastDir, capWestDir} {
		from := Square(int(ep) - int(dir))
		if !from.IsValid() || !pawns.Has(from) || attacks.PawnAttacks(us, from)&SquareBB(ep) == Empty {
			continue
		}
		if pins.pinned.Has(from) && !pins.ray[from].Has(ep) {
			continue
		}
		capturedSq := SquareOf(ep.FileOf(), from.RankOf())
		// in check, the capture must take the checker or block its ray
		if !captureMask.Has(capturedSq) && !pushMask.Has(ep) {
			continue
		}
		if enPassantRevealsCheck(p, us, from, capturedSq) {
			continue
		}
		sink.AddPawnEpCapture(from, SquareBB(ep))
	}
}

// enPassantRevealsCheck tests the one discovered-check shape an en-passant
// capture can create: both pawns involved vanish from the same rank in one
// move, which can open a rook/queen's rank attack onto the king.
func enPassantRevealsCheck(p *position.Position, us Color, from, capturedSq Square) bool {
	them := us.Flip()
	kingSq := p.KingSquare(us)
	if kingSq.RankOf() != from.RankOf() {
		return false
	}
	occ := p.OccupiedAll() &^ SquareBB(from) &^ SquareBB(capturedSq)
	return attacks.RankAttacks(kingSq, occ)&(p.PiecesBB(them, Rook)|p.PiecesBB(them, Queen)) != 0
}

func generateCastling(p *position.Position, us Color, occ BB, sink move.Sink) {
	them := us.Flip()
	cr := p.CastlingRights()
	if us == White {
		if cr.Has(WhiteKingside) && attacks.Between(SqE1, SqH1)&occ == Empty &&
			!attackedBy(p, SqE1, them, occ) && !attackedBy(p, SqF1, them, occ) && !attackedBy(p, SqG1, them, occ) {
			sink.AddCastle(move.WhiteKingsideCastle)
		}
		if cr.Has(WhiteQueenside) && attacks.Between(SqE1, SqA1)&occ == Empty &&
			!attackedBy(p, SqE1, them, occ) && !attackedBy(p, SqD1, them, occ) && !attackedBy(p, SqC1, them, occ) {
			sink.AddCastle(move.WhiteQueensideCastle)
		}
		return
	}
	if cr.Has(BlackKingside) && attacks.Between(SqE8, SqH8)&occ == Empty &&
		!attackedBy(p, SqE8, them, occ) && !attackedBy(p, SqF8, them, occ) && !attackedBy(p, SqG8, them, occ) {
		sink.AddCastle(move.BlackKingsideCastle)
	}
	if cr.Has(BlackQueenside) && attacks.Between(SqE8, SqA8)&occ == Empty &&
		!attackedBy(p, SqE8, them, occ) && !attackedBy(p, SqD8, them, occ) && !attackedBy(p, SqC8, them, occ) {
		sink.AddCastle(move.BlackQueensideCastle)
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move - used to distinguish stalemate from checkmate once no moves were
// found in the main search/perft path.
func HasLegalMove(p *position.Position) bool {
	list := move.NewList()
	GenerateLegalMoves(p, list)
	return list.Len() > 0
}
