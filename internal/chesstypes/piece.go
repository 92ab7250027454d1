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

// Color identifies the side to move or the owner of a piece.
type Color uint8

const (
	White Color = iota
	Black
	ColorNone
)

// ColorLength is the number of colors.
const ColorLength = int(ColorNone)

// Flip returns the opposite color.
func (c Color) Flip() Color { return c ^ 1 }

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool { return c < ColorNone }

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PieceType identifies the kind of piece, independent of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// IsValid reports whether pt names a real piece type.
func (pt PieceType) IsValid() bool { return pt >= Pawn && pt < PtLength }

// Char returns the uppercase algebraic letter for the piece type, or ' ' for
// PtNone ("N" for Knight, to disambiguate from King, as usual in chess
// notation).
func (pt PieceType) Char() byte {
	switch pt {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return ' '
	}
}

// Piece is a (PieceType, Color) pair encoded so that the low bit is the
// color: idx&1 indexes directly into a 2-element, per-color array.
type Piece uint8

// MakePiece encodes a piece from its type and color.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt)<<1 | Piece(c)
}

const PieceNone Piece = Piece(PtLength) << 1

// PieceLength is the number of valid (type, color) piece combinations.
const PieceLength = int(PieceNone)

// TypeOf returns the piece type.
func (p Piece) TypeOf() PieceType { return PieceType(p >> 1) }

// ColorOf returns the piece's color.
func (p Piece) ColorOf() Color { return Color(p & 1) }

// IsValid reports whether p names a real piece.
func (p Piece) IsValid() bool { return p < PieceNone }

// Char returns the algebraic letter for the piece, lower case for black.
func (p Piece) Char() byte {
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return c - 'A' + 'a'
	}
	return c
}

// String implements fmt.Stringer.
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(rune(p.Char()))
}

// CastlingRights is a 4-bit set over {white king-side, white queen-side,
// black king-side, black queen-side}.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether the given right is present in the set.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r != 0 }

// Kingside returns the kingside right for the given color.
func Kingside(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right for the given color.
func Queenside(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String returns the FEN castling-rights fragment, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}
