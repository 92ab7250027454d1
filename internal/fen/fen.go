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

// Package fen parses and formats Forsyth-Edwards Notation strings. It knows
// nothing about bitboards or move generation - it only turns a FEN string
// into a plain description of a position's starting state, and back.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/frankkopp/perftgo/internal/chesstypes"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	regexFenPos         = regexp.MustCompile(`^[pnbrqkPNBRQK1-8/]+$`)
	regexSideToMove      = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights  = regexp.MustCompile(`^(-|[KQkq]+)$`)
	regexEnPassant       = regexp.MustCompile(`^(-|[a-h][36])$`)
)

// Parsed is the decoded content of a FEN string, independent of any board
// representation.
type Parsed struct {
	Placement      [SqLength]Piece
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
}

func pieceFromChar(c byte) Piece {
	var pt PieceType
	switch c {
	case 'p', 'P':
		pt = Pawn
	case 'n', 'N':
		pt = Knight
	case 'b', 'B':
		pt = Bishop
	case 'r', 'R':
		pt = Rook
	case 'q', 'Q':
		pt = Queen
	case 'k', 'K':
		pt = King
	default:
		return PieceNone
	}
	if c >= 'a' && c <= 'z' {
		return MakePiece(Black, pt)
	}
	return MakePiece(White, pt)
}

// Parse decodes a FEN string. Only the piece-placement field is mandatory;
// every other field defaults as if a fresh game had just reached this
// placement with White to move, no castling rights and no en-passant
// target, matching the teacher's own "fields beyond the first are optional"
// FEN reader.
func Parse(s string) (Parsed, error) {
	var p Parsed
	p.EnPassant = SqNone
	p.FullMoveNumber = 1

	s = strings.TrimSpace(s)
	fields := strings.Split(s, " ")
	if len(fields) == 0 || fields[0] == "" {
		return p, fmt.Errorf("fen: empty position field")
	}
	if !regexFenPos.MatchString(fields[0]) {
		return p, fmt.Errorf("fen: position field contains invalid characters: %q", fields[0])
	}

	for sq := SqA1; sq < SqNone; sq++ {
		p.Placement[sq] = PieceNone
	}

	cur := SqA8
	for i := 0; i < len(fields[0]); i++ {
		c := fields[0][i]
		switch {
		case c >= '1' && c <= '8':
			cur = Square(int(cur) + int(c-'0')*int(East))
		case c == '/':
			cur = Square(int(cur) + 2*int(South))
		default:
			piece := pieceFromChar(c)
			if piece == PieceNone {
				return p, fmt.Errorf("fen: invalid piece character %q", string(c))
			}
			if !cur.IsValid() {
				return p, fmt.Errorf("fen: position field overruns the board")
			}
			p.Placement[cur] = piece
			cur++
		}
	}
	if cur != SqA2 {
		return p, fmt.Errorf("fen: position field did not end on a2 (got %s)", cur)
	}

	p.SideToMove = White
	if len(fields) >= 2 {
		if !regexSideToMove.MatchString(fields[1]) {
			return p, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
		if fields[1] == "b" {
			p.SideToMove = Black
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return p, fmt.Errorf("fen: invalid castling rights %q", fields[2])
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.Castling |= WhiteKingside
				case 'Q':
					p.Castling |= WhiteQueenside
				case 'k':
					p.Castling |= BlackKingside
				case 'q':
					p.Castling |= BlackQueenside
				}
			}
		}
	}

	if len(fields) >= 4 {
		if !regexEnPassant.MatchString(fields[3]) {
			return p, fmt.Errorf("fen: invalid en passant target %q", fields[3])
		}
		if fields[3] != "-" {
			p.EnPassant = MakeSquare(fields[3])
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return p, fmt.Errorf("fen: invalid half move clock: %w", err)
		}
		p.HalfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return p, fmt.Errorf("fen: invalid full move number: %w", err)
		}
		if n == 0 {
			n = 1
		}
		p.FullMoveNumber = n
	}

	return p, nil
}

// Format re-encodes a board (via pieceAt) and the remaining state fields
// back into a FEN string.
func Format(pieceAt func(Square) Piece, side Color, castling CastlingRights, ep Square, halfMoveClock, fullMoveNumber int) string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := pieceAt(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}
	sb.WriteByte(' ')
	sb.WriteString(side.String())
	sb.WriteByte(' ')
	sb.WriteString(castling.String())
	sb.WriteByte(' ')
	sb.WriteString(ep.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(fullMoveNumber))
	return sb.String()
}
