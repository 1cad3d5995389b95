// Package fen decodes Forsyth-Edwards Notation into bitboards and renders
// the result back as a text grid.
package fen

import (
	"strconv"
	"strings"
)

const (
	fieldCount      = 6
	castlingOrder   = "KQkq"
	rankSeparator   = '/'
	emptyCastling   = "-"
	sideToMoveWhite = "w"
	sideToMoveBlack = "b"
)

// Board is a decoded position. It is never modified after Decode returns
// and may be shared freely.
type Board struct {
	occupancy  [pieceCount]Bitboard
	sideToMove Color
	castling   string
	enPassant  Bitboard
	halfMove   uint
	fullMove   uint
}

// Occupancy returns the squares holding p.
func (b *Board) Occupancy(p Piece) Bitboard {
	return b.occupancy[p]
}

// Occupied returns the union of all twelve masks.
func (b *Board) Occupied() Bitboard {
	var all Bitboard
	for _, bb := range b.occupancy {
		all |= bb
	}
	return all
}

// PieceAt returns the piece on sq, lowest Piece first when several masks
// claim it.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	for p, bb := range b.occupancy {
		if bb.Occupied(sq) {
			return Piece(p), true
		}
	}
	return 0, false
}

func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// CastlingRights returns the castling flags in KQkq order, "" when none.
func (b *Board) CastlingRights() string {
	return b.castling
}

// EnPassant returns the en passant target, false when there is none.
func (b *Board) EnPassant() (Bitboard, bool) {
	return b.enPassant, b.enPassant != 0
}

func (b *Board) HalfMoveClock() uint {
	return b.halfMove
}

func (b *Board) FullMoveClock() uint {
	return b.fullMove
}

// Decode parses a six field FEN string. Only the syntax of each field is
// checked; the position itself may be illegal chess.
func Decode(text string) (*Board, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldCount {
		return nil, parseError(ErrMissingFields, text)
	}

	var b Board
	var err error
	if b.occupancy, err = decodePlacement(fields[0]); err != nil {
		return nil, err
	}
	if b.sideToMove, err = decodeSideToMove(fields[1]); err != nil {
		return nil, err
	}
	if b.castling, err = decodeCastling(fields[2]); err != nil {
		return nil, err
	}
	if b.enPassant, err = ParseSquare(fields[3]); err != nil {
		return nil, &ParseError{Err: ErrInvalidEnPassant, Text: fields[3], Cause: err}
	}
	if b.halfMove, err = decodeClock(fields[4]); err != nil {
		return nil, parseError(ErrInvalidHalfMoveClock, fields[4])
	}
	if b.fullMove, err = decodeClock(fields[5]); err != nil || b.fullMove < 1 {
		return nil, parseError(ErrInvalidFullMoveClock, fields[5])
	}
	return &b, nil
}

// decodePlacement walks the ranks from the eighth down to the first, each
// from the a-file to the h-file.
func decodePlacement(field string) ([pieceCount]Bitboard, error) {
	var occupancy [pieceCount]Bitboard
	rank, file := numRanks-1, 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == rankSeparator:
			if file != numFiles || rank == 0 {
				return occupancy, parseError(ErrMalformedRank, field)
			}
			rank, file = rank-1, 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > numFiles {
				return occupancy, parseError(ErrMalformedRank, field)
			}
		default:
			p, ok := pieceFromLetter(c)
			if !ok {
				return occupancy, parseError(ErrInvalidPieceChar, field)
			}
			if file >= numFiles {
				return occupancy, parseError(ErrMalformedRank, field)
			}
			occupancy[p] |= NewSquare(file, rank).Bitboard()
			file++
		}
	}
	if rank != 0 || file != numFiles {
		return occupancy, parseError(ErrMalformedRank, field)
	}
	return occupancy, nil
}

func decodeSideToMove(field string) (Color, error) {
	switch field {
	case sideToMoveWhite:
		return White, nil
	case sideToMoveBlack:
		return Black, nil
	}
	return White, parseError(ErrInvalidSideToMove, field)
}

// decodeCastling accepts "-" or a non-empty subsequence of KQkq.
func decodeCastling(field string) (string, error) {
	if field == emptyCastling {
		return "", nil
	}
	if field == "" {
		return "", parseError(ErrInvalidCastling, field)
	}
	next := 0
	for i := 0; i < len(field); i++ {
		at := strings.IndexByte(castlingOrder[next:], field[i])
		if at < 0 {
			return "", parseError(ErrInvalidCastling, field)
		}
		next += at + 1
	}
	return field, nil
}

// decodeClock accepts unsigned decimal digits only.
func decodeClock(field string) (uint, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
