package fen

import (
	"strconv"
	"strings"
)

const emptySquare = '.'

// Render draws the board as eight rows, the eighth rank first, each row
// holding the a- to h-file as "<piece> " pairs. Empty squares are '.'.
// A square claimed by several masks shows the lowest Piece.
func Render(b *Board) []string {
	rows := make([]string, 0, numRanks)
	for rank := numRanks - 1; rank >= 0; rank-- {
		row := make([]byte, 0, numFiles*2)
		for file := 0; file < numFiles; file++ {
			c := byte(emptySquare)
			if p, ok := b.PieceAt(NewSquare(file, rank)); ok {
				c = p.Letter()
			}
			row = append(row, c, ' ')
		}
		rows = append(rows, string(row))
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(Render(b), "\n") + "\n"
}

// FEN encodes the board back to canonical FEN text.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := numRanks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < numFiles; file++ {
			p, ok := b.PieceAt(NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte(rankSeparator)
		}
	}

	castling := b.castling
	if castling == "" {
		castling = emptyCastling
	}
	enPassant, ok := SquareName(b.enPassant)
	if !ok {
		enPassant = noSquare
	}
	fields := []string{
		sb.String(),
		b.sideToMove.String(),
		castling,
		enPassant,
		strconv.FormatUint(uint64(b.halfMove), 10),
		strconv.FormatUint(uint64(b.fullMove), 10),
	}
	return strings.Join(fields, " ")
}
