package fen

import "math/bits"

// Bitboard is a set of squares, bit i standing for Square(i).
type Bitboard uint64

// Square indexes the board as rank*8 + file: a1 is 0, h1 is 7, a8 is 56
// and h8 is 63. Every conversion in this package goes through NewSquare.
type Square uint8

const (
	numFiles   = 8
	numRanks   = 8
	numSquares = numFiles * numRanks

	noSquare = "-"
)

// NewSquare returns the square on file (0 = a) and rank (0 = 1).
func NewSquare(file, rank int) Square {
	return Square(rank*numFiles + file)
}

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int {
	return int(sq) % numFiles
}

// Rank returns 0 for the first rank through 7 for the eighth.
func (sq Square) Rank() int {
	return int(sq) / numFiles
}

func (sq Square) String() string {
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// Bitboard returns the mask with only sq set.
func (sq Square) Bitboard() Bitboard {
	return Bitboard(1) << sq
}

// Occupied reports whether sq is set in b.
func (b Bitboard) Occupied(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// ParseSquare maps an algebraic square such as "e4" to its one-bit mask.
// "-" maps to 0.
func ParseSquare(text string) (Bitboard, error) {
	if text == noSquare {
		return 0, nil
	}
	if len(text) != 2 {
		return 0, parseError(ErrInvalidSquare, text)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, parseError(ErrInvalidSquare, text)
	}
	return NewSquare(int(file-'a'), int(rank-'1')).Bitboard(), nil
}

// SquareName is the inverse of ParseSquare. It reports false unless exactly
// one bit of b is set.
func SquareName(b Bitboard) (string, bool) {
	if b.Count() != 1 {
		return "", false
	}
	return Square(bits.TrailingZeros64(uint64(b))).String(), true
}
