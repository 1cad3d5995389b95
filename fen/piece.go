package fen

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Piece is one of the twelve colored piece kinds. The order is also the
// rendering precedence: when a square is set in more than one mask, the
// lowest Piece wins.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	pieceCount
)

const pieceLetters = "PNBRQKpnbrqk"

// Pieces lists every piece kind in precedence order.
var Pieces = [pieceCount]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// pieceFromLetter maps a FEN letter to its kind.
func pieceFromLetter(c byte) (Piece, bool) {
	for p := Piece(0); p < pieceCount; p++ {
		if pieceLetters[p] == c {
			return p, true
		}
	}
	return 0, false
}

// Letter returns the FEN letter, upper case for White.
func (p Piece) Letter() byte {
	return pieceLetters[p]
}

func (p Piece) Color() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

func (p Piece) String() string {
	return string(p.Letter())
}
