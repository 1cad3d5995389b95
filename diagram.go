package main

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
	"github.com/maplefeline/fenboard/fen"
)

const (
	squareSize  = 48
	boardMargin = 16
	boardSize   = squareSize*8 + boardMargin*2
)

var pieceGlyphs = [len(fen.Pieces)]string{
	fen.WhitePawn:   "♙",
	fen.WhiteKnight: "♘",
	fen.WhiteBishop: "♗",
	fen.WhiteRook:   "♖",
	fen.WhiteQueen:  "♕",
	fen.WhiteKing:   "♔",
	fen.BlackPawn:   "♟",
	fen.BlackKnight: "♞",
	fen.BlackBishop: "♝",
	fen.BlackRook:   "♜",
	fen.BlackQueen:  "♛",
	fen.BlackKing:   "♚",
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	targetStyle = "fill:none;stroke:#d04040;stroke-width:3"
	glyphStyle  = "font-size:40px;text-anchor:middle;dominant-baseline:central"
	labelStyle  = "font-size:11px;text-anchor:middle;dominant-baseline:central;fill:#404040"
)

// diagram draws board as SVG with the eighth rank at the top, the same
// orientation as fen.Render.
func diagram(board *fen.Board) []byte {
	var buffer bytes.Buffer
	canvas := svg.New(&buffer)
	canvas.Start(boardSize, boardSize)
	canvas.Title(board.FEN())
	ep, hasTarget := board.EnPassant()
	for rank := 7; rank >= 0; rank-- {
		y := boardMargin + (7-rank)*squareSize
		canvas.Text(boardMargin/2, y+squareSize/2, fmt.Sprint(rank+1), labelStyle)
		for file := 0; file < 8; file++ {
			x := boardMargin + file*squareSize
			sq := fen.NewSquare(file, rank)
			style := lightSquare
			if (file+rank)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)
			if hasTarget && ep.Occupied(sq) {
				canvas.Rect(x+2, y+2, squareSize-4, squareSize-4, targetStyle)
			}
			if p, ok := board.PieceAt(sq); ok {
				canvas.Text(x+squareSize/2, y+squareSize/2, pieceGlyphs[p], glyphStyle)
			}
		}
	}
	for file := 0; file < 8; file++ {
		canvas.Text(boardMargin+file*squareSize+squareSize/2, boardSize-boardMargin/2, string(rune('a'+file)), labelStyle)
	}
	canvas.End()
	return buffer.Bytes()
}
