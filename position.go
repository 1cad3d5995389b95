package main

import (
	"github.com/maplefeline/fenboard/fen"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// Position position.
type Position struct {
	gorm.Model

	Castling      string    `gorm:"<-:create;type:varchar;size:4"`
	EnPassant     string    `gorm:"<-:create;type:varchar;size:2"`
	FEN           string    `gorm:"<-:create;type:varchar;size:104;index;not null"`
	FullMoveClock uint      `gorm:"<-:create"`
	HalfMoveClock uint      `gorm:"<-:create"`
	Occupancy     occupancy `gorm:"<-:create;type:varchar;size:192;not null"`
	Pieces        int       `gorm:"<-:create"`
	PositionID    uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	SideToMove    string    `gorm:"<-:create;type:varchar;size:1"`
}

// fenColumnSize fits the longest canonical FEN: a 71 byte placement,
// full castling, an en passant square and two 10 digit clocks.
const fenColumnSize = 104

type occupancy [len(fen.Pieces)]uint64

func makePosition(board *fen.Board) Position {
	var occ occupancy
	for _, p := range fen.Pieces {
		occ[p] = uint64(board.Occupancy(p))
	}
	enPassant := "-"
	if ep, ok := board.EnPassant(); ok {
		enPassant, _ = fen.SquareName(ep)
	}
	return Position{
		Castling:      board.CastlingRights(),
		EnPassant:     enPassant,
		FEN:           board.FEN(),
		FullMoveClock: board.FullMoveClock(),
		HalfMoveClock: board.HalfMoveClock(),
		Occupancy:     occ,
		Pieces:        board.Occupied().Count(),
		SideToMove:    board.SideToMove().String(),
	}
}

// board decodes the stored FEN again. Stored positions were produced by
// Board.FEN, so this only fails on a tampered row.
func (position Position) board() (*fen.Board, error) {
	return fen.Decode(position.FEN)
}

func (position Position) count(p fen.Piece) int {
	return fen.Bitboard(position.Occupancy[p]).Count()
}
