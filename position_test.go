package main

import (
	"strings"

	"github.com/maplefeline/fenboard/fen"
	. "gopkg.in/check.v1"
)

type PositionSuite struct{}

var _ = Suite(&PositionSuite{})

func (s *PositionSuite) position(c *C, text string) Position {
	board, err := fen.Decode(text)
	c.Assert(err, IsNil)
	return makePosition(board)
}

func (s *PositionSuite) TestFmtOccupancy(c *C) {
	value, err := occupancy{}.Value()
	c.Assert(err, IsNil)
	c.Assert(value, Equals, strings.Repeat("0", 192))
	position := s.position(c, startFEN)
	value, err = position.Occupancy.Value()
	c.Assert(err, IsNil)
	c.Assert(value, Equals, "000000000000ff00"+"0000000000000042"+"0000000000000024"+"0000000000000081"+"0000000000000008"+"0000000000000010"+
		"00ff000000000000"+"4200000000000000"+"2400000000000000"+"8100000000000000"+"0800000000000000"+"1000000000000000")

	var scanned occupancy
	c.Assert(scanned.Scan(value), IsNil)
	c.Assert(scanned, DeepEquals, position.Occupancy)
	c.Assert(scanned.Scan([]byte(value.(string))), IsNil)
	c.Assert(scanned, DeepEquals, position.Occupancy)
}

func (s *PositionSuite) TestScanErrors(c *C) {
	var scanned occupancy
	c.Assert(scanned.Scan(42), ErrorMatches, "invalid format scaning 42")
	c.Assert(scanned.Scan("00ff"), ErrorMatches, "occupancy is not length 96: 2")
	c.Assert(scanned.Scan("zz"), ErrorMatches, "encoding/hex: invalid byte: .*")
}

func (s *PositionSuite) TestMakePosition(c *C) {
	position := s.position(c, enPassantFEN)
	c.Assert(position.FEN, Equals, enPassantFEN)
	c.Assert(position.EnPassant, Equals, "e6")
	c.Assert(position.Castling, Equals, "KQkq")
	c.Assert(position.SideToMove, Equals, "w")
	c.Assert(position.HalfMoveClock, Equals, uint(0))
	c.Assert(position.FullMoveClock, Equals, uint(3))
	c.Assert(position.Pieces, Equals, 32)
	c.Assert(position.count(fen.WhitePawn), Equals, 8)

	board, err := position.board()
	c.Assert(err, IsNil)
	c.Assert(board.FEN(), Equals, enPassantFEN)

	packed := strings.Repeat("pppppppp/", 7) + "pppppppp w KQkq e3 4294967295 4294967295"
	position = s.position(c, packed)
	c.Assert(position.FEN, Equals, packed)
	c.Assert(len(position.FEN), Equals, 103)
	c.Assert(position.Pieces, Equals, 64)
	c.Assert(len(position.FEN) <= fenColumnSize, Equals, true)

	position = s.position(c, "8/8/8/8/8/8/8/8 b - - 7 9")
	c.Assert(position.Castling, Equals, "")
	c.Assert(position.EnPassant, Equals, "-")
	c.Assert(position.SideToMove, Equals, "b")
}

func (s *PositionSuite) TestMaterial(c *C) {
	c.Assert(s.position(c, startFEN).material(), Equals, 0)
	c.Assert(s.position(c, queenUpFEN).material(), Equals, 9)
	c.Assert(s.position(c, "4k3/pppppppp/8/8/8/8/8/4K3 b - - 0 1").material(), Equals, -8)
}

func (s *PositionSuite) TestSummarize(c *C) {
	summary, err := summarize(nil)
	c.Assert(err, IsNil)
	c.Assert(summary, Equals, Summary{})

	summary, err = summarize([]int{7})
	c.Assert(err, IsNil)
	c.Assert(summary, Equals, Summary{Mean: 7, Median: 7, Percentile80: 7})

	summary, err = summarize([]int{10, 20, 30, 40, 50})
	c.Assert(err, IsNil)
	c.Assert(summary.Mean, Equals, 30.0)
	c.Assert(summary.Median, Equals, 30.0)
	c.Assert(summary.Percentile80, Equals, 40.0)
}
