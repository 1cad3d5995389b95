package fen

import (
	"strings"

	. "gopkg.in/check.v1"
)

type RenderSuite struct{}

var _ = Suite(&RenderSuite{})

func (s *RenderSuite) TestStart(c *C) {
	b, err := Decode(startFEN)
	c.Assert(err, IsNil)
	c.Assert(Render(b), DeepEquals, []string{
		"r n b q k b n r ",
		"p p p p p p p p ",
		". . . . . . . . ",
		". . . . . . . . ",
		". . . . . . . . ",
		". . . . . . . . ",
		"P P P P P P P P ",
		"R N B Q K B N R ",
	})
}

func (s *RenderSuite) TestRowShape(c *C) {
	b, err := Decode(enPassantFEN)
	c.Assert(err, IsNil)
	rows := Render(b)
	c.Assert(rows, HasLen, 8)
	for _, row := range rows {
		c.Assert(row, HasLen, 16)
	}
	c.Assert(rows[3], Equals, ". . . P p . . . ")
}

// Decoding a placement and reading it back off the grid gives the same
// layout, which pins the decoder and renderer to one square convention.
func (s *RenderSuite) TestPlacementRoundTrip(c *C) {
	for _, text := range []string{
		startFEN,
		enPassantFEN,
		emptyFEN,
		"8/p3k1N1/8/6p1/P7/1P2n3/5P1P/2r3K1 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	} {
		b, err := Decode(text)
		c.Assert(err, IsNil)
		placement := strings.Split(strings.Fields(text)[0], "/")
		rows := Render(b)
		for i, rank := range placement {
			c.Assert(strings.Replace(rows[i], " ", "", -1), Equals, expandRank(rank))
		}
	}
}

func expandRank(rank string) string {
	var sb strings.Builder
	for _, r := range rank {
		if r >= '1' && r <= '8' {
			sb.WriteString(strings.Repeat(".", int(r-'0')))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *RenderSuite) TestPrecedence(c *C) {
	e4 := NewSquare(4, 3).Bitboard()
	var b Board
	b.occupancy[BlackKing] = e4
	b.occupancy[WhiteQueen] = e4
	b.occupancy[BlackPawn] = e4
	c.Assert(Render(&b)[4], Equals, ". . . . Q . . . ")
	p, ok := b.PieceAt(NewSquare(4, 3))
	c.Assert(ok, Equals, true)
	c.Assert(p, Equals, WhiteQueen)

	b.occupancy[WhitePawn] = e4
	for i := 0; i < 10; i++ {
		c.Assert(Render(&b)[4], Equals, ". . . . P . . . ")
	}
}

func (s *RenderSuite) TestString(c *C) {
	b, err := Decode("8/8/8/8/8/8/8/K6k w - - 0 1")
	c.Assert(err, IsNil)
	c.Assert(b.String(), Equals, strings.Repeat(". . . . . . . . \n", 7)+"K . . . . . . k \n")
}
