package main

import (
	"github.com/maplefeline/fenboard/fen"
	"github.com/montanaflynn/stats"
)

var materialValue = [len(fen.Pieces)]int{
	fen.WhitePawn:   1,
	fen.WhiteKnight: 3,
	fen.WhiteBishop: 3,
	fen.WhiteRook:   5,
	fen.WhiteQueen:  9,
	fen.BlackPawn:   -1,
	fen.BlackKnight: -3,
	fen.BlackBishop: -3,
	fen.BlackRook:   -5,
	fen.BlackQueen:  -9,
}

// Summary summary.
type Summary struct {
	Mean         float64
	Median       float64
	Percentile80 float64
}

// material is White's material minus Black's in pawns.
func (position Position) material() int {
	total := 0
	for _, p := range fen.Pieces {
		total += materialValue[p] * position.count(p)
	}
	return total
}

func summarize(values []int) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, nil
	}
	if len(values) == 1 {
		v := float64(values[0])
		return Summary{Mean: v, Median: v, Percentile80: v}, nil
	}
	data := stats.LoadRawData(values)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}
	percentile, err := stats.Percentile(data, 80)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, Median: median, Percentile80: percentile}, nil
}

func positionStats(positions []Position) (Summary, Summary, error) {
	pieces := make([]int, 0, len(positions))
	material := make([]int, 0, len(positions))
	for _, position := range positions {
		pieces = append(pieces, position.Pieces)
		material = append(material, position.material())
	}
	pieceSummary, err := summarize(pieces)
	if err != nil {
		return Summary{}, Summary{}, err
	}
	materialSummary, err := summarize(material)
	if err != nil {
		return Summary{}, Summary{}, err
	}
	return pieceSummary, materialSummary, nil
}
