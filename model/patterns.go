package model

import "math/rand/v2"

// setClipped sets a cell, silently dropping positions outside the grid
func (g *Grid) setClipped(row, col int, alive bool) {
	if row >= 0 && row < g.size && col >= 0 && col < g.size {
		g.cells[row*g.size+col] = alive
	}
}

// Randomize fills the grid with living cells at the given density, using a
// deterministic generator seeded with seed
func Randomize(g *Grid, density float64, seed int64) {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		g.cells[i] = r.Float64() < density
	}
}

// AddGlider adds a glider heading down-right with its top-left corner at (row, col)
func AddGlider(g *Grid, row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, line := range pattern {
		for dc, alive := range line {
			g.setClipped(row+dr, col+dc, alive)
		}
	}
}

// AddBlinker adds a horizontal period-2 oscillator starting at (row, col)
func AddBlinker(g *Grid, row, col int) {
	g.setClipped(row, col, true)
	g.setClipped(row, col+1, true)
	g.setClipped(row, col+2, true)
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func AddBlock(g *Grid, row, col int) {
	g.setClipped(row, col, true)
	g.setClipped(row, col+1, true)
	g.setClipped(row+1, col, true)
	g.setClipped(row+1, col+1, true)
}

// SeedInterestingPatterns clears the grid, sprinkles random life and then
// stamps a couple of gliders and blinkers on top where they fit
func SeedInterestingPatterns(g *Grid, density float64, seed int64) {
	g.Clear()
	Randomize(g, density, seed)

	if g.size >= 10 {
		AddGlider(g, 5, 5)
		if g.size >= 20 {
			AddGlider(g, 5, g.size-8)
		}

		AddBlinker(g, g.size/4, g.size/4)
		if g.size >= 30 {
			AddBlinker(g, 3*g.size/4, 3*g.size/4)
		}
	}
}
