package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a square board of size×size cells stored row-major.
// Cells outside the board are permanently dead.
type Grid struct {
	size  int
	cells []bool
}

// NewGrid creates an all-dead grid with the given edge length
func NewGrid(size int) (*Grid, error) {
	if err := validateSize(size); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	return &Grid{
		size:  size,
		cells: make([]bool, size*size),
	}, nil
}

func validateSize(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "grid size must be positive, got %d", size)
	}
	return nil
}

// Size returns the number of cells per edge
func (g *Grid) Size() int {
	return g.size
}

// Reset reallocates the grid to the new size with every cell dead.
// The size must already be validated.
func (g *Grid) Reset(size int) {
	g.size = size
	if cap(g.cells) >= size*size {
		g.cells = g.cells[:size*size]
		g.Clear()
		return
	}
	g.cells = make([]bool, size*size)
}

// Resize discards all cells and reallocates the grid, fully cleared
func (g *Grid) Resize(size int) error {
	if err := validateSize(size); err != nil {
		return errors.Wrap(err, "[Grid.Resize]")
	}
	g.size = size
	g.cells = make([]bool, size*size)
	return nil
}

// Clear clears all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

func (g *Grid) checkBounds(row, col int) error {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return errors.Wrapf(ErrIndex, "cell (%d, %d) outside %dx%d grid", row, col, g.size, g.size)
	}
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, errors.Wrap(err, "[Grid.Get]")
	}
	return g.cells[row*g.size+col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.checkBounds(row, col); err != nil {
		return errors.Wrap(err, "[Grid.Set]")
	}
	g.cells[row*g.size+col] = alive
	return nil
}

// Toggle flips a cell and returns its new state
func (g *Grid) Toggle(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, errors.Wrap(err, "[Grid.Toggle]")
	}
	i := row*g.size + col
	g.cells[i] = !g.cells[i]
	return g.cells[i], nil
}

// alive is the unchecked read used by the stepping loops
func (g *Grid) alive(row, col int) bool {
	return g.cells[row*g.size+col]
}

// CountNeighbors counts living cells among the 8 adjacent positions.
// Positions past the edge count as dead; there is no wraparound.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r*g.size+c] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same size and pattern
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the grid size and cell pattern
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d:", g.size)
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
