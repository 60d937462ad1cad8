package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// State is the state of a single cell.
type State bool

const (
	Dead  State = false
	Alive State = true
)

func (s State) String() string {
	if s {
		return "alive"
	}
	return "dead"
}

// neighborOffsets are the relative (row, col) positions of the Moore neighborhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size board of cells indexed by (row, col)
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (i, j) addresses a cell of the grid
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// reset resizes the grid to new dimensions and kills every cell.
// Only the pool calls this; a grid in use keeps its dimensions.
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
			continue
		}
		clear(g.cells[i])
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(i, j int, alive bool) error {
	if !g.InBounds(i, j) {
		return errors.Wrapf(ErrOutOfBounds, "[Grid.Set] (%d, %d) in %dx%d grid", i, j, g.rows, g.cols)
	}
	g.cells[i][j] = alive
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(i, j int) (bool, error) {
	if !g.InBounds(i, j) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Grid.Get] (%d, %d) in %dx%d grid", i, j, g.rows, g.cols)
	}
	return g.cells[i][j], nil
}

// Alive returns the state of an in-bounds cell without checking indices
func (g *Grid) Alive(i, j int) bool {
	return g.cells[i][j]
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of (i, j).
// Positions beyond the edge of the grid do not exist and are skipped, so a
// corner has 3 candidate neighbors, an edge cell 5 and an interior cell 8.
// The caller guarantees (i, j) is in bounds.
func (g *Grid) CountLiveNeighbors(i, j int) int {
	count := 0
	for _, off := range neighborOffsets {
		ni, nj := i+off[0], j+off[1]
		if ni < 0 || ni >= g.rows || nj < 0 || nj >= g.cols {
			continue
		}
		if g.cells[ni][nj] {
			count++
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j] {
				count++
			}
		}
	}
	return
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.cols)
	c.copyFrom(g)
	return c
}

func (g *Grid) copyFrom(src *Grid) {
	for i := range src.rows {
		copy(g.cells[i], src.cells[i])
	}
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
