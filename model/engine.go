package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-board/rules"
)

// Engine owns the current generation of a Game of Life board and advances it.
//
// An Engine is not safe for concurrent use; callers driving it from several
// goroutines must serialize access themselves.
type Engine struct {
	grid       *Grid
	generation int

	pool    *GridPool
	workers int
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWorkers splits each step into n row stripes computed concurrently.
// n <= 1 computes the step sequentially.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithCPUWorkers uses one worker per available CPU
func WithCPUWorkers() EngineOption {
	return WithWorkers(runtime.NumCPU())
}

// WithPool draws next-generation buffers from p and returns retired ones to it
func WithPool(p *GridPool) EngineOption {
	return func(e *Engine) {
		e.pool = p
	}
}

// NewEngine creates an engine with an all-dead rows x cols grid at generation 0
func NewEngine(rows, cols int, opts ...EngineOption) (*Engine, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEngine]")
	}
	return newEngine(g, opts), nil
}

// NewEngineFromGrid creates an engine at generation 0 holding a copy of g
func NewEngineFromGrid(g *Grid, opts ...EngineOption) (*Engine, error) {
	if g == nil || g.rows <= 0 || g.cols <= 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[NewEngineFromGrid] empty grid")
	}
	return newEngine(g.Clone(), opts), nil
}

func newEngine(g *Grid, opts []EngineOption) *Engine {
	e := &Engine{grid: g, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rows returns the number of rows of the board
func (e *Engine) Rows() int {
	return e.grid.rows
}

// Cols returns the number of columns of the board
func (e *Engine) Cols() int {
	return e.grid.cols
}

// Generation returns the number of steps applied since creation
func (e *Engine) Generation() int {
	return e.generation
}

// SetCell overwrites a single cell. The generation counter is not advanced.
func (e *Engine) SetCell(i, j int, s State) error {
	if err := e.grid.Set(i, j, bool(s)); err != nil {
		return errors.Wrap(err, "[Engine.SetCell]")
	}
	return nil
}

// GetCell returns the state of a single cell
func (e *Engine) GetCell(i, j int) (State, error) {
	alive, err := e.grid.Get(i, j)
	if err != nil {
		return Dead, errors.Wrap(err, "[Engine.GetCell]")
	}
	return State(alive), nil
}

// CountLiveNeighbors returns the number of living cells, in [0, 8], adjacent to (i, j).
// The board has hard edges: positions outside it are not counted.
func (e *Engine) CountLiveNeighbors(i, j int) (int, error) {
	if !e.grid.InBounds(i, j) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[Engine.CountLiveNeighbors] (%d, %d) in %dx%d grid",
			i, j, e.grid.rows, e.grid.cols)
	}
	return e.grid.CountLiveNeighbors(i, j), nil
}

// LiveCells returns the current population
func (e *Engine) LiveCells() int {
	return e.grid.CountLivingCells()
}

// Snapshot returns a copy of the current grid that later steps will not modify
func (e *Engine) Snapshot() *Grid {
	return e.grid.Clone()
}

// Step advances the board by one generation.
//
// Every cell of the next grid is derived from the current grid only; the
// current grid is replaced once the whole next grid has been computed.
func (e *Engine) Step() {
	var next *Grid
	if e.pool != nil {
		next = e.pool.Get(e.grid.rows, e.grid.cols)
	} else {
		next = newGrid(e.grid.rows, e.grid.cols)
	}

	if e.workers > 1 && e.grid.rows > 1 {
		e.stepParallel(next)
	} else {
		computeRows(e.grid, next, 0, e.grid.rows)
	}

	prev := e.grid
	e.grid = next
	e.generation++

	if e.pool != nil {
		e.pool.Put(prev)
	}
}

// stepParallel computes next in row stripes. Workers only read cur and only
// write their own rows of next; Wait orders all of it before the swap.
func (e *Engine) stepParallel(next *Grid) {
	var (
		eg            errgroup.Group
		rows          = e.grid.rows
		numWorkers    = min(e.workers, rows)
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers
	)

	for w := range numWorkers {
		var (
			startRow = w * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			computeRows(e.grid, next, startRow, endRow)
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()
}

func computeRows(cur, next *Grid, startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		for j := range cur.cols {
			next.cells[i][j] = rules.ApplyConwayRules(cur.CountLiveNeighbors(i, j), cur.cells[i][j])
		}
	}
}
