package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Initializer seeds an engine before its first step
type Initializer func(e *Engine) error

// PatternOptions carries parameters for the patterns that need them
type PatternOptions struct {
	Density float64
	Seed    int64
}

type patternFactory func(PatternOptions) Initializer

var patterns = map[string]patternFactory{
	"mid":     func(PatternOptions) Initializer { return Mid },
	"cross":   func(PatternOptions) Initializer { return Cross },
	"rows":    func(PatternOptions) Initializer { return EveryOtherRow },
	"cols":    func(PatternOptions) Initializer { return EveryOtherCol },
	"gliders": func(PatternOptions) Initializer { return FourGliders },
	"glider":  func(PatternOptions) Initializer { return CenteredGlider },
	"blinker": func(PatternOptions) Initializer { return CenteredBlinker },
	"block":   func(PatternOptions) Initializer { return CenteredBlock },
	"random": func(o PatternOptions) Initializer {
		return Random(o.Density, o.Seed)
	},
}

// Names lists the registered pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the initializer registered under name
func Lookup(name string, opts PatternOptions) (Initializer, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return f(opts), nil
}

// ParsePatterns resolves a comma separated list such as "mid,rows" into one
// initializer applying each pattern in order
func ParsePatterns(list string, opts PatternOptions) (Initializer, error) {
	var inits []Initializer
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		init, err := Lookup(name, opts)
		if err != nil {
			return nil, err
		}
		inits = append(inits, init)
	}
	return Combine(inits...), nil
}

// Combine applies the initializers in order, stopping at the first error
func Combine(inits ...Initializer) Initializer {
	return func(e *Engine) error {
		for _, init := range inits {
			if err := init(e); err != nil {
				return err
			}
		}
		return nil
	}
}

// placeClipped sets the given (row, col) offsets alive relative to (i0, j0),
// skipping any that fall outside the board
func placeClipped(e *Engine, i0, j0 int, cells [][2]int) {
	for _, c := range cells {
		i, j := i0+c[0], j0+c[1]
		if e.grid.InBounds(i, j) {
			e.grid.cells[i][j] = true
		}
	}
}

// Mid lights the center cell, its left and right neighbors and the cell below it
func Mid(e *Engine) error {
	placeClipped(e, e.Rows()/2, e.Cols()/2, [][2]int{{0, 0}, {0, 1}, {0, -1}, {1, 0}})
	return nil
}

// Cross lights a plus shape spanning the 3x3 block centered in the grid
func Cross(e *Engine) error {
	placeClipped(e, e.Rows()/2, e.Cols()/2, [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}})
	return nil
}

// EveryOtherRow lights rows 0, 2, 4, ...
func EveryOtherRow(e *Engine) error {
	for i := 0; i < e.Rows(); i += 2 {
		for j := range e.Cols() {
			e.grid.cells[i][j] = true
		}
	}
	return nil
}

// EveryOtherCol lights columns 0, 2, 4, ...
func EveryOtherCol(e *Engine) error {
	for j := 0; j < e.Cols(); j += 2 {
		for i := range e.Rows() {
			e.grid.cells[i][j] = true
		}
	}
	return nil
}

// gliderCells is a glider travelling towards increasing row and column
var gliderCells = [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

// orientGlider mirrors the glider so it travels up when flipRows is set and
// left when flipCols is set
func orientGlider(flipRows, flipCols bool) [][2]int {
	out := make([][2]int, len(gliderCells))
	for k, c := range gliderCells {
		i, j := c[0], c[1]
		if flipRows {
			i = 2 - i
		}
		if flipCols {
			j = 2 - j
		}
		out[k] = [2]int{i, j}
	}
	return out
}

// GliderAt places a glider with its 3x3 bounding box at (i, j).
// The glider moves towards the bottom right unless flipped.
func GliderAt(e *Engine, i, j int, flipRows, flipCols bool) error {
	if !e.grid.InBounds(i, j) || !e.grid.InBounds(i+2, j+2) {
		return errors.Wrapf(ErrOutOfBounds, "[GliderAt] 3x3 box at (%d, %d) in %dx%d grid", i, j, e.Rows(), e.Cols())
	}
	placeClipped(e, i, j, orientGlider(flipRows, flipCols))
	return nil
}

// FourGliders places a glider one cell in from each corner, each heading
// towards the middle of the board so they collide
func FourGliders(e *Engine) error {
	rows, cols := e.Rows(), e.Cols()
	if rows < 8 || cols < 8 {
		return errors.Wrapf(ErrInvalidDimensions, "[FourGliders] need at least 8x8, have %dx%d", rows, cols)
	}
	corners := []struct {
		i, j               int
		flipRows, flipCols bool
	}{
		{1, 1, false, false},
		{1, cols - 4, false, true},
		{rows - 4, 1, true, false},
		{rows - 4, cols - 4, true, true},
	}
	for _, c := range corners {
		if err := GliderAt(e, c.i, c.j, c.flipRows, c.flipCols); err != nil {
			return err
		}
	}
	return nil
}

// CenteredGlider places a single glider in the middle of the board
func CenteredGlider(e *Engine) error {
	return GliderAt(e, e.Rows()/2-1, e.Cols()/2-1, false, false)
}

// CenteredBlinker places a horizontal period-2 blinker in the middle of the board
func CenteredBlinker(e *Engine) error {
	placeClipped(e, e.Rows()/2, e.Cols()/2, [][2]int{{0, -1}, {0, 0}, {0, 1}})
	return nil
}

// CenteredBlock places the 2x2 still life in the middle of the board
func CenteredBlock(e *Engine) error {
	placeClipped(e, e.Rows()/2-1, e.Cols()/2-1, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	return nil
}

// Random returns an initializer that makes each cell alive with probability
// density. The same seed always produces the same board.
func Random(density float64, seed int64) Initializer {
	return func(e *Engine) error {
		if density < 0 || density > 1 {
			return errors.Errorf("[Random] density %v outside [0, 1]", density)
		}
		r := rand.New(rand.NewSource(uint64(seed)))
		for i := range e.Rows() {
			for j := range e.Cols() {
				e.grid.cells[i][j] = r.Float64() < density
			}
		}
		return nil
	}
}
