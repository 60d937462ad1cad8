// Package render draws Game of Life generations. Renderers only read the
// grids they are given.
package render

import "github.com/sheikhrachel/gol-board/model"

// Renderer draws one generation of the board
type Renderer interface {
	Render(g *model.Grid, generation int) error
}

// Discard is a Renderer that draws nothing
type Discard struct{}

func (Discard) Render(*model.Grid, int) error { return nil }
