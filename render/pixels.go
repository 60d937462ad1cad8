package render

import (
	"image/color"

	"github.com/sheikhrachel/gol-board/model"
)

// Default palette, matching the yellow-on-purple look of a viridis heat map.
var (
	AliveColor = color.RGBA{R: 253, G: 231, B: 37, A: 255}
	DeadColor  = color.RGBA{R: 68, G: 1, B: 84, A: 255}
)

// fillRGBA writes one RGBA pixel per cell of g into buf in row-major order.
// buf must hold at least Rows*Cols*4 bytes.
func fillRGBA(buf []byte, g *model.Grid, on, off color.RGBA) {
	cols := g.Cols()
	for i := range g.Rows() {
		for j := range cols {
			c := off
			if g.Alive(i, j) {
				c = on
			}
			base := (i*cols + j) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
