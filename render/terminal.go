package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and clears the screen
	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer prints each generation as block characters
type TerminalRenderer struct {
	out   io.Writer
	clear bool
}

// NewTerminalRenderer writes frames to out, clearing the screen before each
// frame when clear is set
func NewTerminalRenderer(out io.Writer, clear bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, clear: clear}
}

// Render prints a status line followed by the grid
func (r *TerminalRenderer) Render(g *model.Grid, generation int) error {
	w := bufio.NewWriter(r.out)
	if r.clear {
		w.WriteString(ansiClear)
	}

	living := g.CountLivingCells()
	density := float64(living) / float64(g.Rows()*g.Cols()) * 100
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%%\n", generation, living, density)

	for i := range g.Rows() {
		for j := range g.Cols() {
			if g.Alive(i, j) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Render] failed to write frame")
	}
	return nil
}

// TextRenderer prints each generation in the grid text format under a comment
// header, so a single frame can be loaded back with model.LoadGrid
type TextRenderer struct {
	out io.Writer
}

func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

// Render prints a "# generation N" header, the grid and a blank separator line
func (r *TextRenderer) Render(g *model.Grid, generation int) error {
	if _, err := fmt.Fprintf(r.out, "# generation %d\n", generation); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] failed to write header")
	}
	if err := model.WriteGrid(r.out, g); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render]")
	}
	if _, err := io.WriteString(r.out, "\n"); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] failed to write separator")
	}
	return nil
}
