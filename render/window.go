//go:build ebiten

package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/gol-board/model"
)

// window adapts an engine to the ebiten.Game interface
type window struct {
	engine *model.Engine
	opts   WindowOptions

	img    *ebiten.Image
	pixels []byte

	stepEvery int
	ticks     int
	paused    bool
	tickOnce  bool
}

// RunWindow opens a window animating e until it is closed, q or Esc is
// pressed or MaxGenerations is reached. Space pauses and n single-steps.
func RunWindow(e *model.Engine, opts WindowOptions) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	w := &window{
		engine:    e,
		opts:      opts,
		img:       ebiten.NewImage(e.Cols(), e.Rows()),
		pixels:    make([]byte, e.Rows()*e.Cols()*4),
		stepEvery: opts.stepEvery(ebiten.TPS()),
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(e.Cols()*opts.Scale, e.Rows()*opts.Scale)
	if err := ebiten.RunGame(w); err != nil {
		return errors.Wrap(err, "[RunWindow]")
	}
	return nil
}

// Update handles input and advances the engine on its own cadence
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}

	if w.opts.MaxGenerations > 0 && w.engine.Generation() >= w.opts.MaxGenerations {
		return ebiten.Termination
	}

	w.ticks++
	if (!w.paused && w.ticks >= w.stepEvery) || w.tickOnce {
		w.engine.Step()
		w.ticks = 0
		w.tickOnce = false
	}
	return nil
}

// Draw paints one pixel per cell and lets ebiten scale it to the window
func (w *window) Draw(screen *ebiten.Image) {
	fillRGBA(w.pixels, w.engine.Snapshot(), AliveColor, DeadColor)
	w.img.WritePixels(w.pixels)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w.opts.Scale), float64(w.opts.Scale))
	screen.DrawImage(w.img, &op)

	label := fmt.Sprintf("gen %d", w.engine.Generation())
	if w.paused {
		label += " (paused)"
	}
	text.Draw(screen, label, basicfont.Face7x13, 4, 12, color.White)
}

func (w *window) Layout(int, int) (int, int) {
	return w.engine.Cols() * w.opts.Scale, w.engine.Rows() * w.opts.Scale
}
