package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
)

// ScreenRenderer animates generations full screen in the terminal.
// Pressing q, Esc or Ctrl-C closes the channel returned by Done.
type ScreenRenderer struct {
	screen tcell.Screen
	done   chan struct{}
	once   sync.Once

	aliveStyle  tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// NewScreenRenderer takes over the terminal until Close is called
func NewScreenRenderer() (*ScreenRenderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] creating screen")
	}
	return newScreenRenderer(s)
}

func newScreenRenderer(s tcell.Screen) (*ScreenRenderer, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] initializing screen")
	}
	s.Clear()

	r := &ScreenRenderer{
		screen:      s,
		done:        make(chan struct{}),
		aliveStyle:  tcell.StyleDefault.Background(tcell.NewRGBColor(int32(AliveColor.R), int32(AliveColor.G), int32(AliveColor.B))),
		deadStyle:   tcell.StyleDefault.Background(tcell.NewRGBColor(int32(DeadColor.R), int32(DeadColor.G), int32(DeadColor.B))),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	go r.pollEvents()
	return r, nil
}

func (r *ScreenRenderer) pollEvents() {
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.quit()
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

func (r *ScreenRenderer) quit() {
	r.once.Do(func() { close(r.done) })
}

// Done is closed once the user asks to quit
func (r *ScreenRenderer) Done() <-chan struct{} {
	return r.done
}

// Render draws the status line on the top row and the grid below it, two
// terminal columns per cell. Cells beyond the terminal size are not drawn.
func (r *ScreenRenderer) Render(g *model.Grid, generation int) error {
	r.screen.Clear()

	status := fmt.Sprintf("Gen: %d | Living: %d | q to quit", generation, g.CountLivingCells())
	for x, ch := range []rune(status) {
		r.screen.SetContent(x, 0, ch, nil, r.statusStyle)
	}

	for i := range g.Rows() {
		for j := range g.Cols() {
			style := r.deadStyle
			if g.Alive(i, j) {
				style = r.aliveStyle
			}
			r.screen.SetContent(j*2, i+1, ' ', nil, style)
			r.screen.SetContent(j*2+1, i+1, ' ', nil, style)
		}
	}
	r.screen.Show()
	return nil
}

// Close restores the terminal
func (r *ScreenRenderer) Close() error {
	r.screen.Fini()
	return nil
}
