package render

import (
	"time"

	"github.com/pkg/errors"
)

// ErrWindowUnavailable is returned by RunWindow in builds without the ebiten tag
var ErrWindowUnavailable = errors.New("window renderer requires building with -tags ebiten")

// WindowOptions configures the interactive window
type WindowOptions struct {
	Title          string
	Scale          int
	FrameRate      time.Duration
	MaxGenerations int
}

// stepEvery converts a frame rate into a number of ticks between steps at tps
// ticks per second, never less than one
func (o WindowOptions) stepEvery(tps int) int {
	ticks := int(o.FrameRate * time.Duration(tps) / time.Second)
	return max(1, ticks)
}
