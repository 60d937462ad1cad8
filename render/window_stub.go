//go:build !ebiten

package render

import "github.com/sheikhrachel/gol-board/model"

// RunWindow always fails with ErrWindowUnavailable without the ebiten build tag
func RunWindow(*model.Engine, WindowOptions) error {
	return ErrWindowUnavailable
}
