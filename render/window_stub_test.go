//go:build !ebiten

package render

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRunWindowWithoutEbiten(t *testing.T) {
	if err := RunWindow(nil, WindowOptions{}); !errors.Is(err, ErrWindowUnavailable) {
		t.Fatalf("RunWindow err = %v, want ErrWindowUnavailable", err)
	}
}
