package model

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseGrid(t *testing.T) {
	in := ". O .\r\n. . O\n\nO O O\n"
	g, err := ParseGrid(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("parsed %dx%d grid, want 3x3", g.Rows(), g.Cols())
	}
	want := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	for i, row := range want {
		for j, alive := range row {
			if got := g.Alive(i, j); got != alive {
				t.Fatalf("cell (%d,%d) = %v, want %v", i, j, got, alive)
			}
		}
	}
}

func TestParseGridSkipsComments(t *testing.T) {
	in := "# generation 4\n. O\n  # trailing note\nO .\n"
	g, err := ParseGrid(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 2 || g.Cols() != 2 || !g.Alive(0, 1) || !g.Alive(1, 0) || g.CountLivingCells() != 2 {
		t.Fatalf("unexpected grid from commented input: %dx%d", g.Rows(), g.Cols())
	}

	// a comment marker inside a row is still a bad token
	if _, err := ParseGrid(strings.NewReader(". # O\n")); !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("err = %v, want ErrMalformedGrid", err)
	}
}

func TestParseGridMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ragged rows", ". O .\n. O\n"},
		{"unknown token", ". X .\n"},
		{"lowercase alive", ". o .\n"},
		{"glued tokens", ".O.\n"},
		{"empty input", ""},
		{"only blank lines", "\n  \n"},
		{"only comments", "# generation 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(strings.NewReader(tt.in))
			if !errors.Is(err, ErrMalformedGrid) {
				t.Fatalf("err = %v, want ErrMalformedGrid", err)
			}
			if g != nil {
				t.Fatal("malformed input produced a grid")
			}
		})
	}
}

func TestWriteGrid(t *testing.T) {
	g, _ := NewGrid(2, 3)
	_ = g.Set(0, 1, true)
	_ = g.Set(1, 2, true)

	var buf bytes.Buffer
	if err := WriteGrid(&buf, g); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), ". O .\n. . O\n"; got != want {
		t.Fatalf("WriteGrid = %q, want %q", got, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	e := mustEngine(t, 13, 29)
	if err := Random(0.5, 3)(e); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := SaveGrid(path, e.Snapshot()); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadEngine(path, WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Generation() != 0 {
		t.Fatalf("loaded engine at generation %d", loaded.Generation())
	}
	if !loaded.Snapshot().Equal(e.Snapshot()) {
		t.Fatal("round trip changed the grid")
	}
}

func TestLoadEngineErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadEngine(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatal("loading a missing file succeeded")
	}

	path := filepath.Join(dir, "ragged.txt")
	if err := os.WriteFile(path, []byte("O O\nO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := LoadEngine(path)
	if !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("err = %v, want ErrMalformedGrid", err)
	}
	if e != nil {
		t.Fatal("malformed file produced an engine")
	}
}
