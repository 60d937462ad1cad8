package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/render"
	"github.com/sheikhrachel/gol-board/utils"
)

// recorder remembers which generations it was asked to draw
type recorder struct {
	generations []int
}

func (r *recorder) Render(_ *model.Grid, generation int) error {
	r.generations = append(r.generations, generation)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Rows, cfg.Cols = 8, 8
	cfg.FrameRate = 0
	cfg.Renderer = utils.RendererNone
	return cfg
}

func TestRunSimulationStopsAtMaxGenerations(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = "glider"
	cfg.MaxGenerations = 5

	engine, err := initializeEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	result, err := runSimulation(context.Background(), engine, rec, nil, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if result.Reason != stopMaxGenerations || result.Generations != 5 || engine.Generation() != 5 {
		t.Fatalf("unexpected result %+v at generation %d", result, engine.Generation())
	}
	if len(rec.generations) != 6 || rec.generations[0] != 0 || rec.generations[5] != 5 {
		t.Fatalf("rendered generations %v, want 0 through 5", rec.generations)
	}
	if result.Population != 5 {
		t.Fatalf("glider population %d, want 5", result.Population)
	}
}

func TestRunSimulationStopsOnStagnation(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = "block"
	cfg.MaxGenerations = 100
	cfg.StopOnStagnation = true
	cfg.StagnationThreshold = 2

	engine, err := initializeEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	result, err := runSimulation(context.Background(), engine, render.Discard{}, nil, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if result.Reason != stopStagnation || result.Generations != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if math.Abs(result.AveragePopulation-4) > 1e-9 {
		t.Fatalf("average population %v, want 4", result.AveragePopulation)
	}

	var out bytes.Buffer
	displayFinalStats(&out, result)
	for _, want := range []string{"Stopped: " + stopStagnation, "2 generations, 4 living cells", "Avg Pop: 4.0", "Runtime: "} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("final stats missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunSimulationHonoursCancellation(t *testing.T) {
	cfg := testConfig()
	cfg.MaxGenerations = 0

	engine, err := initializeEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runSimulation(ctx, engine, render.Discard{}, nil, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if result.Reason != stopCancelled || result.Generations != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	quit := make(chan struct{})
	close(quit)
	result, err = runSimulation(context.Background(), engine, render.Discard{}, quit, cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if result.Reason != stopQuit || result.Generations != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestInitializeEngineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(". O .\n. O .\n. O .\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.InputFile = path
	cfg.Workers = 2

	engine, err := initializeEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if engine.Rows() != 3 || engine.Cols() != 3 || engine.LiveCells() != 3 {
		t.Fatalf("loaded %dx%d board with %d cells", engine.Rows(), engine.Cols(), engine.LiveCells())
	}

	cfg.InputFile = ""
	cfg.Workers = utils.WorkersPerCPU
	cfg.Pattern = "blinker"
	cfg.MaxGenerations = 2
	engine, err = initializeEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := runSimulation(context.Background(), engine, render.Discard{}, nil, cfg, testLogger()); err != nil {
		t.Fatal(err)
	}
	if engine.LiveCells() != 3 || engine.Generation() != 2 {
		t.Fatalf("per-CPU engine ended with %d cells at generation %d", engine.LiveCells(), engine.Generation())
	}

	cfg.Pattern = "nonsense"
	if _, err := initializeEngine(cfg); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}

func TestNewRenderer(t *testing.T) {
	var out bytes.Buffer
	for _, name := range []string{utils.RendererTerminal, utils.RendererText, utils.RendererNone, utils.RendererPNG} {
		cfg := testConfig()
		cfg.Renderer = name
		cfg.OutputDir = t.TempDir()
		r, quit, closer, err := newRenderer(cfg, &out)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if r == nil || quit != nil || closer != nil {
			t.Fatalf("%s: unexpected renderer wiring", name)
		}
	}

	cfg := testConfig()
	cfg.Renderer = "matplotlib"
	if _, _, _, err := newRenderer(cfg, &out); err == nil {
		t.Fatal("unknown renderer accepted")
	}
}

func TestParseFlagsOverridesOnlySetFlags(t *testing.T) {
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	path, verbose, apply, err := parseFlags(fset, []string{"-config", "x.json", "-rows", "9", "-pattern", "gliders", "-v"})
	if err != nil {
		t.Fatal(err)
	}
	if path != "x.json" || !verbose {
		t.Fatalf("config=%q verbose=%v", path, verbose)
	}

	cfg := utils.DefaultConfig()
	apply(&cfg)
	if cfg.Rows != 9 || cfg.Pattern != "gliders" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Cols != utils.DefaultConfig().Cols {
		t.Fatal("unset flag overrode the config")
	}
}

func TestRunWritesFinalGrid(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "final.txt")
	args := []string{
		"-config", filepath.Join(dir, "missing.json"),
		"-renderer", "none",
		"-rows", "6", "-cols", "6",
		"-pattern", "blinker",
		"-generations", "3",
		"-frame-rate", "0s",
		"-save", out,
	}
	if err := run(args); err != nil {
		t.Fatal(err)
	}

	g, err := model.LoadGrid(out)
	if err != nil {
		t.Fatal(err)
	}
	// a blinker after an odd number of generations is vertical
	var buf bytes.Buffer
	if err := model.WriteGrid(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		". . . . . .",
		". . . . . .",
		". . . O . .",
		". . . O . .",
		". . . O . .",
		". . . . . .",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("final grid:\n%s\nwant:\n%s", buf.String(), want)
	}
}
