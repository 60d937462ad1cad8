package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/render"
	"github.com/sheikhrachel/gol-board/utils"
)

// Reasons a run ends
const (
	stopMaxGenerations = "maximum generations reached"
	stopStagnation     = "stagnation detected"
	stopCancelled      = "cancelled"
	stopQuit           = "quit requested"
)

// runResult summarizes a finished run
type runResult struct {
	Generations          int
	Population           int
	Reason               string
	AveragePopulation    float64
	GenerationsPerSecond float64
	Elapsed              time.Duration
}

// initializeEngine builds the starting board from the input file or the
// configured patterns
func initializeEngine(config utils.Config) (*model.Engine, error) {
	var opts []model.EngineOption
	switch {
	case config.Workers == utils.WorkersPerCPU:
		opts = append(opts, model.WithCPUWorkers())
	case config.Workers > 1:
		opts = append(opts, model.WithWorkers(config.Workers))
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	if config.InputFile != "" {
		engine, err := model.LoadEngine(config.InputFile, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeEngine]")
		}
		return engine, nil
	}

	engine, err := model.NewEngine(config.Rows, config.Cols, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeEngine]")
	}
	seed, err := model.ParsePatterns(config.Pattern, model.PatternOptions{
		Density: config.RandomDensity,
		Seed:    config.Seed,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[initializeEngine]")
	}
	if err = seed(engine); err != nil {
		return nil, errors.Wrapf(err, "[initializeEngine] pattern %q", config.Pattern)
	}
	return engine, nil
}

// newRenderer builds the configured renderer. quit is non-nil when the
// renderer can ask the run to stop; closing the returned io.Closer, when
// present, releases the renderer.
func newRenderer(config utils.Config, out io.Writer) (render.Renderer, <-chan struct{}, io.Closer, error) {
	switch config.Renderer {
	case utils.RendererTerminal:
		return render.NewTerminalRenderer(out, true), nil, nil, nil
	case utils.RendererText:
		return render.NewTextRenderer(out), nil, nil, nil
	case utils.RendererPNG:
		r, err := render.NewPNGRenderer(config.OutputDir, config.CellSize)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "[newRenderer]")
		}
		return r, nil, nil, nil
	case utils.RendererScreen:
		r, err := render.NewScreenRenderer()
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "[newRenderer]")
		}
		return r, r.Done(), r, nil
	case utils.RendererNone:
		return render.Discard{}, nil, nil, nil
	}
	return nil, nil, nil, errors.Errorf("[newRenderer] unsupported renderer %q", config.Renderer)
}

// runSimulation renders and advances the engine until a stop condition is met
func runSimulation(
	ctx context.Context,
	engine *model.Engine,
	renderer render.Renderer,
	quit <-chan struct{},
	config utils.Config,
	logger *slog.Logger,
) (runResult, error) {
	var (
		stats         = utils.NewStats()
		history       utils.History
		stagnantCount = 0
		lastFrameTime = time.Now()
	)
	stopWith := func(reason string, population int) runResult {
		return runResult{
			Generations:          engine.Generation(),
			Population:           population,
			Reason:               reason,
			AveragePopulation:    stats.AveragePopulation,
			GenerationsPerSecond: stats.GenerationsPerSecond,
			Elapsed:              stats.Runtime(),
		}
	}

	for {
		frameStart := time.Now()

		snapshot := engine.Snapshot()
		population := snapshot.CountLivingCells()
		stats.Update(population, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := renderer.Render(snapshot, engine.Generation()); err != nil {
			return runResult{}, errors.Wrapf(err, "[runSimulation] generation %d", engine.Generation())
		}

		if history.Seen(snapshot.Hash()) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		logger.Debug("generation rendered",
			"generation", engine.Generation(),
			"population", population,
			"stagnant", stagnantCount,
			"gen_per_sec", stats.GenerationsPerSecond)

		switch {
		case config.MaxGenerations > 0 && engine.Generation() >= config.MaxGenerations:
			return stopWith(stopMaxGenerations, population), nil
		case config.StopOnStagnation && stagnantCount >= config.StagnationThreshold:
			return stopWith(stopStagnation, population), nil
		}

		engine.Step()

		select {
		case <-ctx.Done():
			return stopWith(stopCancelled, engine.LiveCells()), nil
		case <-quit:
			return stopWith(stopQuit, engine.LiveCells()), nil
		default:
		}

		wait := config.FrameRate - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return stopWith(stopCancelled, engine.LiveCells()), nil
		case <-quit:
			timer.Stop()
			return stopWith(stopQuit, engine.LiveCells()), nil
		case <-timer.C:
		}
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, engine *model.Engine) {
	workers := "1"
	switch {
	case config.Workers == utils.WorkersPerCPU:
		workers = "per CPU"
	case config.Workers > 1:
		workers = fmt.Sprint(config.Workers)
	}
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Renderer: %s | Workers: %s\n",
		engine.Rows(), engine.Cols(), engine.LiveCells(), config.Renderer, workers)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayFinalStats prints the outcome of a run
func displayFinalStats(out io.Writer, result runResult) {
	fmt.Fprintf(out, "\nStopped: %s\n", result.Reason)
	fmt.Fprintf(out, "Final stats: %d generations, %d living cells\n", result.Generations, result.Population)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		result.GenerationsPerSecond, result.AveragePopulation, result.Elapsed.Seconds())
}

// saveFinalGrid writes the board to config.OutputFile when one is configured
func saveFinalGrid(config utils.Config, engine *model.Engine) error {
	if config.OutputFile == "" {
		return nil
	}
	return model.SaveGrid(config.OutputFile, engine.Snapshot())
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
