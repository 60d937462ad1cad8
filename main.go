package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/render"
	"github.com/sheikhrachel/gol-board/utils"
)

// parseFlags applies command line flags on top of config. Only flags that
// were set explicitly override the file.
func parseFlags(fset *flag.FlagSet, args []string) (configPath string, verbose bool, apply func(*utils.Config), err error) {
	var (
		rows        = fset.Int("rows", 0, "grid rows")
		cols        = fset.Int("cols", 0, "grid columns")
		pattern     = fset.String("pattern", "", "comma separated initial patterns: "+strings.Join(model.Names(), ", "))
		load        = fset.String("load", "", "load the initial grid from a text file")
		save        = fset.String("save", "", "save the final grid to a text file")
		renderer    = fset.String("renderer", "", "terminal, text, screen, png, window or none")
		generations = fset.Int("generations", 0, "stop after this many generations (0 runs until interrupted)")
		frameRate   = fset.Duration("frame-rate", 0, "delay between generations")
		workers     = fset.Int("workers", 0, "row stripes computed concurrently per step (-1 for one per CPU)")
		seed        = fset.Int64("seed", 0, "seed for the random pattern")
		density     = fset.Float64("density", 0, "live cell probability for the random pattern")
		outDir      = fset.String("out", "", "directory for png frames")
	)
	fset.StringVar(&configPath, "config", "config.json", "JSON configuration file")
	fset.BoolVar(&verbose, "v", false, "debug logging")

	if err = fset.Parse(args); err != nil {
		return "", false, nil, errors.Wrap(err, "[parseFlags]")
	}

	apply = func(c *utils.Config) {
		fset.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "rows":
				c.Rows = *rows
			case "cols":
				c.Cols = *cols
			case "pattern":
				c.Pattern = *pattern
			case "load":
				c.InputFile = *load
			case "save":
				c.OutputFile = *save
			case "renderer":
				c.Renderer = *renderer
			case "generations":
				c.MaxGenerations = *generations
			case "frame-rate":
				c.FrameRate = *frameRate
			case "workers":
				c.Workers = *workers
			case "seed":
				c.Seed = *seed
			case "density":
				c.RandomDensity = *density
			case "out":
				c.OutputDir = *outDir
			}
		})
	}
	return configPath, verbose, apply, nil
}

func run(args []string) error {
	configPath, verbose, applyFlags, err := parseFlags(flag.NewFlagSet("gol-board", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	logger := newLogger(verbose).With("run", uuid.New().String())

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		logger.Debug("using default configuration", "path", configPath)
		config = utils.DefaultConfig()
	}
	applyFlags(&config)
	if err = config.Validate(); err != nil {
		return err
	}

	engine, err := initializeEngine(config)
	if err != nil {
		return err
	}
	logger.Info("engine ready",
		"rows", engine.Rows(),
		"cols", engine.Cols(),
		"population", engine.LiveCells(),
		"renderer", config.Renderer)

	start := time.Now()
	if config.Renderer == utils.RendererWindow {
		err = render.RunWindow(engine, render.WindowOptions{
			Title:          "Game of Life",
			Scale:          config.CellSize,
			FrameRate:      config.FrameRate,
			MaxGenerations: config.MaxGenerations,
		})
		if err != nil {
			return err
		}
		logger.Info("window closed", "generations", engine.Generation(), "elapsed", time.Since(start))
		return saveFinalGrid(config, engine)
	}

	renderer, quit, closer, err := newRenderer(config, os.Stdout)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Renderer == utils.RendererTerminal {
		displayGameInfo(os.Stdout, config, engine)
	}
	result, runErr := runSimulation(ctx, engine, renderer, quit, config, logger)
	if closer != nil {
		if err = closer.Close(); err != nil {
			logger.Warn("closing renderer", "err", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	if config.Renderer == utils.RendererTerminal {
		displayFinalStats(os.Stdout, result)
	}
	if r, ok := renderer.(*render.PNGRenderer); ok {
		logger.Info("frames written", "dir", r.Dir())
	}
	logger.Info("run finished",
		"reason", result.Reason,
		"generations", result.Generations,
		"population", result.Population,
		"avg_population", result.AveragePopulation,
		"elapsed", time.Since(start))

	return saveFinalGrid(config, engine)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "gol-board: %v\n", err)
		os.Exit(1)
	}
}
