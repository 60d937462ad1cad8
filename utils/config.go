package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer names understood by the driver
const (
	RendererTerminal = "terminal"
	RendererText     = "text"
	RendererScreen   = "screen"
	RendererPNG      = "png"
	RendererWindow   = "window"
	RendererNone     = "none"
)

// WorkersPerCPU as Config.Workers computes one row stripe per CPU
const WorkersPerCPU = -1

// Config holds the configuration for a simulation run
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	InputFile           string        `json:"input_file"`
	OutputFile          string        `json:"output_file"`
	Renderer            string        `json:"renderer"`
	OutputDir           string        `json:"output_dir"`
	CellSize            int           `json:"cell_size"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Pattern:             "mid,rows",
		RandomDensity:       0.15,
		Seed:                1,
		Renderer:            RendererTerminal,
		OutputDir:           "frames",
		CellSize:            8,
		Workers:             1,
		UseMemoryPool:       true,
		StopOnStagnation:    false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot drive a run
func (c Config) Validate() error {
	if c.InputFile == "" && (c.Rows <= 0 || c.Cols <= 0) {
		return errors.Errorf("[Config.Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Config.Validate] negative frame_rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Config.Validate] negative max_generations %d", c.MaxGenerations)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Config.Validate] random_density %v outside [0, 1]", c.RandomDensity)
	}
	if c.Workers < WorkersPerCPU {
		return errors.Errorf("[Config.Validate] workers must be %d or more, got %d", WorkersPerCPU, c.Workers)
	}
	if c.StopOnStagnation && c.StagnationThreshold <= 0 {
		return errors.Errorf("[Config.Validate] stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Config.Validate] cell_size must be positive, got %d", c.CellSize)
	}
	switch c.Renderer {
	case RendererTerminal, RendererText, RendererScreen, RendererPNG, RendererWindow, RendererNone:
	default:
		return errors.Errorf("[Config.Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}
