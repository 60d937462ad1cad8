package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"rows": 12, "cols": 40, "pattern": "gliders", "renderer": "png", "frame_rate": 1000000}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 12 || cfg.Cols != 40 || cfg.Pattern != "gliders" || cfg.Renderer != RendererPNG {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.FrameRate != time.Millisecond {
		t.Fatalf("frame_rate = %v, want 1ms", cfg.FrameRate)
	}
	if cfg.CellSize != DefaultConfig().CellSize {
		t.Fatal("unset fields lost their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("missing file accepted")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{rows:"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatal("invalid JSON accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -4 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.2 }},
		{"workers below per-CPU marker", func(c *Config) { c.Workers = -2 }},
		{"zero stagnation threshold", func(c *Config) { c.StopOnStagnation, c.StagnationThreshold = true, 0 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"unknown renderer", func(c *Config) { c.Renderer = "matplotlib" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Workers = WorkersPerCPU
	if err := cfg.Validate(); err != nil {
		t.Fatalf("per-CPU workers rejected: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Rows, cfg.Cols = 0, 0
	cfg.InputFile = "board.txt"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("dimensions come from the input file, got %v", err)
	}
}
