package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML structure.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Playback PlaybackConf `yaml:"playback"`
	Canvas   CanvasConf   `yaml:"canvas"`
}

// PlaybackConf holds the three auto-advance speed tiers, in milliseconds
// between steps.
type PlaybackConf struct {
	SlowMs   int `yaml:"slow_ms"`
	NormalMs int `yaml:"normal_ms"`
	FastMs   int `yaml:"fast_ms"`
}

// CanvasConf sizes the layout plane for default vertex positioning.
type CanvasConf struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Playback: PlaybackConf{
			SlowMs:   2000,
			NormalMs: 1000,
			FastMs:   400,
		},
		Canvas: CanvasConf{
			Width:  800,
			Height: 600,
		},
	}
}

// Load reads a YAML config file, filling absent fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the session cannot work with.
func (c *Config) Validate() error {
	if c.Playback.SlowMs <= 0 || c.Playback.NormalMs <= 0 || c.Playback.FastMs <= 0 {
		return fmt.Errorf("playback delays must be positive, got slow=%d normal=%d fast=%d",
			c.Playback.SlowMs, c.Playback.NormalMs, c.Playback.FastMs)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %vx%v",
			c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

// TierDelay maps a speed-tier name to its configured interval.
// Unknown tiers fall back to the normal tier.
func (c *Config) TierDelay(tier string) time.Duration {
	switch tier {
	case "slow":
		return time.Duration(c.Playback.SlowMs) * time.Millisecond
	case "fast":
		return time.Duration(c.Playback.FastMs) * time.Millisecond
	default:
		return time.Duration(c.Playback.NormalMs) * time.Millisecond
	}
}
