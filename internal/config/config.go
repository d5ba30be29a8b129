package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCount    = 8
	DefaultMinValue = 1
	DefaultMaxValue = 100
	DefaultSpeed    = 1.0

	MinCount = 2
	MaxCount = 20
	MinSpeed = 0.1
	MaxSpeed = 2.0
)

// View styles for rendering a step.
const (
	ViewBars = "bars"
	ViewTree = "tree"
)

type Config struct {
	Count        int       `yaml:"count"`
	MinValue     int       `yaml:"min_value"`
	MaxValue     int       `yaml:"max_value"`
	Seed         int64     `yaml:"seed"`
	Speed        float64   `yaml:"speed"` // seconds per step during auto-play
	View         string    `yaml:"view"`
	ShowPrevious bool      `yaml:"show_previous"`
	Values       []float64 `yaml:"values"` // fixed input; overrides random generation
}

func DefaultConfig() *Config {
	return &Config{
		Count:        DefaultCount,
		MinValue:     DefaultMinValue,
		MaxValue:     DefaultMaxValue,
		Speed:        DefaultSpeed,
		View:         ViewBars,
		ShowPrevious: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the rest of the system cannot work with.
func (c *Config) Validate() error {
	if c.Count < MinCount || c.Count > MaxCount {
		return fmt.Errorf("count must be between %d and %d, got %d", MinCount, MaxCount, c.Count)
	}
	if c.MaxValue < c.MinValue {
		return fmt.Errorf("max_value %d is below min_value %d", c.MaxValue, c.MinValue)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("speed must be between %.1f and %.1f, got %g", MinSpeed, MaxSpeed, c.Speed)
	}
	if c.View != ViewBars && c.View != ViewTree {
		return fmt.Errorf("unknown view %q", c.View)
	}
	if len(c.Values) > 0 && (len(c.Values) < MinCount || len(c.Values) > MaxCount) {
		return fmt.Errorf("values length must be between %d and %d, got %d", MinCount, MaxCount, len(c.Values))
	}
	return nil
}

// ClampSpeed pins s to the allowed auto-play interval range.
func ClampSpeed(s float64) float64 {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}
