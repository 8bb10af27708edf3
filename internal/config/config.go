package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 720
	WindowHeight = 720
	WindowTitle  = "Trig Visualization"

	// Animation
	AngularRate = 0.5 // rad/s

	// Geometry
	MaxRadius    = 200
	RadiusMargin = 20
	SegmentLimit = 9000

	// Pause button, anchored top-right
	ButtonWidth  = 100
	ButtonHeight = 42
	ButtonInset  = 10

	// Sound
	BaseFrequency  = 440
	Volume         = 0.2
	ScopeRingSize  = 4096
	ScopeSamples   = 512
	SoundOnStartup = false

	FileName = "trigviz.yaml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the optional trigviz.yaml file. Zero fields keep the defaults.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Geometry  GeometryConfig  `yaml:"geometry"`
	Sound     SoundConfig     `yaml:"sound"`
	Log       LogConfig       `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

type AnimationConfig struct {
	Rate float64 `yaml:"rate,omitempty"`
}

type GeometryConfig struct {
	MaxRadius float64 `yaml:"max_radius,omitempty"`
	Margin    float64 `yaml:"margin,omitempty"`
	Limit     float64 `yaml:"limit,omitempty"`
}

type SoundConfig struct {
	Enabled       bool    `yaml:"enabled,omitempty"`
	BaseFrequency float64 `yaml:"base_frequency,omitempty"`
	Volume        float64 `yaml:"volume,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window:    WindowConfig{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Animation: AnimationConfig{Rate: AngularRate},
		Geometry:  GeometryConfig{MaxRadius: MaxRadius, Margin: RadiusMargin, Limit: SegmentLimit},
		Sound:     SoundConfig{Enabled: SoundOnStartup, BaseFrequency: BaseFrequency, Volume: Volume},
		Log:       LogConfig{Level: "info"},
	}
}

// LoadOptional reads trigviz.yaml from dir if present and overlays it on
// the defaults. A missing file yields the defaults.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the visualization cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Geometry.MaxRadius <= 0:
		return fmt.Errorf("%w: geometry.max_radius %v", ErrInvalid, c.Geometry.MaxRadius)
	case c.Geometry.Margin < 0:
		return fmt.Errorf("%w: geometry.margin %v", ErrInvalid, c.Geometry.Margin)
	case c.Geometry.Limit <= 0:
		return fmt.Errorf("%w: geometry.limit %v", ErrInvalid, c.Geometry.Limit)
	case c.Sound.BaseFrequency <= 0:
		return fmt.Errorf("%w: sound.base_frequency %v", ErrInvalid, c.Sound.BaseFrequency)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound.volume %v", ErrInvalid, c.Sound.Volume)
	}
	return nil
}
