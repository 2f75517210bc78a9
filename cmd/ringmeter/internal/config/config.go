// Package config loads the optional ringmeter.yaml graph description.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

// FileName is the config file looked up by LoadOptional.
const FileName = "ringmeter.yaml"

// Defaults applied by Resolve.
const (
	DefaultFPS    = 60
	DefaultWidth  = 320
	DefaultHeight = 320
)

// Config represents ringmeter.yaml.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Surface   SurfaceConfig   `yaml:"surface"`
	Meters    []MeterConfig   `yaml:"meters"`
}

// AnimationConfig contains timing settings.
type AnimationConfig struct {
	// Duration is a Go duration string, e.g. "1.3s".
	Duration string `yaml:"duration,omitempty"`
	FPS      int    `yaml:"fps,omitempty"`
}

// SurfaceConfig contains surface settings.
type SurfaceConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Preset     string `yaml:"preset,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// MeterConfig describes one ring.
type MeterConfig struct {
	Title      string   `yaml:"title"`
	Value      float64  `yaml:"value"`
	Max        float64  `yaml:"max"`
	Colors     []string `yaml:"colors,omitempty"`
	Background string   `yaml:"background,omitempty"`
	Label      string   `yaml:"label,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Duration   time.Duration
	FPS        int
	Width      int
	Height     int
	Preset     ringgraph.DescriptionPreset
	Background graphics.Color
	Graph      *ringgraph.RingGraph
}

// FrameInterval returns the display refresh interval for FPS.
func (r *Resolved) FrameInterval() time.Duration {
	return time.Second / time.Duration(r.FPS)
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads ringmeter.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve validates cfg and fills defaults. A config without meters gets
// the three demo rings.
func Resolve(cfg *Config) (*Resolved, error) {
	r := &Resolved{
		Duration:   ringgraph.DefaultDuration,
		FPS:        cfg.Animation.FPS,
		Width:      cfg.Surface.Width,
		Height:     cfg.Surface.Height,
		Background: graphics.ColorBlack,
	}

	if d := strings.TrimSpace(cfg.Animation.Duration); d != "" {
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return nil, fmt.Errorf("animation.duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("animation.duration must be positive, got %s", d)
		}
		r.Duration = parsed
	}
	if r.FPS == 0 {
		r.FPS = DefaultFPS
	}
	if r.FPS < 0 {
		return nil, fmt.Errorf("animation.fps must be positive, got %d", r.FPS)
	}
	if r.FrameInterval() <= 0 {
		return nil, fmt.Errorf("animation.fps %d is too high: frame interval rounds to zero", r.FPS)
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("surface size must be positive, got %dx%d", r.Width, r.Height)
	}

	preset := cfg.Surface.Preset
	if preset == "" {
		preset = ringgraph.PresetMetersDescription.String()
	}
	p, err := ringgraph.ParsePreset(preset)
	if err != nil {
		return nil, fmt.Errorf("surface.preset: %w", err)
	}
	r.Preset = p

	if cfg.Surface.Background != "" {
		bg, err := graphics.ParseHex(cfg.Surface.Background)
		if err != nil {
			return nil, fmt.Errorf("surface.background: %w", err)
		}
		r.Background = bg
	}

	meters := cfg.Meters
	if len(meters) == 0 {
		meters = DemoMeters()
	}
	graph := ringgraph.NewRingGraph()
	for i, mc := range meters {
		m, err := mc.meter()
		if err != nil {
			return nil, fmt.Errorf("meters[%d]: %w", i, err)
		}
		graph.Meters = append(graph.Meters, m)
	}
	r.Graph = graph

	return r, nil
}

func (mc MeterConfig) meter() (*ringgraph.RingMeter, error) {
	if strings.TrimSpace(mc.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if mc.Max <= 0 {
		return nil, fmt.Errorf("%s: max must be positive", mc.Title)
	}
	m := &ringgraph.RingMeter{Title: mc.Title, Value: mc.Value, Max: mc.Max}
	for _, s := range mc.Colors {
		c, err := graphics.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mc.Title, err)
		}
		m.Colors = append(m.Colors, c)
	}
	if mc.Background != "" {
		c, err := graphics.ParseHex(mc.Background)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mc.Title, err)
		}
		m.BackgroundColor = c
	}
	switch {
	case mc.Label != "":
		c, err := graphics.ParseHex(mc.Label)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mc.Title, err)
		}
		m.DescriptionLabelColor = c
	case len(m.Colors) > 0:
		m.DescriptionLabelColor = m.Colors[0]
	default:
		m.DescriptionLabelColor = graphics.ColorWhite
	}
	return m, nil
}

// DemoMeters returns the default move/exercise/stand rings.
func DemoMeters() []MeterConfig {
	return []MeterConfig{
		{Title: "Move", Value: 300, Max: 400, Colors: []string{"#E2063B", "#FE4B8E"}, Background: "#2E0511"},
		{Title: "Exercise", Value: 20, Max: 30, Colors: []string{"#4CE005", "#B5FF04"}, Background: "#0F2E04"},
		{Title: "Stand", Value: 9, Max: 12, Colors: []string{"#00C7E0", "#5CFFF5"}, Background: "#03282E"},
	}
}
