package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/san-kum/fourier/internal/fourier"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPoints     = fourier.DefaultPoints
	DefaultTerms      = fourier.DefaultTerms
	DefaultMode       = string(fourier.ModeNotebook)
	DefaultDataDir    = ".fourier"
	DefaultPlotHeight = 12
	DefaultPlotWidth  = 80
	DefaultMaxIndex   = 4
	DefaultNodes      = 64
)

type Config struct {
	Points int         `yaml:"points" toml:"points"`
	Terms  int         `yaml:"terms" toml:"terms"`
	Mode   string      `yaml:"mode" toml:"mode"`
	Plot   PlotConfig  `yaml:"plot" toml:"plot"`
	Check  CheckConfig `yaml:"check" toml:"check"`
}

type PlotConfig struct {
	Height int    `yaml:"height" toml:"height"`
	Width  int    `yaml:"width" toml:"width"`
	SVG    string `yaml:"svg" toml:"svg"`
}

// CheckConfig controls the numeric cross-check of the orthogonality proofs.
// MaxIndex 0 disables it.
type CheckConfig struct {
	MaxIndex int `yaml:"max_index" toml:"max_index"`
	Nodes    int `yaml:"nodes" toml:"nodes"`
}

func DefaultConfig() *Config {
	return &Config{
		Points: DefaultPoints,
		Terms:  DefaultTerms,
		Mode:   DefaultMode,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
		Check: CheckConfig{
			MaxIndex: DefaultMaxIndex,
			Nodes:    DefaultNodes,
		},
	}
}

// Load reads a YAML or TOML file (chosen by extension) over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isTOML(path) {
		return toml.NewEncoder(f).Encode(cfg)
	}
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Validate() error {
	if err := c.Pipeline().Validate(); err != nil {
		return err
	}
	if c.Plot.Height < 0 || c.Plot.Width < 0 {
		return fmt.Errorf("%w: plot size %dx%d", fourier.ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	if c.Check.MaxIndex < 0 || c.Check.MaxIndex > 0 && c.Check.Nodes < 1 {
		return fmt.Errorf("%w: check max index %d, nodes %d", fourier.ErrInvalidConfig, c.Check.MaxIndex, c.Check.Nodes)
	}
	return nil
}

// Pipeline returns the settings consumed by fourier.Run.
func (c *Config) Pipeline() fourier.Config {
	return fourier.Config{
		Points: c.Points,
		Terms:  c.Terms,
		Mode:   fourier.Mode(c.Mode),
	}
}
