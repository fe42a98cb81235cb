// Package config provides configuration loading and access for the morph tools.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calab/torusmorph/morph"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all lattice, field and morph configuration parameters.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Lattice LatticeConfig `yaml:"lattice"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Field   FieldConfig   `yaml:"field"`
	Morph   MorphConfig   `yaml:"morph"`
	Output  OutputConfig  `yaml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// LatticeConfig holds sheet sampling parameters.
type LatticeConfig struct {
	Rings       int     `yaml:"rings"`        // Mesh subdivisions per torus winding
	RotationDeg float64 `yaml:"rotation_deg"` // Field sampling rotation in degrees
}

// MeshConfig holds triangulation parameters.
type MeshConfig struct {
	LimitFactor float64 `yaml:"limit_factor"` // Edge limit as a multiple of the lattice spacing
	Tolerance   float64 `yaml:"tolerance"`    // Slack added to the edge limit
}

// FieldConfig holds grid-cell firing field parameters.
type FieldConfig struct {
	Sigma  float64 `yaml:"sigma"`   // Gaussian bump width
	PhaseX float64 `yaml:"phase_x"` // Field offset in sheet coordinates
	PhaseY float64 `yaml:"phase_y"`
}

// MorphConfig holds morph pipeline parameters.
type MorphConfig struct {
	Height      float64 `yaml:"height"`       // Cylinder height (0 = 2*pi*major_radius)
	MajorRadius float64 `yaml:"major_radius"` // Torus ring radius
	Shrink      float64 `yaml:"shrink"`       // Tube shrink factor at full bend
	Anchor      string  `yaml:"anchor"`       // Bend anchor: center, bottom or top
}

// OutputConfig holds artifact output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Base directory for run outputs (empty disables writes)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SideLimit   float64        // Longest allowed triangle edge in sheet units
	RotationRad float64        // Lattice.RotationDeg in radians
	LogLevel    slog.Level     // Parsed Logging.Level
	Anchor      morph.Anchor   // Parsed Morph.Anchor
	Pipeline    morph.Pipeline // Morph stages assembled from the morph section
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects parameter values the pipeline cannot work with.
func (c *Config) validate() error {
	if c.Lattice.Rings < 1 {
		return fmt.Errorf("lattice: rings must be at least 1, got %d", c.Lattice.Rings)
	}
	if c.Mesh.LimitFactor <= 0 {
		return fmt.Errorf("mesh: limit_factor must be positive, got %v", c.Mesh.LimitFactor)
	}
	if c.Mesh.Tolerance < 0 {
		return fmt.Errorf("mesh: tolerance must not be negative, got %v", c.Mesh.Tolerance)
	}
	if c.Field.Sigma <= 0 {
		return fmt.Errorf("field: sigma must be positive, got %v", c.Field.Sigma)
	}
	if c.Morph.Height < 0 {
		return fmt.Errorf("morph: height must not be negative, got %v", c.Morph.Height)
	}
	if c.Morph.MajorRadius <= 0 {
		return fmt.Errorf("morph: major_radius must be positive, got %v", c.Morph.MajorRadius)
	}
	if c.Morph.Shrink < 1 {
		return fmt.Errorf("morph: shrink must be at least 1, got %v", c.Morph.Shrink)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	// The mesh spacing is 1/rings in sheet units; the limit factor
	// scales it into the longest edge the triangulation keeps.
	c.Derived.SideLimit = c.Mesh.LimitFactor / float64(c.Lattice.Rings)
	c.Derived.RotationRad = c.Lattice.RotationDeg * math.Pi / 180

	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return err
	}
	c.Derived.LogLevel = level

	anchor, err := morph.ParseAnchor(c.Morph.Anchor)
	if err != nil {
		return fmt.Errorf("morph: %w", err)
	}
	c.Derived.Anchor = anchor

	// Cylinder height defaults to the torus circumference so the
	// twisted cylinder closes into the torus without stretching.
	height := c.Morph.Height
	if height == 0 {
		height = 2 * math.Pi * c.Morph.MajorRadius
	}
	c.Derived.Pipeline = morph.Pipeline{
		Height: height,
		Bend: morph.TorusBend{
			MajorRadius: c.Morph.MajorRadius,
			Shrink:      c.Morph.Shrink,
			Anchor:      anchor,
		},
	}
	return nil
}

// parseLevel maps a config log level name to a slog level.
func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", name)
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
