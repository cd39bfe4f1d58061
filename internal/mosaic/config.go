package mosaic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/huemosaic/huemosaic/internal/colour"
)

// Config holds every knob the build pipeline accepts. It is validated
// once up front and passed by value; the pipeline keeps no other state.
type Config struct {
	// Clusters is k for dominant-colour clustering (1-16).
	Clusters int

	// Thresholds are the colourful/monochrome classification cut-offs.
	Thresholds colour.Thresholds

	// AspectRatio is the target output width:height ratio.
	AspectRatio float64

	// CellWidth and CellHeight are the pixel dimensions every cover is
	// resized to before placement.
	CellWidth  int
	CellHeight int

	// Background fills cells left empty by a partially filled grid.
	Background colour.RGB

	// MonochromeFirst places the monochrome block before the colourful
	// block instead of after it.
	MonochromeFirst bool

	// OutputPath is where the finished mosaic is written. The extension
	// selects the encoder (.png, .jpg, .jpeg).
	OutputPath string
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		Clusters:    colour.DefaultClusters,
		Thresholds:  colour.DefaultThresholds(),
		AspectRatio: 1.0,
		CellWidth:   300,
		CellHeight:  300,
		Background:  colour.RGB{R: 16, G: 16, B: 16},
		OutputPath:  "mosaic.png",
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Clusters < 1 || c.Clusters > 16 {
		return fmt.Errorf("clusters must be between 1 and 16, got %d", c.Clusters)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.CellWidth < 8 || c.CellHeight < 8 {
		return fmt.Errorf("cell size must be at least 8x8, got %dx%d", c.CellWidth, c.CellHeight)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	return nil
}

// fileConfig mirrors Config for YAML loading. Pointer fields distinguish
// "absent" from zero values so a file can override any subset of keys.
type fileConfig struct {
	Clusters        *int               `yaml:"clusters"`
	Thresholds      *colour.Thresholds `yaml:"thresholds"`
	AspectRatio     *float64           `yaml:"aspect_ratio"`
	CellWidth       *int               `yaml:"cell_width"`
	CellHeight      *int               `yaml:"cell_height"`
	Background      *string            `yaml:"background"`
	MonochromeFirst *bool              `yaml:"monochrome_first"`
	OutputPath      *string            `yaml:"output"`
}

// LoadFile overlays settings from a YAML config file onto c. Keys absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified config path
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Clusters != nil {
		c.Clusters = *fc.Clusters
	}
	if fc.Thresholds != nil {
		c.Thresholds = *fc.Thresholds
	}
	if fc.AspectRatio != nil {
		c.AspectRatio = *fc.AspectRatio
	}
	if fc.CellWidth != nil {
		c.CellWidth = *fc.CellWidth
	}
	if fc.CellHeight != nil {
		c.CellHeight = *fc.CellHeight
	}
	if fc.Background != nil {
		rgb, err := colour.ParseHex(*fc.Background)
		if err != nil {
			return fmt.Errorf("invalid background in config file: %w", err)
		}
		c.Background = rgb
	}
	if fc.MonochromeFirst != nil {
		c.MonochromeFirst = *fc.MonochromeFirst
	}
	if fc.OutputPath != nil {
		c.OutputPath = *fc.OutputPath
	}
	return nil
}
