package inkwell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the editor's tunables. Start from DefaultConfig and override
// fields, or load a YAML/TOML file with LoadConfig.
type Config struct {
	// ZoomSensitivity converts a wheel delta into a relative zoom change.
	ZoomSensitivity float64 `yaml:"zoomSensitivity" toml:"zoomSensitivity"`
	MinZoom         float64 `yaml:"minZoom" toml:"minZoom"`
	MaxZoom         float64 `yaml:"maxZoom" toml:"maxZoom"`

	// TextHeight is the hit box height of text objects above the baseline.
	TextHeight float64 `yaml:"textHeight" toml:"textHeight"`

	BlinkMillis int `yaml:"blinkMillis" toml:"blinkMillis"`
	FadeMillis  int `yaml:"fadeMillis" toml:"fadeMillis"`

	// DragModifier must be held with the left button to drag an object.
	DragModifier string `yaml:"dragModifier" toml:"dragModifier"`
	// PanModifier turns a left-button press into a pan.
	PanModifier string `yaml:"panModifier" toml:"panModifier"`

	// AllowEmptyCommit lets Enter create text objects from blank buffers.
	AllowEmptyCommit bool `yaml:"allowEmptyCommit" toml:"allowEmptyCommit"`

	GridSpacing float64 `yaml:"gridSpacing" toml:"gridSpacing"`
	Debug       bool    `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ZoomSensitivity: defaultZoomSensitivity,
		MinZoom:         defaultMinZoom,
		MaxZoom:         defaultMaxZoom,
		TextHeight:      defaultTextHeight,
		BlinkMillis:     500,
		FadeMillis:      320,
		DragModifier:    "ctrl",
		PanModifier:     "alt",
		GridSpacing:     40,
	}
}

// Validate checks ranges and modifier names.
func (c Config) Validate() error {
	var errs []error
	if c.ZoomSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("zoomSensitivity must be positive, got %v", c.ZoomSensitivity))
	}
	if c.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("minZoom must be positive, got %v", c.MinZoom))
	}
	if c.MaxZoom < c.MinZoom {
		errs = append(errs, fmt.Errorf("maxZoom %v is below minZoom %v", c.MaxZoom, c.MinZoom))
	}
	if c.TextHeight <= 0 {
		errs = append(errs, fmt.Errorf("textHeight must be positive, got %v", c.TextHeight))
	}
	if c.BlinkMillis <= 0 {
		errs = append(errs, fmt.Errorf("blinkMillis must be positive, got %d", c.BlinkMillis))
	}
	if c.FadeMillis < 0 {
		errs = append(errs, fmt.Errorf("fadeMillis must not be negative, got %d", c.FadeMillis))
	}
	if c.GridSpacing < 0 {
		errs = append(errs, fmt.Errorf("gridSpacing must not be negative, got %v", c.GridSpacing))
	}
	drag, err := ParseModifiers(c.DragModifier)
	if err != nil {
		errs = append(errs, fmt.Errorf("dragModifier: %w", err))
	}
	pan, err := ParseModifiers(c.PanModifier)
	if err != nil {
		errs = append(errs, fmt.Errorf("panModifier: %w", err))
	}
	if err == nil && pan == 0 {
		errs = append(errs, errors.New("panModifier must name at least one key"))
	}
	if drag != 0 && drag == pan {
		errs = append(errs, fmt.Errorf("dragModifier and panModifier are both %q", drag))
	}
	return errors.Join(errs...)
}

// BlinkInterval returns the caret blink period.
func (c Config) BlinkInterval() time.Duration {
	return time.Duration(c.BlinkMillis) * time.Millisecond
}

// FadeDuration returns the fade-in duration for new text.
func (c Config) FadeDuration() time.Duration {
	return time.Duration(c.FadeMillis) * time.Millisecond
}

// ParseConfig decodes data in the given format ("yaml", "yml" or "toml") on
// top of DefaultConfig and validates the result.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &cfg)
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("parse config: unsupported format %q", format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a config file, choosing the format by extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
