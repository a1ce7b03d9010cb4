package interaction

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Radius around a corner, in pixels, within which a touch selects it.
type TouchRadius float64

const (
	TouchRadiusNone   TouchRadius = 0
	TouchRadiusLow    TouchRadius = 10
	TouchRadiusMedium TouchRadius = 20
	TouchRadiusHigh   TouchRadius = 30
)

// Default tolerance on the cross product magnitude for edge hits.
const DefaultLineTouchThreshold = 5000

// ParseTouchRadius accepts a tier name (none, low, medium, high) or a plain
// non-negative number.
func ParseTouchRadius(s string) (TouchRadius, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return TouchRadiusNone, nil
	case "low":
		return TouchRadiusLow, nil
	case "", "medium":
		return TouchRadiusMedium, nil
	case "high":
		return TouchRadiusHigh, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid touch radius %q", s)
	}
	if v < 0 {
		return 0, errors.Errorf("touch radius must not be negative, got %v", v)
	}
	return TouchRadius(v), nil
}

// Config is the file representation of the engine and controller settings.
// Zero bounds and a zero angle range mean the check is disabled.
type Config struct {
	TouchRadius        string  `yaml:"touch_radius" toml:"touch_radius"`
	LineTouchThreshold float64 `yaml:"line_touch_threshold" toml:"line_touch_threshold"`
	MaxWidth           float64 `yaml:"max_width" toml:"max_width"`
	MaxHeight          float64 `yaml:"max_height" toml:"max_height"`
	MinAngle           float64 `yaml:"min_angle" toml:"min_angle"`
	MaxAngle           float64 `yaml:"max_angle" toml:"max_angle"`
	RequireConvex      bool    `yaml:"require_convex" toml:"require_convex"`
	EnforceValidation  bool    `yaml:"enforce_validation" toml:"enforce_validation"`
}

func DefaultConfig() Config {
	return Config{
		TouchRadius:        "medium",
		LineTouchThreshold: DefaultLineTouchThreshold,
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the
// defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &conf)
	case ".toml":
		err = toml.Unmarshal(data, &conf)
	default:
		return conf, errors.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return conf, errors.Wrapf(err, "decode config %s", path)
	}
	return conf, nil
}

// Options converts the config into engine options.
func (c Config) Options() ([]Option, error) {
	radius, err := ParseTouchRadius(c.TouchRadius)
	if err != nil {
		return nil, err
	}
	if c.LineTouchThreshold < 0 {
		return nil, errors.Errorf("line touch threshold must not be negative, got %v", c.LineTouchThreshold)
	}

	opts := []Option{WithTouchRadius(radius)}
	if c.LineTouchThreshold > 0 {
		opts = append(opts, WithLineTouchThreshold(c.LineTouchThreshold))
	}
	if c.MaxWidth > 0 || c.MaxHeight > 0 {
		opts = append(opts, WithValidators(Bounds{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}))
	}
	if c.MinAngle != 0 || c.MaxAngle != 0 {
		if c.MinAngle > c.MaxAngle {
			return nil, errors.Errorf("min angle %v is greater than max angle %v", c.MinAngle, c.MaxAngle)
		}
		opts = append(opts, WithValidators(AngleRange{Min: c.MinAngle, Max: c.MaxAngle}))
	}
	if c.RequireConvex {
		opts = append(opts, WithValidators(Convex{}))
	}
	return opts, nil
}
