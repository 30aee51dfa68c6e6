package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	RestartEvery        int           `json:"restart_every" yaml:"restart_every"` // 0 disables periodic restarts
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	InjectionCount      int           `json:"injection_count" yaml:"injection_count"`
	Seed                int64         `json:"seed" yaml:"seed"` // 0 seeds from the clock
	Interactive         bool          `json:"interactive" yaml:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		RestartEvery:        200,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Interactive:         false,
	}
}

// Validate checks the config for values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative grid size %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density %v outside [0,1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0 || c.RestartEvery < 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] counts must not be negative")
	}
	return nil
}

// UnmarshalJSON accepts frame_rate either as a duration string ("150ms"),
// matching the YAML form, or as integer nanoseconds
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		FrameRate json.RawMessage `json:"frame_rate"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.FrameRate) == 0 || string(aux.FrameRate) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(aux.FrameRate, &text); err == nil {
		d, err := time.ParseDuration(text)
		if err != nil {
			return errors.Wrapf(err, "[UnmarshalJSON] frame_rate %q", text)
		}
		c.FrameRate = d
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(aux.FrameRate, &nanos); err != nil {
		return errors.Wrapf(err, "[UnmarshalJSON] frame_rate must be a duration string or nanoseconds, got %s", aux.FrameRate)
	}
	c.FrameRate = time.Duration(nanos)
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, picked by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}

	return config, nil
}
