package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 640
	WindowHeight = 640

	// Carousel dimensions
	PlatformRadius = 200
	OrbitRadius    = 175
	HorseWidth     = 30
	HorseHeight    = 10
	HorseCount     = 8

	// Ride parameters
	BaseRevolutionMs = 5000
	MinRevolutions   = 1
	MaxRevolutions   = 4
)

// Easing curve names accepted in the config file.
const (
	EasingLinear  = "linear"
	EasingEaseOut = "ease-out"
)

// Counter display formats.
const (
	CounterFraction  = "fraction"  // "completed/total"
	CounterCompleted = "completed" // completed count only
)

// Config holds the tunable carousel parameters. The zero value is not
// usable; start from Default and override via a YAML file.
type Config struct {
	PlatformRadius   float64 `yaml:"platform_radius"`
	OrbitRadius      float64 `yaml:"orbit_radius"`
	HorseWidth       float64 `yaml:"horse_width"`
	HorseHeight      float64 `yaml:"horse_height"`
	HorseCount       int     `yaml:"horse_count"`
	BaseRevolutionMs int     `yaml:"base_revolution_ms"`
	Easing           string  `yaml:"easing"`
	Counter          string  `yaml:"counter"`
	Music            bool    `yaml:"music"`
}

func Default() Config {
	return Config{
		PlatformRadius:   PlatformRadius,
		OrbitRadius:      OrbitRadius,
		HorseWidth:       HorseWidth,
		HorseHeight:      HorseHeight,
		HorseCount:       HorseCount,
		BaseRevolutionMs: BaseRevolutionMs,
		Easing:           EasingEaseOut,
		Counter:          CounterFraction,
		Music:            true,
	}
}

// Load reads a YAML config file and merges it over the defaults.
// A missing file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	cfg.normalize()
	return cfg, nil
}

// BaseRevolutionDuration returns the time one revolution takes.
func (c Config) BaseRevolutionDuration() time.Duration {
	return time.Duration(c.BaseRevolutionMs) * time.Millisecond
}

// normalize clamps out-of-range values back to their defaults so a bad
// config file cannot produce a degenerate carousel.
func (c *Config) normalize() {
	def := Default()
	if c.PlatformRadius <= 0 {
		c.PlatformRadius = def.PlatformRadius
	}
	if c.OrbitRadius <= 0 || c.OrbitRadius > c.PlatformRadius {
		// Keep the default orbit-to-platform proportion.
		c.OrbitRadius = c.PlatformRadius * OrbitRadius / PlatformRadius
	}
	if c.HorseWidth <= 0 {
		c.HorseWidth = def.HorseWidth
	}
	if c.HorseHeight <= 0 {
		c.HorseHeight = def.HorseHeight
	}
	if c.HorseCount <= 0 {
		c.HorseCount = def.HorseCount
	}
	if c.BaseRevolutionMs <= 0 {
		c.BaseRevolutionMs = def.BaseRevolutionMs
	}
	if c.Easing != EasingLinear && c.Easing != EasingEaseOut {
		c.Easing = def.Easing
	}
	if c.Counter != CounterFraction && c.Counter != CounterCompleted {
		c.Counter = def.Counter
	}
}
