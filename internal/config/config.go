package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. SKETCHPAD_PORT.
const Prefix = "sketchpad"

type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	Demo           string        `envconfig:"DEMO" default:"line"`
	FrameWidth     float64       `envconfig:"FRAME_WIDTH" default:"800"`
	FrameHeight    float64       `envconfig:"FRAME_HEIGHT" default:"600"`
	TickInterval   time.Duration `envconfig:"TICK_INTERVAL" default:"10ms"`
	RotationStep   float64       `envconfig:"ROTATION_STEP" default:"0.25"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins string        `envconfig:"ALLOWED_ORIGINS" default:"localhost:5173,localhost:3000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("frame size must be positive, got %gx%g", c.FrameWidth, c.FrameHeight)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c *Config) Origins() []string {
	var out []string
	for o := range strings.SplitSeq(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
