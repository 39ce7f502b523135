package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration of the watch.
type Config struct {
	SettingsPath  string        `env:"HANDWRITTEN_SETTINGS"  envDefault:"handwritten.yaml"`
	SPIBus        string        `env:"HANDWRITTEN_SPI"`
	DCPin         string        `env:"HANDWRITTEN_DC"        envDefault:"GPIO25"`
	RSTPin        string        `env:"HANDWRITTEN_RST"`
	Width         int           `env:"HANDWRITTEN_WIDTH"     envDefault:"256"`
	Height        int           `env:"HANDWRITTEN_HEIGHT"    envDefault:"64"`
	Rotated       bool          `env:"HANDWRITTEN_ROTATED"`
	Contrast      uint8         `env:"HANDWRITTEN_CONTRAST"  envDefault:"255"`
	FontPath      string        `env:"HANDWRITTEN_FONT"`
	FontSize      float64       `env:"HANDWRITTEN_FONT_SIZE" envDefault:"14"`
	FrameInterval time.Duration `env:"HANDWRITTEN_FRAME"     envDefault:"33ms"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FrameInterval <= 0 {
		return Config{}, errors.New("parse env: HANDWRITTEN_FRAME must be positive")
	}
	return cfg, nil
}
