package app

import (
	"errors"
	"fmt"

	"strife/internal/layers"
	"strife/internal/logging"
	"strife/internal/platform"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Title     string
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	Resizable bool

	// Headless replays no input and stops after Frames ticks (0 = until closed).
	Headless bool
	Frames   int

	LogLevel string
	LogFile  string
	Color    bool

	// Propagation is "all" or "stop", see layers.Propagation.
	Propagation string
	RawEvents   bool
	ShowStats   bool
}

func DefaultConfig() Config {
	return Config{
		Title:       "Strife",
		Width:       1280,
		Height:      800,
		MinWidth:    900,
		MinHeight:   560,
		Resizable:   true,
		Frames:      0,
		LogLevel:    "info",
		LogFile:     "output.log",
		Color:       true,
		Propagation: "all",
		RawEvents:   true,
		ShowStats:   true,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("%w: negative minimum size", ErrInvalidConfig)
	}
	if c.MinWidth > c.Width || c.MinHeight > c.Height {
		return fmt.Errorf("%w: window size %dx%d below minimum %dx%d",
			ErrInvalidConfig, c.Width, c.Height, c.MinWidth, c.MinHeight)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative", ErrInvalidConfig)
	}
	if _, ok := layers.ParsePropagation(c.Propagation); !ok {
		return fmt.Errorf("%w: propagation %q (want all or stop)", ErrInvalidConfig, c.Propagation)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) WindowConfig() platform.WindowConfig {
	return platform.WindowConfig{
		Title:       c.Title,
		WidthPx:     c.Width,
		HeightPx:    c.Height,
		MinWidthPx:  c.MinWidth,
		MinHeightPx: c.MinHeight,
		Resizable:   c.Resizable,
	}
}

func (c Config) propagation() layers.Propagation {
	p, _ := layers.ParsePropagation(c.Propagation)
	return p
}
