// Package config provides YAML-based configuration loading for Click Dash.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickdash/internal/core"
	"github.com/vovakirdan/clickdash/internal/game"
)

// Config is the complete Click Dash configuration.
type Config struct {
	Seed     int64          `yaml:"seed"`
	Round    RoundConfig    `yaml:"round"`
	Player   PlayerConfig   `yaml:"player"`
	Terminal TerminalConfig `yaml:"terminal"`
	Desktop  DesktopConfig  `yaml:"desktop"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// RoundConfig defines the countdown.
type RoundConfig struct {
	Seconds      int           `yaml:"seconds"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// PlayerConfig defines the end-of-round name entry.
type PlayerConfig struct {
	DefaultName string `yaml:"default_name"` // Pre-filled entry text
}

// Dimensions is a width/height pair in host units.
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Size converts to core.Size.
func (d Dimensions) Size() core.Size {
	return core.Size{W: d.Width, H: d.Height}
}

// Placement defines target geometry for one host.
type Placement struct {
	Margin   int        `yaml:"margin"`
	Target   Dimensions `yaml:"target"`
	Fallback Dimensions `yaml:"fallback"`
}

// TerminalConfig is the Bubble Tea host's layout, in character cells.
type TerminalConfig struct {
	Placement `yaml:",inline"`
	LogFile   string `yaml:"log_file"`
}

// DesktopConfig is the window host's layout, in pixels.
type DesktopConfig struct {
	Placement    `yaml:",inline"`
	Window       Dimensions `yaml:"window"`
	HeaderHeight int        `yaml:"header_height"`
	Padding      int        `yaml:"padding"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.clickdash/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Session builds the game rules for a host with the given placement.
func (c Config) Session(p Placement) game.Config {
	return game.Config{
		RoundSeconds: c.Round.Seconds,
		TickInterval: c.Round.TickInterval,
		Target:       p.Target.Size(),
		Margin:       p.Margin,
		Fallback:     p.Fallback.Size(),
		Seed:         c.Seed,
	}
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	if c.Round.Seconds <= 0 {
		return fmt.Errorf("config: round.seconds must be positive, got %d", c.Round.Seconds)
	}
	if c.Round.TickInterval <= 0 {
		return fmt.Errorf("config: round.tick_interval must be positive, got %s", c.Round.TickInterval)
	}
	if err := c.Terminal.Placement.validate("terminal"); err != nil {
		return err
	}
	if err := c.Desktop.Placement.validate("desktop"); err != nil {
		return err
	}
	if c.Desktop.Window.Width <= 0 || c.Desktop.Window.Height <= 0 {
		return fmt.Errorf("config: desktop.window must be positive, got %dx%d",
			c.Desktop.Window.Width, c.Desktop.Window.Height)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (p Placement) validate(section string) error {
	if p.Target.Width <= 0 || p.Target.Height <= 0 {
		return fmt.Errorf("config: %s.target must be positive, got %dx%d",
			section, p.Target.Width, p.Target.Height)
	}
	if p.Margin < 0 {
		return fmt.Errorf("config: %s.margin must not be negative, got %d", section, p.Margin)
	}
	if !p.Fallback.Size().Known() {
		return fmt.Errorf("config: %s.fallback must be larger than 1x1, got %dx%d",
			section, p.Fallback.Width, p.Fallback.Height)
	}
	return nil
}
