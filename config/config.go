// Package config loads the kiosk configuration file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/goldenmunch/attract/logging"
	"github.com/goldenmunch/attract/parameter"
)

type Config struct {
	Profile     string `toml:"profile"`
	Locale      string `toml:"locale"`
	ExitRoute   string `toml:"exit_route"`
	ScoreScript string `toml:"score_script"` // Lua file defining points(size); empty uses the formula
	Hint        string `toml:"hint"`
	Seed        int64  `toml:"seed"` // 0 seeds from the clock

	Logging  logging.Config `toml:"logging"`
	Audio    AudioConfig    `toml:"audio"`
	Terminal TerminalConfig `toml:"terminal"`
	Window   WindowConfig   `toml:"window"`

	// Tuning overrides individual tunables after the profile is applied
	Tuning toml.Primitive `toml:"tuning"`

	meta toml.MetaData
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

type TerminalConfig struct {
	FrameRate  int  `toml:"frame_rate"`
	StatusLine bool `toml:"status_line"`
	Mouse      bool `toml:"mouse"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults
func Parse(doc string) (*Config, error) {
	cfg := defaults()
	if err := cfg.decode(doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decode(doc string) error {
	meta, err := toml.Decode(doc, c)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		for _, k := range undecoded {
			// Tuning keys are decoded later against the profile
			if len(k) > 0 && k[0] == "tuning" {
				continue
			}
			return fmt.Errorf("unknown key %q", k.String())
		}
	}
	c.meta = meta
	return nil
}

// ResolveTuning returns the configured profile with [tuning] overrides applied
func (c *Config) ResolveTuning(profiles *parameter.Profiles) (parameter.Tuning, error) {
	t, err := profiles.Get(c.Profile)
	if err != nil {
		return parameter.Tuning{}, err
	}
	if c.meta.IsDefined("tuning") {
		if err := c.meta.PrimitiveDecode(c.Tuning, &t); err != nil {
			return parameter.Tuning{}, fmt.Errorf("decode tuning overrides: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return parameter.Tuning{}, err
	}
	return t, nil
}

func defaults() *Config {
	return &Config{
		Profile:   parameter.DefaultProfile,
		Locale:    "en",
		ExitRoute: "/",
		Hint:      "Touch anywhere to order",
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 48000,
		},
		Terminal: TerminalConfig{
			FrameRate:  60,
			StatusLine: true,
			Mouse:      true,
		},
		Window: WindowConfig{
			Title:  "Golden Munch",
			Width:  1280,
			Height: 800,
		},
	}
}
