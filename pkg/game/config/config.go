// Package config persists user preferences: window size, preferred
// backend, last zoom level, locale and key bindings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appDirName = "worldmap"
	fileName   = "config.yaml"
)

// Config holds the persisted preferences.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Renderer     string `yaml:"renderer"`
	ZoomLevel    string `yaml:"zoom_level"`
	Locale       string `yaml:"locale"`

	// Bindings maps action names (as printed by input.ActionName) to the
	// single key code the user rebound them to.
	Bindings map[string]string `yaml:"bindings,omitempty"`

	path string
}

// Default returns the preferences used when no config file exists yet.
func Default() *Config {
	return &Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		Renderer:     "ebiten",
		ZoomLevel:    "Zone",
		Locale:       "en",
	}
}

var (
	current     *Config
	currentOnce sync.Once
)

// Current returns the process-wide preferences, loading them from disk on
// first use. Load failures fall back to defaults; the map must come up
// even with a corrupt config file.
func Current() *Config {
	currentOnce.Do(func() {
		path, err := defaultPath()
		if err != nil {
			current = Default()
			return
		}
		cfg, err := Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load preferences: %v\n", err)
			cfg = Default()
			cfg.path = path
		}
		current = cfg
	})
	return current
}

// Load reads preferences from the given path. A missing file yields the
// defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the preferences back to the path they were loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := defaultPath()
		if err != nil {
			return err
		}
		c.path = path
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// SetZoomLevel records the zoom level and persists immediately, so the
// next session comes up where the player left off.
func (c *Config) SetZoomLevel(name string) error {
	c.ZoomLevel = name
	return c.Save()
}

// SetWindowSize records the window dimensions and persists immediately.
func (c *Config) SetWindowSize(width, height int) error {
	c.WindowWidth = width
	c.WindowHeight = height
	return c.Save()
}

func defaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName, fileName), nil
}
