// Package config loads the application configuration from config.yaml in
// the data directory. A missing file yields the defaults, not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WindowDefaults sizes the primary window on first launch, before any
// saved geometry exists.
type WindowDefaults struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// Bridge configures the optional MCP agent bridge.
type Bridge struct {
	Enabled   bool   `yaml:"enabled"`
	Transport string `yaml:"transport"` // "stdio" or "streamable-http"
	Port      int    `yaml:"port"`
}

// Config is the full application configuration.
type Config struct {
	AppName     string         `yaml:"app_name"`
	DataDir     string         `yaml:"data_dir"`
	FrontendURL string         `yaml:"frontend_url"`
	Window      WindowDefaults `yaml:"window"`
	Bridge      Bridge         `yaml:"bridge"`
}

// Default returns the configuration used when no config.yaml exists.
func Default() *Config {
	return &Config{
		AppName:     "MSN Messenger",
		FrontendURL: "/",
		Window: WindowDefaults{
			Width:     1200,
			Height:    800,
			MinWidth:  800,
			MinHeight: 600,
		},
		Bridge: Bridge{
			Enabled:   false,
			Transport: "streamable-http",
			Port:      8765,
		},
	}
}

// DefaultDataDir returns the platform config directory for bootleg-msn.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "bootleg-msn")
}

// Load reads config.yaml from dataDir, filling in defaults for anything
// unset. A missing file returns the defaults.
func Load(dataDir string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = dataDir

	data, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults backfills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.AppName == "" {
		cfg.AppName = def.AppName
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = def.FrontendURL
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = def.Window.Width
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = def.Window.Height
	}
	if cfg.Window.MinWidth <= 0 {
		cfg.Window.MinWidth = def.Window.MinWidth
	}
	if cfg.Window.MinHeight <= 0 {
		cfg.Window.MinHeight = def.Window.MinHeight
	}
	if cfg.Bridge.Transport == "" {
		cfg.Bridge.Transport = def.Bridge.Transport
	}
	if cfg.Bridge.Port <= 0 {
		cfg.Bridge.Port = def.Bridge.Port
	}
}
