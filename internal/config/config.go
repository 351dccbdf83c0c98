// Package config loads the optional .webspectra.yaml file. Settings
// from the file become flag defaults; explicit flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the file-configurable defaults.
type Config struct {
	BaseURL    string `yaml:"base_url,omitempty"`
	OutputFile string `yaml:"output_file,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	Title      string `yaml:"title,omitempty"`
	TimeoutSec int    `yaml:"timeout_seconds,omitempty"`
}

// Defaults used when the file is absent or silent on a field.
const (
	DefaultTheme      = "default"
	DefaultTitle      = "Example"
	DefaultTimeoutSec = 30
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:      DefaultTheme,
		Title:      DefaultTitle,
		TimeoutSec: DefaultTimeoutSec,
	}
}

// Load reads .webspectra.yaml from the working directory or the user
// config directory and merges it over the defaults. A malformed file
// warns to stderr and falls back to defaults rather than failing the
// run.
func Load() *Config {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "webspectra: warning: reading config %s: %v\n", path, err)
		}
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "webspectra: warning: parsing config %s: %v\n", path, err)
		return cfg
	}

	if fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.OutputFile != "" {
		cfg.OutputFile = fileCfg.OutputFile
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	if fileCfg.Title != "" {
		cfg.Title = fileCfg.Title
	}
	if fileCfg.TimeoutSec > 0 {
		cfg.TimeoutSec = fileCfg.TimeoutSec
	}
	return cfg
}

// configPath finds the configuration file: local directory first, then
// the XDG user config dir.
func configPath() string {
	local := ".webspectra.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdg := filepath.Join(configHome, "webspectra", "config.yaml")
	if _, err := os.Stat(xdg); err == nil {
		return xdg
	}
	return ""
}
