// Package config loads the TTY front end's INI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"hancore/pkg/layout"
)

// Config drives the interactive front end. Flags override file values.
type Config struct {
	Layout   string
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Layout: "dubeolsik", LogLevel: "info"}
}

// Load reads an INI file of the form
//
//	[input]
//	layout = dubeolsik
//	[log]
//	level = info
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.Layout = file.Section("input").Key("layout").MustString(cfg.Layout)
	cfg.LogLevel = file.Section("log").Key("level").MustString(cfg.LogLevel)
	if !knownLayout(cfg.Layout) {
		return cfg, fmt.Errorf("unknown layout %q in %s", cfg.Layout, path)
	}
	return cfg, nil
}

// Resolve loads cliPath when given, otherwise hancore.ini in the working
// directory when present, otherwise the defaults.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(cwd, "hancore.ini")
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), nil
	}
	return Load(path)
}

func knownLayout(name string) bool {
	for _, known := range layout.Names() {
		if known == name {
			return true
		}
	}
	return false
}
