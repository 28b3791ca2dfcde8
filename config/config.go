// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: bonsaiterm configuration loading from ~/.config/bonsaiterm/config.json

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Config holds the bonsaiterm terminal configuration.
type Config struct {
	// Shell is the command launched in every new pane. Empty means fall
	// back to $SHELL, then /bin/sh.
	Shell string `json:"shell"`

	// TabBarHeight and MinPaneSize seed the layout tree's equivalent
	// config keys on startup.
	TabBarHeight int `json:"tabBarHeight"`
	MinPaneSize  int `json:"minPaneSize"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Shell:        defaultShell(),
		TabBarHeight: 1,
		MinPaneSize:  4,
	}
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

// Load loads configuration from ~/.config/bonsaiterm/config.json.
// If the file doesn't exist, returns default config.
func Load() (*Config, error) {
	cfg := Default()

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Config: Failed to get user config dir: %v", err)
		return cfg, nil
	}

	configPath := filepath.Join(configDir, "bonsaiterm", "config.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: No config file at %s, using defaults", configPath)
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Shell == "" {
		cfg.Shell = defaultShell()
	}

	log.Printf("Config: Loaded from %s", configPath)
	return cfg, nil
}

// Save saves the configuration to ~/.config/bonsaiterm/config.json.
func (c *Config) Save() error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}

	bonsaitermDir := filepath.Join(configDir, "bonsaiterm")
	if err := os.MkdirAll(bonsaitermDir, 0755); err != nil {
		return err
	}

	configPath := filepath.Join(bonsaitermDir, "config.json")

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return err
	}

	log.Printf("Config: Saved to %s", configPath)
	return nil
}
