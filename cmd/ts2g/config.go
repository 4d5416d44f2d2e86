package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds interpreter settings read from the optional YML file.
type Config struct {
	LogLevel string `yaml:"log-level,omitempty"`
	Timing   bool   `yaml:"timing,omitempty"`
}

// loadConfig reads the configuration file, if one was given.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %s", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %s", path, err)
	}

	return cfg, nil
}
