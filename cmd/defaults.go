package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the defaults.yaml structure.
// All top-level keys must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
	Gantt    bool   `yaml:"gantt"`
	Quantum  int64  `yaml:"quantum"`  // default quantum for compare
	OtelOut  string `yaml:"otel_out"` // span output file; empty disables export
}

// defaultConfig is used when no --config file is given.
func defaultConfig() Config {
	return Config{
		LogLevel: "error",
		Format:   "text",
	}
}

// loadConfig parses a defaults YAML file on top of defaultConfig.
// Uses strict field checking: typos must cause errors.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading defaults file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing defaults file: %w", err)
	}
	return cfg, nil
}
