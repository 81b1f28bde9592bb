package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/latticecrypto/mldsa"
)

// Config is the CLI's optional YAML config file, letting the default
// level be set once instead of repeated on every invocation.
type Config struct {
	// Level is the default security level: 2, 3, or 5.
	Level int `yaml:"level"`

	// KATDir is parsed from the config file's katDir key. No command
	// reads it: the kat command takes its .rsp file as an argument.
	KATDir string `yaml:"katDir"`
}

// levelFromInt maps a config/flag integer (2, 3, 5) onto mldsa.Level.
func levelFromInt(n int) (mldsa.Level, error) {
	switch n {
	case 2:
		return mldsa.L2, nil
	case 3:
		return mldsa.L3, nil
	case 5:
		return mldsa.L5, nil
	default:
		return 0, errors.Errorf("unsupported level %d (want 2, 3, or 5)", n)
	}
}

// loadConfig reads and parses a YAML config file. A missing path is
// not an error: the caller falls back to flag defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{Level: 3}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	cfg := &Config{Level: 3}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	return cfg, nil
}
