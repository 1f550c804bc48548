package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

// fileConfig is the optional YAML configuration.  Command line flags
// override it.
type fileConfig struct {
	Scale         int               `yaml:"scale"`
	TPS           int               `yaml:"tps"`
	FPS           bool              `yaml:"fps"`
	DisplayMode   string            `yaml:"displayMode"`
	TextureFormat string            `yaml:"textureFormat"`
	Keys          map[string]string `yaml:"keys"`
	Headless      headlessConfig    `yaml:"headless"`
}

type headlessConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Frames     uint64   `yaml:"frames"`
	Hold       []string `yaml:"hold"`
	Screenshot string   `yaml:"screenshot"`
}

func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// parseKeys parses keypad key names separated by commas or '|'.
func parseKeys(names ...string) (keypad.Key, error) {
	var keys keypad.Key
	var errs []error
	for _, s := range names {
		for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
			k, ok := keypad.ParseKey(strings.TrimSpace(name))
			if !ok {
				errs = append(errs, fmt.Errorf("unknown key %q", name))
				continue
			}
			keys |= k
		}
	}
	return keys, errors.Join(errs...)
}
