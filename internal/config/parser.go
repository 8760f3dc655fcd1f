package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	jivaerrors "github.com/alexisbeaulieu97/jiva/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

//go:embed showcase.yaml
var defaultShowcase []byte

// DefaultPath names the built-in showcase in errors.
const DefaultPath = "<built-in showcase>"

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, jivaerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data, applies defaults and validates the result. path only
// labels errors.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, jivaerrors.NewParseError(path, extractLine(err), err)
	}

	cfg.ApplyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in showcase configuration.
func Default() *Config {
	cfg, err := Parse(DefaultPath, defaultShowcase)
	if err != nil {
		panic(fmt.Sprintf("built-in showcase is invalid: %v", err))
	}
	return cfg
}

// Load reads path, or returns the built-in showcase when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
