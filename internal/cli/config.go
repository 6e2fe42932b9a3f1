package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional .schemas.yml configuration file. Values set
// here override flag defaults but never flags given explicitly.
type fileConfig struct {
	Docs struct {
		Tool        string `yaml:"tool"`
		Out         string `yaml:"out"`
		ModulesFile string `yaml:"modules_file"`
		Workers     int    `yaml:"workers" validate:"gte=0"`
	} `yaml:"docs"`
	Build struct {
		Out string `yaml:"out"`
	} `yaml:"build"`
	Platforms struct {
		APIURL string `yaml:"api_url" validate:"omitempty,url"`
		Out    string `yaml:"out"`
	} `yaml:"platforms"`
}

// loadConfigFile reads and validates a YAML config file. An empty path
// returns an empty config.
func loadConfigFile(path string) (*fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return &cfg, nil
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// override replaces *dst with value when the config file provides one and
// the flag was not set explicitly.
func override[T comparable](dst *T, value T, flagChanged bool) {
	var zero T
	if flagChanged || value == zero {
		return
	}
	*dst = value
}
