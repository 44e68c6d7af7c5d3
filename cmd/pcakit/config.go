package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// reduceConfig mirrors the 'pcakit reduce' flags. A YAML file passed via
// --config seeds the defaults; flags set on the command line still win.
type reduceConfig struct {
	Ratings    string  `yaml:"ratings"`
	Movies     string  `yaml:"movies"`
	Components int     `yaml:"components"`
	Threshold  float64 `yaml:"threshold"`
	Missing    string  `yaml:"missing"`
	MinRatings int     `yaml:"min_ratings"`
	Output     string  `yaml:"output"`
	Scree      string  `yaml:"scree"`
}

func loadReduceConfig(path string) (*reduceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg reduceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}
