package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the CLI flag table for optional YAML pre-loading via
// --config. Fields left zero in the file simply don't override whatever
// the flag's own default already is; flags the user passes explicitly on
// the command line always win (see applyConfigDefaults in main.go).
type fileConfig struct {
	Points         int     `yaml:"points"`
	Log            int     `yaml:"log"`
	MaxConcurrency int     `yaml:"max_concurrency"`
	Tiles          []int   `yaml:"tiles"`
	Range          float64 `yaml:"range"`
	Serialize      string  `yaml:"serialize"`
	VRT            string  `yaml:"vrt"`
	PLY            string  `yaml:"ply"`
	GeoJSON        string  `yaml:"cgal"`
	PVTU           string  `yaml:"pvtu"`
	Memory         int     `yaml:"memory"`
	Dimension      int     `yaml:"dimension"`
	Check          bool    `yaml:"check"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
