// Package config loads stoplist build settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/happyhackingspace/stoplist"
)

// Config mirrors the build options plus corpus loading settings.
type Config struct {
	Language          string   `yaml:"language"`
	Basis             string   `yaml:"basis"`
	Size              int      `yaml:"size"`
	SortWords         bool     `yaml:"sortWords"`
	Lower             bool     `yaml:"lower"`
	RemovePunctuation bool     `yaml:"removePunctuation"`
	RemoveNumbers     bool     `yaml:"removeNumbers"`
	FoldDiacritics    bool     `yaml:"foldDiacritics"`
	Stem              bool     `yaml:"stem"`
	Include           []string `yaml:"include"`
	Exclude           []string `yaml:"exclude"`
	Strip             []string `yaml:"strip"`
}

// Default returns the configuration matching stoplist.DefaultOptions.
func Default() Config {
	opts := stoplist.DefaultOptions()
	return Config{
		Language:          "latin",
		Basis:             string(opts.Basis),
		Size:              opts.Size,
		SortWords:         opts.SortWords,
		Lower:             opts.Lower,
		RemovePunctuation: opts.RemovePunctuation,
		RemoveNumbers:     opts.RemoveNumbers,
	}
}

// Load reads a YAML config file over the defaults; keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the configuration to build options.
func (c Config) Options() stoplist.Options {
	return stoplist.Options{
		Basis:             stoplist.Basis(c.Basis),
		Size:              c.Size,
		SortWords:         c.SortWords,
		Lower:             c.Lower,
		RemovePunctuation: c.RemovePunctuation,
		RemoveNumbers:     c.RemoveNumbers,
		FoldDiacritics:    c.FoldDiacritics,
		Stem:              c.Stem,
		Include:           c.Include,
		Exclude:           c.Exclude,
	}
}
