// Package config loads the analysis configuration: stoplist, model
// identifier, endpoint overrides, and worker count.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/henrybloomingdale/pubmed-topics/internal/hf"
	"github.com/henrybloomingdale/pubmed-topics/internal/ncbi"
	"github.com/henrybloomingdale/pubmed-topics/internal/topics"
)

// Config holds the tunables a run needs. Zero values fall back to defaults,
// so a partial YAML file only overrides what it names.
type Config struct {
	Stoplist      []string `yaml:"stoplist"`
	Model         string   `yaml:"model"`
	HFBaseURL     string   `yaml:"hf_base_url"`
	EutilsBaseURL string   `yaml:"eutils_base_url"`
	Workers       int      `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Stoplist:      topics.DefaultStopTerms,
		Model:         hf.DefaultModel,
		HFBaseURL:     hf.DefaultBaseURL,
		EutilsBaseURL: ncbi.DefaultBaseURL,
		Workers:       1,
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if len(file.Stoplist) > 0 {
		cfg.Stoplist = file.Stoplist
	}
	if file.Model != "" {
		cfg.Model = file.Model
	}
	if file.HFBaseURL != "" {
		cfg.HFBaseURL = file.HFBaseURL
	}
	if file.EutilsBaseURL != "" {
		cfg.EutilsBaseURL = file.EutilsBaseURL
	}
	if file.Workers > 0 {
		cfg.Workers = file.Workers
	}

	return cfg, nil
}
