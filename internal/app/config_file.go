package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/notefold/paprika2notes/internal/normalize"
)

// FileConfig is the optional configuration file schema. It supplies defaults
// for values not set on the command line, plus category synonym rules that
// extend the built-in table.
type FileConfig struct {
	Output        string `yaml:"output" json:"output"`
	ProgressEvery int    `yaml:"progressEvery" json:"progressEvery"`
	PDF           bool   `yaml:"pdf" json:"pdf"`

	// Categories is an ordered list; rules are consulted after the built-in
	// synonym table, first match wins.
	Categories []struct {
		Match string `yaml:"match" json:"match"`
		Label string `yaml:"label" json:"label"`
	} `yaml:"categories" json:"categories"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their defaults. Flags should already have been parsed; explicit
// flag values win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == DefaultOutputDir) && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.ProgressEvery == 0 && fc.ProgressEvery > 0 {
		cfg.ProgressEvery = fc.ProgressEvery
	}
	if !cfg.EnablePDF && fc.PDF {
		cfg.EnablePDF = true
	}
	if len(cfg.Synonyms) == 0 && len(fc.Categories) > 0 {
		rules := make([]normalize.SynonymRule, 0, len(fc.Categories))
		for _, c := range fc.Categories {
			if c.Match == "" || c.Label == "" {
				continue
			}
			rules = append(rules, normalize.SynonymRule{Match: c.Match, Label: c.Label})
		}
		cfg.Synonyms = rules
	}
}
