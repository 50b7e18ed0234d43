package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
output: /tmp/out
progressEvery: 10
pdf: true
categories:
  - match: sous vide
    label: Sous Vide
`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Output != "/tmp/out" || fc.ProgressEvery != 10 || !fc.PDF {
		t.Errorf("FileConfig = %+v", fc)
	}
	if len(fc.Categories) != 1 || fc.Categories[0].Match != "sous vide" || fc.Categories[0].Label != "Sous Vide" {
		t.Errorf("Categories = %+v", fc.Categories)
	}
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"output":"/tmp/out","progressEvery":5}`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Output != "/tmp/out" || fc.ProgressEvery != 5 {
		t.Errorf("FileConfig = %+v", fc)
	}
}

func TestLoadConfigFileUnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.conf", "output: /tmp/elsewhere\n")
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Output != "/tmp/elsewhere" {
		t.Errorf("Output = %q", fc.Output)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyFileConfig(t *testing.T) {
	fc := FileConfig{Output: "/from/file", ProgressEvery: 25, PDF: true}

	t.Run("fills defaults", func(t *testing.T) {
		cfg := Config{OutputDir: DefaultOutputDir}
		ApplyFileConfig(&cfg, fc)
		if cfg.OutputDir != "/from/file" {
			t.Errorf("OutputDir = %q", cfg.OutputDir)
		}
		if cfg.ProgressEvery != 25 {
			t.Errorf("ProgressEvery = %d", cfg.ProgressEvery)
		}
		if !cfg.EnablePDF {
			t.Error("EnablePDF not applied")
		}
	})

	t.Run("explicit values win", func(t *testing.T) {
		cfg := Config{OutputDir: "/from/flag", ProgressEvery: 7}
		ApplyFileConfig(&cfg, fc)
		if cfg.OutputDir != "/from/flag" {
			t.Errorf("OutputDir = %q", cfg.OutputDir)
		}
		if cfg.ProgressEvery != 7 {
			t.Errorf("ProgressEvery = %d", cfg.ProgressEvery)
		}
	})

	t.Run("category rules become synonyms", func(t *testing.T) {
		cfg := Config{}
		ApplyFileConfig(&cfg, FileConfig{Categories: []struct {
			Match string `yaml:"match" json:"match"`
			Label string `yaml:"label" json:"label"`
		}{{Match: "sous vide", Label: "Sous Vide"}, {Match: "", Label: "dropped"}}})
		if len(cfg.Synonyms) != 1 || cfg.Synonyms[0].Label != "Sous Vide" {
			t.Errorf("Synonyms = %+v", cfg.Synonyms)
		}
	})
}
