package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != "~/moodlens" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if !cfg.Classifier.Enabled {
		t.Error("Classifier.Enabled should default to true")
	}
	if cfg.Classifier.TimeoutSeconds != 60 {
		t.Errorf("Classifier.TimeoutSeconds = %d", cfg.Classifier.TimeoutSeconds)
	}
	if cfg.Classifier.Model != "gpt-4o-mini" {
		t.Errorf("Classifier.Model = %q", cfg.Classifier.Model)
	}
	if cfg.Classifier.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("Classifier.APIKeyEnv = %q", cfg.Classifier.APIKeyEnv)
	}
	if cfg.Classifier.BatchSize != 20 {
		t.Errorf("Classifier.BatchSize = %d", cfg.Classifier.BatchSize)
	}
	if cfg.Topics.MinTopicSize != 5 {
		t.Errorf("Topics.MinTopicSize = %d", cfg.Topics.MinTopicSize)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should default to true")
	}
	if cfg.Export.Compress {
		t.Error("Export.Compress should default to false")
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Should have expanded defaults (paths no longer start with ~/)
	if strings.HasPrefix(cfg.OutputDir, "~/") {
		t.Errorf("OutputDir not expanded: %q", cfg.OutputDir)
	}
	if strings.HasPrefix(cfg.Cache.Path, "~/") {
		t.Errorf("Cache.Path not expanded: %q", cfg.Cache.Path)
	}
	if !strings.HasSuffix(cfg.OutputDir, "moodlens") {
		t.Errorf("OutputDir = %q, want suffix moodlens", cfg.OutputDir)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "moodlens")
	os.MkdirAll(configDir, 0o755)

	tomlContent := `output_dir = "/custom/out"

[classifier]
enabled = false
timeout_seconds = 30
model = "gpt-4o"

[topics]
min_topic_size = 8

[cache]
path = "/custom/labels.db"

[export]
compress = true
`
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(tomlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputDir != "/custom/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Classifier.Enabled {
		t.Error("Classifier.Enabled should be false from file")
	}
	if cfg.Classifier.TimeoutSeconds != 30 {
		t.Errorf("Classifier.TimeoutSeconds = %d", cfg.Classifier.TimeoutSeconds)
	}
	if cfg.Classifier.Model != "gpt-4o" {
		t.Errorf("Classifier.Model = %q", cfg.Classifier.Model)
	}
	if cfg.Topics.MinTopicSize != 8 {
		t.Errorf("Topics.MinTopicSize = %d", cfg.Topics.MinTopicSize)
	}
	if cfg.Cache.Path != "/custom/labels.db" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
	if !cfg.Export.Compress {
		t.Error("Export.Compress should be true from file")
	}

	// Unset fields keep defaults.
	if cfg.Classifier.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnv = %q, want default", cfg.Classifier.APIKeyEnv)
	}
	if cfg.Classifier.BatchSize != 20 {
		t.Errorf("BatchSize = %d, want default", cfg.Classifier.BatchSize)
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "moodlens")
	os.MkdirAll(configDir, 0o755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("output_dir = [broken"), 0o644)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}
