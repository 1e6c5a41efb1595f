package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all moodlens configuration.
type Config struct {
	OutputDir string `toml:"output_dir"`

	Classifier ClassifierConfig `toml:"classifier"`
	Topics     TopicsConfig     `toml:"topics"`
	Cache      CacheConfig      `toml:"cache"`
	Export     ExportConfig     `toml:"export"`
}

// ClassifierConfig configures the external sentiment/emotion classifier.
type ClassifierConfig struct {
	Enabled        bool   `toml:"enabled"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Model          string `toml:"model"`
	APIKeyEnv      string `toml:"api_key_env"`
	BaseURL        string `toml:"base_url"` // empty = provider default
	BatchSize      int    `toml:"batch_size"`
}

// TopicsConfig configures the external topic-modeling collaborator.
type TopicsConfig struct {
	Enabled      bool   `toml:"enabled"`
	MinTopicSize int    `toml:"min_topic_size"`
	Model        string `toml:"model"`
}

// CacheConfig configures the classification label cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ExportConfig configures CSV export behavior.
type ExportConfig struct {
	Compress bool `toml:"compress"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir: "~/moodlens",
		Classifier: ClassifierConfig{
			Enabled:        true,
			TimeoutSeconds: 60,
			Model:          "gpt-4o-mini",
			APIKeyEnv:      "OPENAI_API_KEY",
			BatchSize:      20,
		},
		Topics: TopicsConfig{
			Enabled:      true,
			MinTopicSize: 5,
			Model:        "gpt-4o-mini",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "~/.cache/moodlens/labels.db",
		},
		Export: ExportConfig{
			Compress: false,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	// Expand ~ in paths
	cfg.OutputDir = expandHome(cfg.OutputDir)
	cfg.Cache.Path = expandHome(cfg.Cache.Path)

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "moodlens", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "moodlens", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
