package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the moodlens config directory path.
// Uses $XDG_CONFIG_HOME/moodlens if set, otherwise ~/.config/moodlens.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "moodlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "moodlens")
}

// WriteDefault writes a default config.toml pointing to outputDir.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault(outputDir string) (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	portablePath := CompressHome(outputDir)

	content := fmt.Sprintf(`output_dir = %q

[classifier]
enabled = true
timeout_seconds = 60
model = "gpt-4o-mini"
api_key_env = "OPENAI_API_KEY"
base_url = ""
batch_size = 20

[topics]
enabled = true
min_topic_size = 5
model = "gpt-4o-mini"

[cache]
enabled = true
path = "~/.cache/moodlens/labels.db"

[export]
compress = false
`, portablePath)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

// CompressHome replaces $HOME prefix with ~/ for portable config values.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
