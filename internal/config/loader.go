package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkyhop loads Sky Hop configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadSkyhop(customPath string) (SkyhopConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkyhopConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSkyhop(data)
		if err != nil {
			return DefaultSkyhopConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSkyhopConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skyhop.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "skyhop.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseSkyhop(defaultSkyhopYAML)
	if err != nil {
		return DefaultSkyhopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid files are skipped.
func tryLoad(path string) (SkyhopConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SkyhopConfig{}, false
	}
	cfg, err := parseSkyhop(data)
	if err != nil || cfg.Validate() != nil {
		return SkyhopConfig{}, false
	}
	return cfg, true
}

// parseSkyhop decodes YAML on top of the built-in defaults.
func parseSkyhop(data []byte) (SkyhopConfig, error) {
	cfg := DefaultSkyhopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}
