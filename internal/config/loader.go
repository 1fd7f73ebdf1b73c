package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the per-user directory under $HOME holding configs, levels and scores.
const ConfigDir = ".candytiles"

// LoadCandy loads the candy configuration. Values missing from a file keep their
// defaults.
// Search order: customPath -> ~/.candytiles/configs/candy.yaml -> ./configs/candy.yaml -> embedded default
func LoadCandy(customPath string) (CandyConfig, error) {
	cfg := DefaultCandyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("candy.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "candy.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultCandyConfig()
	if err := yaml.Unmarshal(defaultCandyYAML, &embedded); err != nil {
		return DefaultCandyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad decodes path over the defaults. Missing or broken files are skipped.
func tryLoad(path string) (CandyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CandyConfig{}, false
	}
	cfg := DefaultCandyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CandyConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "configs", filename)
}
