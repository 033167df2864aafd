package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLegend loads the tuning configuration.
// Search order: customPath -> ~/.legend/configs/legend.yaml -> ./configs/legend.yaml -> embedded default
func LoadLegend(customPath string) (LegendConfig, string, error) {
	cfg := DefaultLegendConfig()

	source, err := loadYAML(customPath, "legend.yaml", defaultLegendYAML, &cfg)
	if err != nil {
		return cfg, source, err
	}
	if source == "" {
		return DefaultLegendConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, source, nil
}

// LoadWorld loads and validates the level data.
// Search order: customPath -> ~/.legend/configs/world.yaml -> ./configs/world.yaml -> embedded default
func LoadWorld(customPath string) (WorldData, string, error) {
	var w WorldData

	source, err := loadYAML(customPath, "world.yaml", defaultWorldYAML, &w)
	if err != nil {
		return w, source, err
	}
	if source == "" {
		return w, source, fmt.Errorf("config: %w: embedded level data is unreadable", ErrInvalidWorld)
	}
	if err := w.Validate(); err != nil {
		return w, source, fmt.Errorf("config: %s: %w", source, err)
	}
	return w, source, nil
}

// loadYAML decodes the first readable source into out and returns its name.
// Fields missing from a file keep the values already in out. A custom path
// that cannot be read or parsed is an error; the other locations are skipped
// silently. An empty source means even the embedded default failed.
func loadYAML(customPath, filename string, embedded []byte, out any) (string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return path, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return "", nil
	}
	return "embedded", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".legend", "configs", filename)
}
