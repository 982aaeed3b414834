package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
)

// LoadOverrides reads a YAML document holding any subset of §3's seven
// recognised planner options. A missing file, whether path was given or
// defaulted, is not an error: it returns nil overrides, and the planner
// runs on plain defaults.
func LoadOverrides(path string) (*mesh.ConfigOverrides, error) {
	if path == "" {
		path = GetDefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overrides mesh.ConfigOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &overrides, nil
}

// GetDefaultConfigPath returns the planner's default config file
// location: the MESHPLAN_CONFIG_PATH environment variable if set,
// otherwise config/planner.yaml under the working directory.
func GetDefaultConfigPath() string {
	if path := os.Getenv("MESHPLAN_CONFIG_PATH"); path != "" {
		return path
	}

	wd, _ := os.Getwd()
	return filepath.Join(wd, "config", "planner.yaml")
}
