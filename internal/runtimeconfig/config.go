package runtimeconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Config is the platform's runtime configuration document. The structure is
// fixed; the installer only substitutes the version and the home-derived
// paths.
type Config struct {
	Version  string   `yaml:"version"`
	Registry Registry `yaml:"registry"`
	AI       AI       `yaml:"ai"`
	Logging  Logging  `yaml:"logging"`
}

// Registry points the runtime at the local morph registry namespaces.
type Registry struct {
	Morphs       string `yaml:"morphs"`
	Compositions string `yaml:"compositions"`
}

// AI configures the local model store.
type AI struct {
	Models string `yaml:"models"`
}

// Logging configures runtime log output.
type Logging struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

// Default returns the document written by a fresh install of the given
// version into the given home root.
func Default(version, root string) *Config {
	return &Config{
		Version: version,
		Registry: Registry{
			Morphs:       filepath.Join(root, "registry", "morphs"),
			Compositions: filepath.Join(root, "registry", "compositions"),
		},
		AI: AI{
			Models: filepath.Join(root, "ai", "models"),
		},
		Logging: Logging{
			Level:  "info",
			Output: "stdout",
		},
	}
}

// WriteFile marshals the config and writes it to path, overwriting any prior
// file (last install wins).
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling runtime config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing runtime config %s: %w", path, err)
	}
	return nil
}

// ReadFile parses the runtime config at path.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading runtime config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing runtime config %s: %w", path, err)
	}
	return &c, nil
}
