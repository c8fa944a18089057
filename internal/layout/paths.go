package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hayride-dev/hayrideup/internal/branding"
)

// Directory and file name constants for the install layout.
const (
	BinDirName          = "bin"
	RegistryDirName     = "registry"
	MorphsDirName       = "morphs"
	CoreNamespace       = "core"
	HayrideNamespace    = "hayride"
	CompositionsDirName = "compositions"
	ModelsDirName       = "models"
	AIDirName           = "ai"
	ConfigFileName      = "config.yaml"
)

// Root returns the platform home directory. It checks the HAYRIDE_HOME
// environment variable first, then falls back to ~/.hayride.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// BinDir returns the path to the bin/ directory holding the platform binary.
func BinDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, BinDirName), nil
}

// CoreRegistry returns the registry root for core morphs.
func CoreRegistry() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, RegistryDirName, MorphsDirName, CoreNamespace), nil
}

// HayrideRegistry returns the registry root for hayride morphs.
func HayrideRegistry() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, RegistryDirName, MorphsDirName, HayrideNamespace), nil
}

// CompositionsRegistry returns the registry root for compositions.
func CompositionsRegistry() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, RegistryDirName, CompositionsDirName), nil
}

// ModelsDir returns the path to the local model store.
func ModelsDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AIDirName, ModelsDirName), nil
}

// ConfigPath returns the path to the platform's runtime config file.
func ConfigPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ConfigFileName), nil
}

// Namespaces maps namespace labels to their registry roots, in the order the
// installer populates them from the extracted core archive.
func Namespaces() ([]Namespace, error) {
	core, err := CoreRegistry()
	if err != nil {
		return nil, err
	}
	hayride, err := HayrideRegistry()
	if err != nil {
		return nil, err
	}
	compositions, err := CompositionsRegistry()
	if err != nil {
		return nil, err
	}
	return []Namespace{
		{Label: CoreNamespace, Subtree: CoreNamespace, Root: core},
		{Label: HayrideNamespace, Subtree: HayrideNamespace, Root: hayride},
		{Label: CompositionsDirName, Subtree: CompositionsDirName, Root: compositions},
	}, nil
}

// Namespace pairs an extracted archive subtree with its registry root.
type Namespace struct {
	// Label identifies the namespace in user-facing output.
	Label string
	// Subtree is the directory name inside the extracted core archive.
	Subtree string
	// Root is the registry root the subtree's morphs are placed under.
	Root string
}
