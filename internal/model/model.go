// Package model fetches the optional large model artifact into the local
// model store. The default model can be overridden through installer config;
// an already-present file is never re-downloaded.
package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hayride-dev/hayrideup/internal/release"
)

// Default model artifact offered during a full install.
const (
	DefaultName = "Llama-3.2-3B-Instruct-Q4_K_M.gguf"
	DefaultURL  = "https://huggingface.co/bartowski/Llama-3.2-3B-Instruct-GGUF/resolve/main/Llama-3.2-3B-Instruct-Q4_K_M.gguf"
)

// Spec names a model artifact and where to fetch it from.
type Spec struct {
	Name string
	URL  string
}

// Resolve fills in defaults for unset name/url overrides.
func Resolve(name, url string) Spec {
	s := Spec{Name: name, URL: url}
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.URL == "" {
		s.URL = DefaultURL
	}
	return s
}

// Fetch downloads the model into modelsDir unless it is already present.
// Returns the local path and whether a download happened.
func (s Spec) Fetch(c *release.Client, modelsDir string) (string, bool, error) {
	dest := filepath.Join(modelsDir, s.Name)
	if _, err := os.Stat(dest); err == nil {
		return dest, false, nil
	}

	if err := os.MkdirAll(modelsDir, 0755); err != nil {
		return "", false, fmt.Errorf("creating model store %s: %w", modelsDir, err)
	}

	asset := &release.Asset{Name: s.Name, DownloadURL: s.URL}
	path, err := c.DownloadAsset(asset, modelsDir)
	if err != nil {
		return "", false, fmt.Errorf("fetching model %s: %w", s.Name, err)
	}
	return path, true, nil
}
