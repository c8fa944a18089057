package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// DefaultExt is the compiled-module extension registered by the installers.
const DefaultExt = ".wasm"

// Registrar classifies morph files by name and places them into a
// version-keyed registry tree. It carries no state between Register calls
// beyond the target extension, so one registrar can serve any number of
// independent (source, root) pairs.
type Registrar struct {
	ext string
	re  *regexp.Regexp
}

// Result reports the outcome of one Register pass.
type Result struct {
	// Placed is the number of files copied into the registry.
	Placed int
	// Skipped lists base names that did not parse as morph filenames.
	// These are never written anywhere.
	Skipped []string
}

// New returns a registrar for files with the given extension (e.g. ".wasm").
func New(ext string) *Registrar {
	return &Registrar{ext: ext, re: filenamePattern(ext)}
}

// Parse matches a file base name against the morph filename pattern.
// The match is anchored: the whole name must be <name>-<X>.<Y>.<Z><ext>.
func (r *Registrar) Parse(base string) (Morph, bool) {
	return parseMorph(r.re, base)
}

// Register walks sourceDir recursively and copies every morph file to
// <registryRoot>/<version>/<name><ext>, overwriting prior copies of the same
// (name, version). Files that do not parse are collected in Result.Skipped
// and processing continues. Copy failures are likewise non-fatal per file;
// all are collected and returned joined after the remaining files have been
// attempted, so a re-run after a partial failure converges on the same tree.
//
// A missing sourceDir or an uncreatable registryRoot is fatal.
func (r *Registrar) Register(sourceDir, registryRoot string) (*Result, error) {
	if info, err := os.Stat(sourceDir); err != nil {
		return nil, fmt.Errorf("source directory %s: %w", sourceDir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", sourceDir)
	}

	if err := os.MkdirAll(registryRoot, 0755); err != nil {
		return nil, fmt.Errorf("creating registry root %s: %w", registryRoot, err)
	}

	result := &Result{}
	var copyErrs []error

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		morph, ok := r.Parse(base)
		if !ok {
			result.Skipped = append(result.Skipped, base)
			return nil
		}

		versionDir := filepath.Join(registryRoot, morph.Version)
		if err := os.MkdirAll(versionDir, 0755); err != nil {
			return fmt.Errorf("creating version directory %s: %w", versionDir, err)
		}

		dst := ArtifactPath(registryRoot, morph.Name, morph.Version, r.ext)
		if err := copyFile(path, dst); err != nil {
			copyErrs = append(copyErrs, fmt.Errorf("placing %s: %w", base, err))
			return nil
		}

		result.Placed++
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourceDir, walkErr)
	}

	if len(copyErrs) > 0 {
		return result, errors.Join(copyErrs...)
	}
	return result, nil
}

// copyFile copies src to dst, truncating any existing file at dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
