package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/hayride-dev/hayrideup/internal/platform"
)

// LatestLink is the name of the per-namespace alias pointing at the newest
// version directory.
const LatestLink = "latest"

// Entry describes one registered morph file.
type Entry struct {
	Name    string
	Version string
	Path    string
}

// Entries lists every morph registered under root, across all version
// directories. A missing root yields an empty list, not an error.
func Entries(root string) ([]Entry, error) {
	dirs, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry root %s: %w", root, err)
	}

	var entries []Entry
	for _, d := range dirs {
		if !d.IsDir() || d.Name() == LatestLink {
			continue
		}
		if _, err := semver.StrictNewVersion(d.Name()); err != nil {
			continue
		}

		files, err := os.ReadDir(filepath.Join(root, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading version directory %s: %w", d.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
			entries = append(entries, Entry{
				Name:    name,
				Version: d.Name(),
				Path:    filepath.Join(root, d.Name(), f.Name()),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return semver.MustParse(entries[i].Version).LessThan(semver.MustParse(entries[j].Version))
	})
	return entries, nil
}

// Names returns the distinct morph names registered under root, sorted.
func Names(root string) ([]string, error) {
	entries, err := Entries(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if len(names) == 0 || names[len(names)-1] != e.Name {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

// ArtifactPath returns where a (name, version) artifact lives under root.
func ArtifactPath(root, name, version, ext string) string {
	return filepath.Join(root, version, name+ext)
}

// Versions returns the semver-sorted versions under which name is registered.
func Versions(root, name string) ([]string, error) {
	entries, err := Entries(root)
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, e := range entries {
		if e.Name == name {
			versions = append(versions, e.Version)
		}
	}
	return versions, nil
}

// LatestVersion returns the newest registered version of name.
func LatestVersion(root, name string) (string, error) {
	versions, err := Versions(root, name)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("morph %q is not registered under %s", name, root)
	}
	return versions[len(versions)-1], nil
}

// UpdateLatestLink points <root>/latest at the newest version directory
// present under root. The link target is relative so the registry can be
// relocated wholesale. A root with no version directories is a no-op.
func UpdateLatestLink(root string) error {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading registry root %s: %w", root, err)
	}

	var newest *semver.Version
	for _, d := range dirs {
		if !d.IsDir() || d.Name() == LatestLink {
			continue
		}
		v, err := semver.StrictNewVersion(d.Name())
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	if newest == nil {
		return nil
	}

	return platform.ReplaceSymlink(newest.Original(), filepath.Join(root, LatestLink))
}
