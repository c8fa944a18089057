package registry

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Morph identifies a registered artifact by name and semantic version.
type Morph struct {
	Name    string
	Version string
}

// filenamePattern builds the anchored pattern for morph filenames carrying
// the given extension: <name>-<major>.<minor>.<patch><ext>, where name is
// alphanumerics, underscore, or hyphen. The version is always the last
// dash-separated component before the extension.
func filenamePattern(ext string) *regexp.Regexp {
	return regexp.MustCompile(`^([A-Za-z0-9_-]+)-([0-9]+\.[0-9]+\.[0-9]+)` + regexp.QuoteMeta(ext) + `$`)
}

// parseMorph matches base against re and validates the captured version as
// semver. Returns false for anything that is not a well-formed morph filename.
func parseMorph(re *regexp.Regexp, base string) (Morph, bool) {
	m := re.FindStringSubmatch(base)
	if m == nil {
		return Morph{}, false
	}
	if _, err := semver.StrictNewVersion(m[2]); err != nil {
		return Morph{}, false
	}
	return Morph{Name: m[1], Version: m[2]}, true
}

// String returns the canonical "name@version" form.
func (m Morph) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}
