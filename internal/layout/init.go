package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/hayride-dev/hayrideup/internal/platform"
)

// Permission constants.
const (
	DirPermNormal os.FileMode = 0755
)

// Init creates the full install directory structure. It prints progress
// messages to w. Existing directories are skipped with a message, so Init is
// safe to re-run on upgrade.
func Init(w io.Writer) error {
	root, err := Root()
	if err != nil {
		return err
	}
	if err := ensureDir(w, root, DirPermNormal); err != nil {
		return err
	}

	bin, err := BinDir()
	if err != nil {
		return err
	}
	if err := ensureDir(w, bin, DirPermNormal); err != nil {
		return err
	}

	namespaces, err := Namespaces()
	if err != nil {
		return err
	}
	for _, ns := range namespaces {
		if err := ensureDir(w, ns.Root, DirPermNormal); err != nil {
			return err
		}
	}

	models, err := ModelsDir()
	if err != nil {
		return err
	}
	if err := ensureDir(w, models, DirPermNormal); err != nil {
		return err
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
