package platform

import (
	"fmt"
	"os"
	"runtime"
)

// ReplaceSymlink atomically repoints link at target by removing any existing
// link first. Relative targets are resolved against the link's directory,
// which keeps registry "latest" aliases portable across moves of the root.
func ReplaceSymlink(target, link string) error {
	if runtime.GOOS == "windows" && !IsSymlinkSupported() {
		return fmt.Errorf("symlinks are not available (enable developer mode)")
	}

	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("removing existing link %s: %w", link, err)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("creating symlink %s -> %s: %w", link, target, err)
	}
	return nil
}

// ReadSymlinkTarget returns the target of a symlink.
func ReadSymlinkTarget(link string) (string, error) {
	return os.Readlink(link)
}

// IsSymlinkSupported reports whether the host can create symlinks. Always
// true on Unix; on Windows it depends on developer mode, checked by creating
// a throwaway link in the temp directory.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir := os.TempDir()
	link := tmpDir + string(os.PathSeparator) + ".hayride-symlink-test"
	defer os.Remove(link)

	return os.Symlink(tmpDir, link) == nil
}
