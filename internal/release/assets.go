package release

import (
	"fmt"
	"strings"

	"github.com/hayride-dev/hayrideup/internal/platform"
)

// CoreAssetName is the platform-independent core modules archive attached to
// every release. Its contents (core/, hayride/, compositions/ subtrees) feed
// the registry namespaces.
const CoreAssetName = "hayride-core.tar.gz"

// BinaryArchiveName returns the expected binary archive filename for the
// given host, following the release naming convention
// hayride_{os}_{arch}.tar.gz (or .zip on Windows).
func BinaryArchiveName(host platform.Info) string {
	ext := ".tar.gz"
	if host.OS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("hayride_%s_%s%s", host.OS, host.Arch, ext)
}

// SelectBinaryAsset finds the binary archive matching the host platform.
func SelectBinaryAsset(assets []Asset, host platform.Info) (*Asset, error) {
	expected := BinaryArchiveName(host)
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	// Flexible fallback: accept any archive carrying the os_arch pair.
	pattern := fmt.Sprintf("%s_%s", host.OS, host.Arch)
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && isArchive(assets[i].Name) {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no asset found for %s (expected %s)", host, expected)
}

// SelectCoreAsset finds the core modules archive in the release.
func SelectCoreAsset(assets []Asset) (*Asset, error) {
	for i := range assets {
		if assets[i].Name == CoreAssetName {
			return &assets[i], nil
		}
	}
	return nil, fmt.Errorf("core modules archive %s not found in release assets", CoreAssetName)
}

func isArchive(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".zip")
}
