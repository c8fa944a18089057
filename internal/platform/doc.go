// Package platform provides host detection and cross-platform filesystem
// operations. Detect reports the normalized OS/architecture pair used to pick
// release assets, rejecting unsupported hosts. Symlink creation and permission
// management use native calls on Unix; on Windows symlinks fall back to file
// copying with a .target sidecar when developer mode is unavailable.
package platform
