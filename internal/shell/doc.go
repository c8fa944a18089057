// Package shell appends the platform's PATH/environment block to the user's
// shell profile. It detects the interactive shell from $SHELL, picks the
// profile file from a small per-shell candidate list (honoring a $PROFILE
// override), and appends the block only when its sentinel line is not already
// present. Detection failure is non-fatal; callers fall back to printing
// manual instructions.
package shell
