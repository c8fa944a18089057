package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hayride-dev/hayrideup/internal/branding"
)

// Sentinel marks the env block in a profile file. Its presence makes Apply a
// no-op, so repeated installs never stack duplicate blocks.
const Sentinel = "# hayride shell setup"

// DetectProfile returns the profile file to patch for the user's interactive
// shell. The PROFILE environment variable overrides detection entirely.
// An unrecognized or empty $SHELL is an error; callers degrade to printing
// manual instructions.
func DetectProfile(home, goos string) (string, error) {
	if override := os.Getenv("PROFILE"); override != "" {
		return override, nil
	}

	shellName := filepath.Base(os.Getenv("SHELL"))
	candidates, err := profileCandidates(shellName, home, goos)
	if err != nil {
		return "", err
	}

	// Prefer an existing file; otherwise guess the first candidate.
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return candidates[0], nil
}

// profileCandidates returns the fixed candidate list per shell. Bash login
// shells on macOS read .bash_profile, not .bashrc.
func profileCandidates(shellName, home, goos string) ([]string, error) {
	switch shellName {
	case "zsh":
		return []string{filepath.Join(home, ".zshrc")}, nil
	case "bash":
		if goos == "darwin" {
			return []string{
				filepath.Join(home, ".bash_profile"),
				filepath.Join(home, ".bashrc"),
			}, nil
		}
		return []string{
			filepath.Join(home, ".bashrc"),
			filepath.Join(home, ".bash_profile"),
		}, nil
	case "fish":
		return []string{filepath.Join(home, ".config", "fish", "config.fish")}, nil
	case "sh", "dash", "ksh":
		return []string{filepath.Join(home, ".profile")}, nil
	default:
		return nil, fmt.Errorf("unrecognized shell %q", shellName)
	}
}

// EnvBlock returns the POSIX-shell lines appended to the profile, pointing
// the shell at the install under root.
func EnvBlock(root string) string {
	envVar := branding.EnvVar("HOME")
	return fmt.Sprintf(`
%s
export %s=%q
export PATH="$%s/bin:$PATH"
`, Sentinel, envVar, root, envVar)
}

// fishEnvBlock is the fish-syntax equivalent of EnvBlock. Fish has no export
// keyword and manages PATH through fish_add_path.
func fishEnvBlock(root string) string {
	envVar := branding.EnvVar("HOME")
	return fmt.Sprintf(`
%s
set -gx %s %q
fish_add_path "$%s/bin"
`, Sentinel, envVar, root, envVar)
}

// blockFor picks the env block syntax from the profile filename.
func blockFor(profilePath, root string) string {
	if strings.HasSuffix(profilePath, ".fish") {
		return fishEnvBlock(root)
	}
	return EnvBlock(root)
}

// Apply appends the env block to profilePath unless the sentinel is already
// present. Returns true if the file was modified. The profile file is created
// if it does not exist, along with its parent directory (fish keeps its
// config under ~/.config/fish/).
func Apply(profilePath, root string) (bool, error) {
	existing, err := os.ReadFile(profilePath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading profile %s: %w", profilePath, err)
	}
	if strings.Contains(string(existing), Sentinel) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(profilePath), 0755); err != nil {
		return false, fmt.Errorf("creating profile directory: %w", err)
	}
	f, err := os.OpenFile(profilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("opening profile %s: %w", profilePath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(blockFor(profilePath, root)); err != nil {
		return false, fmt.Errorf("appending to profile %s: %w", profilePath, err)
	}
	return true, nil
}

// ManualInstructions returns the text printed when no profile could be
// detected, so the user can finish setup by hand.
func ManualInstructions(root string) string {
	return fmt.Sprintf(
		"Could not detect your shell profile. Add the following to it manually:\n%s",
		EnvBlock(root))
}
