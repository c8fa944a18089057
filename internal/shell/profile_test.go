package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectProfileOverride(t *testing.T) {
	t.Setenv("PROFILE", "/tmp/custom-profile")
	t.Setenv("SHELL", "/bin/zsh")

	path, err := DetectProfile("/home/user", "linux")
	if err != nil {
		t.Fatalf("DetectProfile: %v", err)
	}
	if path != "/tmp/custom-profile" {
		t.Errorf("path = %q, want the PROFILE override", path)
	}
}

func TestDetectProfileZsh(t *testing.T) {
	t.Setenv("PROFILE", "")
	t.Setenv("SHELL", "/usr/bin/zsh")

	path, err := DetectProfile("/home/user", "linux")
	if err != nil {
		t.Fatalf("DetectProfile: %v", err)
	}
	if path != "/home/user/.zshrc" {
		t.Errorf("path = %q, want /home/user/.zshrc", path)
	}
}

func TestDetectProfileBashPerOS(t *testing.T) {
	t.Setenv("PROFILE", "")
	t.Setenv("SHELL", "/bin/bash")
	home := t.TempDir()

	// No candidate exists: linux guesses .bashrc, darwin .bash_profile.
	path, err := DetectProfile(home, "linux")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(home, ".bashrc") {
		t.Errorf("linux guess = %q, want .bashrc", path)
	}

	path, err = DetectProfile(home, "darwin")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(home, ".bash_profile") {
		t.Errorf("darwin guess = %q, want .bash_profile", path)
	}
}

func TestDetectProfilePrefersExisting(t *testing.T) {
	t.Setenv("PROFILE", "")
	t.Setenv("SHELL", "/bin/bash")
	home := t.TempDir()

	// Only .bash_profile exists on linux; it wins over the .bashrc guess.
	existing := filepath.Join(home, ".bash_profile")
	if err := os.WriteFile(existing, nil, 0644); err != nil {
		t.Fatal(err)
	}

	path, err := DetectProfile(home, "linux")
	if err != nil {
		t.Fatal(err)
	}
	if path != existing {
		t.Errorf("path = %q, want existing %q", path, existing)
	}
}

func TestDetectProfileFish(t *testing.T) {
	t.Setenv("PROFILE", "")
	t.Setenv("SHELL", "/usr/bin/fish")

	path, err := DetectProfile("/home/user", "linux")
	if err != nil {
		t.Fatalf("DetectProfile: %v", err)
	}
	want := filepath.Join("/home/user", ".config", "fish", "config.fish")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestDetectProfileUnknownShell(t *testing.T) {
	t.Setenv("PROFILE", "")
	t.Setenv("SHELL", "/usr/local/bin/xonsh")

	if _, err := DetectProfile("/home/user", "linux"); err == nil {
		t.Error("expected error for unrecognized shell")
	}
}

func TestApplyAppendsBlock(t *testing.T) {
	home := t.TempDir()
	profile := filepath.Join(home, ".zshrc")
	if err := os.WriteFile(profile, []byte("# existing content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	modified, err := Apply(profile, "/home/user/.hayride")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !modified {
		t.Error("expected first Apply to modify the profile")
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# existing content\n") {
		t.Error("existing content was clobbered")
	}
	if !strings.Contains(content, Sentinel) {
		t.Error("sentinel missing from appended block")
	}
	if !strings.Contains(content, `HAYRIDE_HOME="/home/user/.hayride"`) {
		t.Errorf("env var export missing:\n%s", content)
	}
	if !strings.Contains(content, `$HAYRIDE_HOME/bin:$PATH`) {
		t.Errorf("PATH export missing:\n%s", content)
	}
}

func TestApplyIdempotent(t *testing.T) {
	home := t.TempDir()
	profile := filepath.Join(home, ".zshrc")

	if _, err := Apply(profile, "/root/.hayride"); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}

	modified, err := Apply(profile, "/root/.hayride")
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if modified {
		t.Error("second Apply reported a modification")
	}

	second, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("profile changed on second Apply")
	}
}

func TestApplyFishUsesFishSyntax(t *testing.T) {
	home := t.TempDir()
	profile := filepath.Join(home, ".config", "fish", "config.fish")

	modified, err := Apply(profile, "/home/user/.hayride")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !modified {
		t.Error("expected Apply to create and modify config.fish")
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, `set -gx HAYRIDE_HOME "/home/user/.hayride"`) {
		t.Errorf("fish set -gx line missing:\n%s", content)
	}
	if !strings.Contains(content, `fish_add_path "$HAYRIDE_HOME/bin"`) {
		t.Errorf("fish_add_path line missing:\n%s", content)
	}
	if strings.Contains(content, "export ") {
		t.Errorf("POSIX export leaked into config.fish:\n%s", content)
	}

	// The sentinel guard applies to fish profiles too.
	modified, err = Apply(profile, "/home/user/.hayride")
	if err != nil {
		t.Fatal(err)
	}
	if modified {
		t.Error("second Apply modified config.fish")
	}
}

func TestApplyCreatesMissingProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".profile")

	modified, err := Apply(profile, "/root/.hayride")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !modified {
		t.Error("expected Apply to create and modify the profile")
	}
	if _, err := os.Stat(profile); err != nil {
		t.Errorf("profile not created: %v", err)
	}
}

func TestManualInstructionsContainBlock(t *testing.T) {
	text := ManualInstructions("/root/.hayride")
	if !strings.Contains(text, Sentinel) || !strings.Contains(text, "PATH") {
		t.Errorf("instructions incomplete:\n%s", text)
	}
}
