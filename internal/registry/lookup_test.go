package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hayride-dev/hayrideup/internal/platform"
)

// seedRegistry registers a few morphs and returns the namespace root.
func seedRegistry(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	root := filepath.Join(tmp, "registry")

	for name, content := range map[string][]byte{
		"server-0.0.1.wasm": []byte("s1"),
		"server-0.0.2.wasm": []byte("s2"),
		"server-0.0.10.wasm": []byte("s10"),
		"cli-0.0.2.wasm":    []byte("c2"),
	} {
		writeFile(t, filepath.Join(src, name), content)
	}

	if _, err := New(".wasm").Register(src, root); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestEntries(t *testing.T) {
	root := seedRegistry(t)

	entries, err := Entries(root)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	// Sorted by name, then semver (0.0.10 after 0.0.2).
	want := []struct{ name, version string }{
		{"cli", "0.0.2"},
		{"server", "0.0.1"},
		{"server", "0.0.2"},
		{"server", "0.0.10"},
	}
	for i, w := range want {
		if entries[i].Name != w.name || entries[i].Version != w.version {
			t.Errorf("entries[%d] = %s@%s, want %s@%s",
				i, entries[i].Name, entries[i].Version, w.name, w.version)
		}
	}
}

func TestEntriesMissingRoot(t *testing.T) {
	entries, err := Entries(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Entries on missing root: %v", err)
	}
	if entries != nil {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestNames(t *testing.T) {
	root := seedRegistry(t)

	names, err := Names(root)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	want := []string{"cli", "server"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestArtifactPath(t *testing.T) {
	root := seedRegistry(t)

	path := ArtifactPath(root, "server", "0.0.2", ".wasm")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("registered artifact missing at %s: %v", path, err)
	}
}

func TestVersions(t *testing.T) {
	root := seedRegistry(t)

	versions, err := Versions(root, "server")
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	want := []string{"0.0.1", "0.0.2", "0.0.10"}
	if len(versions) != len(want) {
		t.Fatalf("got %v, want %v", versions, want)
	}
	for i := range want {
		if versions[i] != want[i] {
			t.Errorf("versions[%d] = %s, want %s", i, versions[i], want[i])
		}
	}
}

func TestLatestVersion(t *testing.T) {
	root := seedRegistry(t)

	latest, err := LatestVersion(root, "server")
	if err != nil {
		t.Fatalf("LatestVersion: %v", err)
	}
	if latest != "0.0.10" {
		t.Errorf("latest = %s, want 0.0.10", latest)
	}

	if _, err := LatestVersion(root, "ghost"); err == nil {
		t.Error("expected error for unregistered morph")
	}
}

func TestUpdateLatestLink(t *testing.T) {
	if runtime.GOOS == "windows" && !platform.IsSymlinkSupported() {
		t.Skip("symlinks unavailable")
	}
	root := seedRegistry(t)

	if err := UpdateLatestLink(root); err != nil {
		t.Fatalf("UpdateLatestLink: %v", err)
	}

	target, err := platform.ReadSymlinkTarget(filepath.Join(root, LatestLink))
	if err != nil {
		t.Fatalf("reading latest link: %v", err)
	}
	if target != "0.0.10" {
		t.Errorf("latest -> %s, want 0.0.10", target)
	}

	// The alias is skipped by Entries, not listed as a version directory.
	entries, err := Entries(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Version == LatestLink {
			t.Errorf("latest alias leaked into entries: %+v", e)
		}
	}
}

func TestUpdateLatestLinkEmptyRoot(t *testing.T) {
	root := t.TempDir()
	if err := UpdateLatestLink(root); err != nil {
		t.Fatalf("UpdateLatestLink on empty root: %v", err)
	}
	if _, err := os.Lstat(filepath.Join(root, LatestLink)); !os.IsNotExist(err) {
		t.Error("latest link should not be created for an empty root")
	}
}
