package runtimeconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSubstitutesVersionAndRoot(t *testing.T) {
	c := Default("v0.0.6-alpha", "/home/user/.hayride")

	if c.Version != "v0.0.6-alpha" {
		t.Errorf("Version = %q", c.Version)
	}
	if c.Registry.Morphs != "/home/user/.hayride/registry/morphs" {
		t.Errorf("Registry.Morphs = %q", c.Registry.Morphs)
	}
	if c.Registry.Compositions != "/home/user/.hayride/registry/compositions" {
		t.Errorf("Registry.Compositions = %q", c.Registry.Compositions)
	}
	if c.AI.Models != "/home/user/.hayride/ai/models" {
		t.Errorf("AI.Models = %q", c.AI.Models)
	}
	if c.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", c.Logging.Level)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	c := Default("v0.0.6-alpha", tmp)
	if err := c.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if *got != *c {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	if err := os.WriteFile(path, []byte("version: v0.0.1\nstale: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := Default("v0.0.2", tmp)
	if err := c.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != "v0.0.2" {
		t.Errorf("Version = %q, want v0.0.2 (prior file should be replaced)", got.Version)
	}
}
