package platform

import (
	"runtime"
	"testing"
)

func TestDetectCurrentHost(t *testing.T) {
	// CI and developer machines are always on a supported platform.
	info, err := Detect()
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{OS: "linux", Arch: "arm64"}
	if got := info.String(); got != "linux/arm64" {
		t.Errorf("String() = %q, want linux/arm64", got)
	}
}
