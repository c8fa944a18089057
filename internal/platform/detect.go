package platform

import (
	"fmt"
	"runtime"
)

// Info describes the host the installer is running on, normalized to the
// os/arch names used in release asset filenames.
type Info struct {
	OS   string
	Arch string
}

// supported lists the os/arch pairs the platform publishes binaries for.
var supported = map[string]bool{
	"linux/amd64":   true,
	"linux/arm64":   true,
	"darwin/amd64":  true,
	"darwin/arm64":  true,
	"windows/amd64": true,
}

// Detect returns the normalized host platform, or an error if the platform
// has no published release. The error is fatal to the install run.
func Detect() (Info, error) {
	info := Info{OS: runtime.GOOS, Arch: runtime.GOARCH}
	if !supported[info.OS+"/"+info.Arch] {
		return Info{}, fmt.Errorf("unsupported platform %s/%s", info.OS, info.Arch)
	}
	return info, nil
}

// String returns the "os/arch" form used in user-facing messages.
func (i Info) String() string {
	return i.OS + "/" + i.Arch
}
