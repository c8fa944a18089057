package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hayride-dev/hayrideup/internal/layout"
	"github.com/hayride-dev/hayrideup/internal/platform"
	"github.com/hayride-dev/hayrideup/internal/registry"
	"github.com/hayride-dev/hayrideup/internal/runtimeconfig"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the local installation",
	Long:  `Run diagnostic checks on the local platform installation.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failures := 0

		failures += checkLayout(out)
		failures += checkBinary(out)
		failures += checkRuntimeConfig(out)
		failures += checkRegistries(out)

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	},
}

// checkLayout verifies the install directories exist.
func checkLayout(out io.Writer) int {
	root, err := layout.Root()
	if err != nil {
		fmt.Fprintf(out, "✗ home directory: %v\n", err)
		return 1
	}

	if _, err := os.Stat(root); err != nil {
		fmt.Fprintf(out, "✗ %s missing. Run 'hayrideup install'.\n", root)
		return 1
	}
	fmt.Fprintf(out, "✓ %s\n", root)
	return 0
}

// checkBinary verifies the platform binary is installed and reachable on PATH.
func checkBinary(out io.Writer) int {
	binDir, err := layout.BinDir()
	if err != nil {
		fmt.Fprintf(out, "✗ bin directory: %v\n", err)
		return 1
	}

	name := "hayride"
	if runtime.GOOS == "windows" {
		name = "hayride.exe"
	}
	binPath := filepath.Join(binDir, name)

	info, err := os.Stat(binPath)
	if err != nil {
		fmt.Fprintf(out, "✗ platform binary missing at %s\n", binPath)
		return 1
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0111 == 0 {
		fmt.Fprintf(out, "✗ %s is not executable\n", binPath)
		return 1
	}
	fmt.Fprintf(out, "✓ platform binary %s\n", binPath)

	if !onPath(binDir) {
		fmt.Fprintf(out, "⚠ %s is not on PATH. Run 'hayrideup env --apply'.\n", binDir)
	}
	return 0
}

// checkRuntimeConfig validates config.yaml against the embedded schema.
func checkRuntimeConfig(out io.Writer) int {
	configPath, err := layout.ConfigPath()
	if err != nil {
		fmt.Fprintf(out, "✗ config path: %v\n", err)
		return 1
	}

	result, err := runtimeconfig.ValidateFile(configPath)
	if err != nil {
		fmt.Fprintf(out, "✗ runtime config: %v\n", err)
		return 1
	}
	if !result.Valid {
		fmt.Fprintf(out, "✗ runtime config %s is invalid:\n", configPath)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    %s: %s\n", issue.Path, issue.Message)
		}
		return 1
	}
	fmt.Fprintf(out, "✓ runtime config %s\n", configPath)
	return 0
}

// checkRegistries reports how many morphs each namespace holds. An empty
// namespace is a warning, not a failure; the compositions archive subtree is
// optional in older releases.
func checkRegistries(out io.Writer) int {
	namespaces, err := layout.Namespaces()
	if err != nil {
		fmt.Fprintf(out, "✗ registry layout: %v\n", err)
		return 1
	}

	for _, ns := range namespaces {
		entries, err := registry.Entries(ns.Root)
		if err != nil {
			fmt.Fprintf(out, "✗ %s registry: %v\n", ns.Label, err)
			return 1
		}
		if len(entries) == 0 {
			fmt.Fprintf(out, "⚠ %s registry is empty\n", ns.Label)
			continue
		}

		line := fmt.Sprintf("✓ %s registry: %d morphs", ns.Label, len(entries))
		if target, err := platform.ReadSymlinkTarget(filepath.Join(ns.Root, registry.LatestLink)); err == nil {
			line += fmt.Sprintf(" (latest -> %s)", target)
		}
		fmt.Fprintln(out, line)
	}
	return 0
}

// onPath reports whether dir appears in PATH.
func onPath(dir string) bool {
	for _, p := range filepath.SplitList(os.Getenv("PATH")) {
		if strings.TrimRight(p, string(os.PathSeparator)) == strings.TrimRight(dir, string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
