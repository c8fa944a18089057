package cli

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hayride-dev/hayrideup/internal/branding"
	"github.com/hayride-dev/hayrideup/internal/config"
	"github.com/hayride-dev/hayrideup/internal/layout"
	"github.com/hayride-dev/hayrideup/internal/model"
	"github.com/hayride-dev/hayrideup/internal/platform"
	"github.com/hayride-dev/hayrideup/internal/registry"
	"github.com/hayride-dev/hayrideup/internal/release"
	"github.com/hayride-dev/hayrideup/internal/runtimeconfig"
	"github.com/hayride-dev/hayrideup/internal/shell"
	"github.com/spf13/cobra"
)

var (
	installVersion   string
	installYes       bool
	installSkipModel bool
	installSkipShell bool
)

func init() {
	installCmd.Flags().StringVar(&installVersion, "version", "", "Install a specific release (e.g., 0.0.6-alpha)")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompts")
	installCmd.Flags().BoolVar(&installSkipModel, "skip-model", false, "Do not offer the model artifact download")
	installCmd.Flags().BoolVar(&installSkipShell, "skip-shell", false, "Do not modify the shell profile")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the platform binary, core morphs, and registry layout",
	Long: `Install the ` + branding.DisplayName() + ` platform.

Creates the ~/.hayride layout, resolves the latest release (or --version),
downloads the binary archive for this machine and the core modules archive,
registers every morph into the version-keyed registry, writes the runtime
config, optionally fetches the default model, and adds the env block to your
shell profile.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	host, err := platform.Detect()
	if err != nil {
		return err
	}

	root, err := layout.Root()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Installing %s to %s\n", branding.DisplayName(), root)
	if err := layout.Init(out); err != nil {
		return fmt.Errorf("initializing layout: %w", err)
	}

	client := newReleaseClient()
	rel, err := resolveRelease(client, installVersion)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Installing release %s for %s...\n", rel.Version, host)

	configPath, err := layout.ConfigPath()
	if err != nil {
		return err
	}
	if warn := downgradeWarning(configPath, rel.Version); warn != "" {
		fmt.Fprintln(os.Stderr, warn)
	}

	tmpDir, err := os.MkdirTemp("", "hayride-install-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// Platform binary.
	binAsset, err := release.SelectBinaryAsset(rel.Assets, host)
	if err != nil {
		return err
	}
	archivePath, err := client.DownloadAsset(binAsset, tmpDir)
	if err != nil {
		return fmt.Errorf("downloading binary archive: %w", err)
	}
	if err := verifyArchive(client, rel, archivePath); err != nil {
		return err
	}

	binExtract := filepath.Join(tmpDir, "binary")
	if err := release.Extract(archivePath, binExtract); err != nil {
		return fmt.Errorf("extracting binary archive: %w", err)
	}
	binPath, err := installBinary(binExtract)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Installed binary %s\n", binPath)

	// Core morphs, hayride morphs, compositions.
	namespaces, err := layout.Namespaces()
	if err != nil {
		return err
	}
	if err := installCoreModules(out, client, rel, tmpDir, namespaces); err != nil {
		return err
	}

	// Runtime config: last install wins.
	if err := writeRuntimeConfig(rel.Version, root, out); err != nil {
		return err
	}

	if !installSkipModel {
		if err := offerModel(out, client); err != nil {
			return err
		}
	}

	if !installSkipShell {
		patchShellProfile(out, root)
	}

	fmt.Fprintf(out, "\n✓ %s %s installed. Restart your shell or source your profile to use it.\n",
		branding.DisplayName(), rel.Version)
	return nil
}

// newReleaseClient builds a release client honoring the configured mirror.
func newReleaseClient() *release.Client {
	config.Load()
	mirror := config.Get("mirror")
	if envMirror := os.Getenv(branding.EnvVar("MIRROR")); envMirror != "" {
		mirror = envMirror
	}

	var opts []release.Option
	if mirror != "" {
		opts = append(opts, release.WithMirror(mirror))
	}
	return release.NewClient(opts...)
}

// resolveRelease fetches the pinned tag when set, otherwise the latest release.
func resolveRelease(client *release.Client, pinned string) (*release.Release, error) {
	if pinned != "" {
		fmt.Fprintf(os.Stderr, "Resolving release %s...\n", pinned)
		rel, err := client.ByTag(pinned)
		if err != nil {
			return nil, fmt.Errorf("resolving release %s: %w", pinned, err)
		}
		return rel, nil
	}

	fmt.Fprintln(os.Stderr, "Resolving latest release...")
	rel, err := client.Latest()
	if err != nil {
		return nil, fmt.Errorf("resolving latest release: %w", err)
	}
	return rel, nil
}

// downgradeWarning reports when the resolved release is older than the
// version recorded by a previous install. A fresh install, an unreadable
// config, or a non-semver recorded version produces no warning.
func downgradeWarning(configPath, target string) string {
	cfg, err := runtimeconfig.ReadFile(configPath)
	if err != nil || cfg.Version == "" {
		return ""
	}
	cmp, err := release.CompareVersions(target, cfg.Version)
	if err != nil {
		return ""
	}
	if cmp < 0 {
		return fmt.Sprintf("⚠ Installed version %s is newer than %s; continuing will downgrade", cfg.Version, target)
	}
	return ""
}

// verifyArchive checks the archive against checksums.txt when the release
// publishes one.
func verifyArchive(client *release.Client, rel *release.Release, archivePath string) error {
	if !release.HasChecksums(rel) {
		fmt.Fprintln(os.Stderr, "⚠ Release has no checksums.txt; skipping verification")
		return nil
	}
	if err := client.VerifyChecksum(rel, archivePath); err != nil {
		return fmt.Errorf("checksum verification failed: %w", err)
	}
	return nil
}

// installBinary finds the platform binary in the extracted tree and copies it
// into the bin directory with exec permissions.
func installBinary(extractDir string) (string, error) {
	want := "hayride"
	if runtime.GOOS == "windows" {
		want = "hayride.exe"
	}

	var found string
	err := filepath.WalkDir(extractDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == want {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning extracted archive: %w", err)
	}
	if found == "" {
		return "", fmt.Errorf("%s binary not found in archive", want)
	}

	binDir, err := layout.BinDir()
	if err != nil {
		return "", err
	}
	dest := filepath.Join(binDir, want)

	data, err := os.ReadFile(found)
	if err != nil {
		return "", fmt.Errorf("reading extracted binary: %w", err)
	}
	if err := os.WriteFile(dest, data, 0755); err != nil {
		return "", fmt.Errorf("installing binary to %s: %w", dest, err)
	}
	if err := platform.Chmod(dest, 0755); err != nil {
		return "", fmt.Errorf("setting binary permissions: %w", err)
	}
	return dest, nil
}

// installCoreModules downloads the core modules archive and registers its
// subtrees into the given namespaces.
func installCoreModules(out io.Writer, client *release.Client, rel *release.Release, tmpDir string, namespaces []layout.Namespace) error {
	coreAsset, err := release.SelectCoreAsset(rel.Assets)
	if err != nil {
		return err
	}
	archivePath, err := client.DownloadAsset(coreAsset, tmpDir)
	if err != nil {
		return fmt.Errorf("downloading core modules archive: %w", err)
	}
	if err := verifyArchive(client, rel, archivePath); err != nil {
		return err
	}

	coreExtract := filepath.Join(tmpDir, "core-modules")
	if err := release.Extract(archivePath, coreExtract); err != nil {
		return fmt.Errorf("extracting core modules archive: %w", err)
	}

	registrar := registry.New(registry.DefaultExt)
	for _, ns := range namespaces {
		sourceDir := filepath.Join(coreExtract, ns.Subtree)
		if _, err := os.Stat(sourceDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "⚠ Archive has no %s/ subtree; skipping %s namespace\n", ns.Subtree, ns.Label)
			continue
		}

		result, err := registrar.Register(sourceDir, ns.Root)
		if err != nil {
			return fmt.Errorf("registering %s morphs: %w", ns.Label, err)
		}
		reportRegistration(out, ns.Label, result)

		if err := registry.UpdateLatestLink(ns.Root); err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Could not update latest alias for %s: %v\n", ns.Label, err)
		}
	}

	return nil
}

// reportRegistration prints the per-namespace outcome; skipped files go to
// stderr as warnings.
func reportRegistration(out io.Writer, label string, result *registry.Result) {
	fmt.Fprintf(out, "✓ Registered %d %s morphs\n", result.Placed, label)
	for _, name := range result.Skipped {
		fmt.Fprintf(os.Stderr, "⚠ Skipped %s: not a versioned morph filename\n", name)
	}
}

func writeRuntimeConfig(version, root string, out io.Writer) error {
	configPath, err := layout.ConfigPath()
	if err != nil {
		return err
	}
	if err := runtimeconfig.Default(version, root).WriteFile(configPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Wrote runtime config %s\n", configPath)
	return nil
}

// offerModel prompts for the optional model download unless -y is set.
func offerModel(out io.Writer, client *release.Client) error {
	spec := model.Resolve(config.Get("model.name"), config.Get("model.url"))

	if !installYes {
		fmt.Fprintf(out, "? Download model %s (several GB)? (y/N) ", spec.Name)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return nil
		}
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Skipping model download.")
			return nil
		}
	}

	modelsDir, err := layout.ModelsDir()
	if err != nil {
		return err
	}
	path, downloaded, err := spec.Fetch(client, modelsDir)
	if err != nil {
		return err
	}
	if downloaded {
		fmt.Fprintf(out, "✓ Downloaded model %s\n", path)
	} else {
		fmt.Fprintf(out, "✓ Model already present at %s\n", path)
	}
	return nil
}

// patchShellProfile appends the env block to the detected profile. Detection
// failure degrades to printing manual instructions.
func patchShellProfile(out io.Writer, root string) {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, shell.ManualInstructions(root))
		return
	}

	profilePath, err := shell.DetectProfile(home, runtime.GOOS)
	if err != nil {
		fmt.Fprintln(os.Stderr, shell.ManualInstructions(root))
		return
	}

	modified, err := shell.Apply(profilePath, root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Could not update %s: %v\n", profilePath, err)
		fmt.Fprintln(os.Stderr, shell.ManualInstructions(root))
		return
	}
	if modified {
		fmt.Fprintf(out, "✓ Added env block to %s\n", profilePath)
	} else {
		fmt.Fprintf(out, "  [SKIP] %s already configured\n", profilePath)
	}
}
