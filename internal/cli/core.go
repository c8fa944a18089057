package cli

import (
	"fmt"
	"os"

	"github.com/hayride-dev/hayrideup/internal/layout"
	"github.com/spf13/cobra"
)

var coreVersion string

func init() {
	coreCmd.Flags().StringVar(&coreVersion, "version", "", "Install core morphs from a specific release")
	rootCmd.AddCommand(coreCmd)
}

var coreCmd = &cobra.Command{
	Use:   "core",
	Short: "Install or update only the core morphs",
	Long: `Download the core modules archive and register its core morphs into the
local registry, without touching the platform binary, model, or shell profile.`,
	Args: cobra.NoArgs,
	RunE: runCore,
}

func runCore(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := layout.Root()
	if err != nil {
		return err
	}
	if err := layout.Init(out); err != nil {
		return fmt.Errorf("initializing layout: %w", err)
	}

	client := newReleaseClient()
	rel, err := resolveRelease(client, coreVersion)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "hayride-core-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// Single namespace: only the core subtree is registered.
	coreRegistry, err := layout.CoreRegistry()
	if err != nil {
		return err
	}
	namespaces := []layout.Namespace{
		{Label: layout.CoreNamespace, Subtree: layout.CoreNamespace, Root: coreRegistry},
	}
	if err := installCoreModules(out, client, rel, tmpDir, namespaces); err != nil {
		return err
	}

	if err := writeRuntimeConfig(rel.Version, root, out); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n✓ Core morphs %s installed.\n", rel.Version)
	return nil
}
