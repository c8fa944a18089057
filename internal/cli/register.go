package cli

import (
	"fmt"

	"github.com/hayride-dev/hayrideup/internal/layout"
	"github.com/hayride-dev/hayrideup/internal/registry"
	"github.com/spf13/cobra"
)

var (
	registerRoot string
	registerExt  string
)

func init() {
	registerCmd.Flags().StringVar(&registerRoot, "root", "", "Registry root to place morphs under (default: the core namespace)")
	registerCmd.Flags().StringVar(&registerExt, "ext", registry.DefaultExt, "Morph file extension to consider")
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register <source-dir>",
	Short: "Register morphs from a local directory",
	Long: `Scan a directory tree for <name>-<major>.<minor>.<patch> morph files and
copy each into the version-keyed registry. Files that do not match are
reported and left alone. Useful for locally built morphs.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]

	root := registerRoot
	if root == "" {
		var err error
		root, err = layout.CoreRegistry()
		if err != nil {
			return err
		}
	}

	result, err := registry.New(registerExt).Register(sourceDir, root)
	if err != nil {
		return fmt.Errorf("registering %s: %w", sourceDir, err)
	}
	reportRegistration(cmd.OutOrStdout(), "local", result)

	if result.Placed > 0 {
		if err := registry.UpdateLatestLink(root); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Could not update latest alias: %v\n", err)
		}
	}
	return nil
}
