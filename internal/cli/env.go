package cli

import (
	"fmt"

	"github.com/hayride-dev/hayrideup/internal/layout"
	"github.com/hayride-dev/hayrideup/internal/shell"
	"github.com/spf13/cobra"
)

var envApply bool

func init() {
	envCmd.Flags().BoolVar(&envApply, "apply", false, "Append the block to the detected shell profile")
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the shell environment block",
	Long: `Print the PATH/environment block the installer appends to your shell
profile. With --apply, append it to the detected profile (no-op when the
sentinel line is already present).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := layout.Root()
		if err != nil {
			return err
		}

		if !envApply {
			fmt.Fprint(cmd.OutOrStdout(), shell.EnvBlock(root))
			return nil
		}

		patchShellProfile(cmd.OutOrStdout(), root)
		return nil
	},
}
