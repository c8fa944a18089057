package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/hayride-dev/hayrideup/internal/layout"
	"github.com/hayride-dev/hayrideup/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listNamespace string
	listLatest    bool
)

func init() {
	listCmd.Flags().StringVar(&listNamespace, "namespace", "", "Limit to one namespace (core, hayride, compositions)")
	listCmd.Flags().BoolVar(&listLatest, "latest", false, "Show only the newest version of each morph")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered morphs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	namespaces, err := layout.Namespaces()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAMESPACE\tNAME\tVERSION")

	total := 0
	for _, ns := range namespaces {
		if listNamespace != "" && ns.Label != listNamespace {
			continue
		}

		if listLatest {
			names, err := registry.Names(ns.Root)
			if err != nil {
				return err
			}
			for _, name := range names {
				version, err := registry.LatestVersion(ns.Root, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", ns.Label, name, version)
				total++
			}
			continue
		}

		entries, err := registry.Entries(ns.Root)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ns.Label, e.Name, e.Version)
			total++
		}
	}
	w.Flush()

	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No morphs registered. Run 'hayrideup install' first.")
	}
	return nil
}
