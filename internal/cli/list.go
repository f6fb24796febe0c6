package cli

import (
	"fmt"

	"github.com/agentx-labs/i18n-scaffold/internal/config"
	"github.com/agentx-labs/i18n-scaffold/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files a run writes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := scaffold.Files()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, spec := range specs {
			fmt.Fprintf(out, "  %-40s %5d bytes\n", spec.Path, len(spec.Content))
		}
		fmt.Fprintf(out, "  %-40s (patched if present)\n", config.Entry())
		return nil
	},
}
