package cli

import (
	"fmt"

	"github.com/re-cinq/schedcheck/internal/schedule"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Output the schedule CSV schema as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := schedule.Default().YAML()
		if err != nil {
			return fmt.Errorf("rendering schema: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
