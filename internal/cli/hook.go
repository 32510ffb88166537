package cli

import (
	"fmt"

	"github.com/re-cinq/schedcheck/internal/hooks"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the Git pre-commit hook that validates the schedule",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install [schedule.csv]",
	Short: "Reject commits while the schedule CSV is invalid",
	Long: `Add a block to .git/hooks/pre-commit in the current repository that runs
"schedcheck validate <path>". The path defaults to hook.path from the config
(public/data/schedule.csv). Existing hook content is preserved and running
install again only updates the block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath := settings.HookPath
		if len(args) > 0 {
			csvPath = args[0]
		}
		path, err := hooks.Install(".", csvPath)
		if err != nil {
			return fmt.Errorf("installing hook: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  hook   %s (validates %s)\n", path, csvPath)
		return nil
	},
}

var hookRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the schedcheck block from the pre-commit hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := hooks.Remove(".")
		if err != nil {
			return fmt.Errorf("removing hook: %w", err)
		}
		if removed {
			fmt.Fprintln(cmd.OutOrStdout(), "schedcheck hook removed")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no schedcheck hook installed")
		}
		return nil
	},
}

func init() {
	hookCmd.AddCommand(hookInstallCmd, hookRemoveCmd)
	rootCmd.AddCommand(hookCmd)
}
