package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/re-cinq/schedcheck/internal/config"
	"github.com/re-cinq/schedcheck/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configFile string
	settings   config.Settings
	Version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "schedcheck <schedule.csv>",
	Short: "Validate a festival schedule CSV before it is published",
	Long: `schedcheck checks a festival schedule CSV: required headers, per-row field
formats and duplicate ids. Every problem in the file is reported in one run.

Running "schedcheck <path>" is the same as "schedcheck validate <path>",
except for a path that is also a subcommand name (schema, version, hook,
explain, validate, help). Use "schedcheck validate <path>" for those; it
always treats its argument as a path.`,
	Args:          exactlyOnePath,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New(configFile)
		if err != nil {
			return err
		}
		if err := v.BindPFlag(config.KeyLogLevel, cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
			return err
		}
		settings = config.Load(v)
		logging.Init(logging.Config{Level: settings.LogLevel, Format: settings.LogFormat}, cmd.ErrOrStderr())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default .schedcheck.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultConfig().Level, "diagnostic log level: debug, info, warn, error, disabled")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err.Error())
	})
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}
	stderr := rootCmd.ErrOrStderr()
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(stderr, ee.msg)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "ERROR: %s\n", err)
	return exitFailure
}

