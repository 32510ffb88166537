package cli

import (
	"errors"
	"fmt"

	"github.com/re-cinq/schedcheck/internal/logging"
	"github.com/re-cinq/schedcheck/internal/schedule"
	"github.com/re-cinq/schedcheck/internal/source"
	"github.com/spf13/cobra"
)

const passedMessage = "CSV validation passed."

var validateCmd = &cobra.Command{
	Use:   "validate <schedule.csv>",
	Short: "Validate a schedule CSV and report every error",
	Long: `Validate a schedule CSV (a local path or s3://bucket/key, optionally .gz)
and print "CSV validation passed." or one ERROR line per problem.`,
	Args: exactlyOnePath,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, location string) error {
	log := logging.WithComponent("validate")

	opener := source.NewOpener(s3Config(), logging.WithComponent("source"))
	rc, err := opener.Open(cmd.Context(), location)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return invalidf("%s not found", location)
		}
		return invalidf("%s", err)
	}
	defer rc.Close()

	report, err := schedule.Check(rc, schedule.Default())
	if err != nil {
		return invalidf("reading %s: %s", location, err)
	}
	log.Debug().
		Str("location", location).
		Int("rows", report.Rows).
		Int("violations", len(report.Violations)).
		Msg("schedule checked")

	if !report.Valid() {
		printViolations(cmd.ErrOrStderr(), report)
		return &exitError{code: exitInvalid}
	}
	fmt.Fprintln(cmd.OutOrStdout(), passedMessage)
	return nil
}
