package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const explainText = `# schedcheck

Checks a festival schedule CSV before it is published. Every problem in the
file is reported in a single run so it can be fixed in one edit pass.

## Input

- Comma-separated, UTF-8 without a byte order mark. A BOM becomes part of the
  first column name, so ` + "`id`" + ` is reported missing.
- The first line names the columns. If it is blank, every column is missing.
- Names are trimmed when checking for missing columns and are case-sensitive.
  Values are looked up by the name exactly as written, so a padded
  ` + "` stage `" + ` column leaves every row with an empty stage.
- Required columns, in any order: ` + "`id`, `day`, `date`, `start_time`, `end_time`, `stage`, `title`, `category`" + `.
- Extra columns are ignored. Blank lines after the header are skipped.
- The path may be a file, ` + "`s3://bucket/key`" + `, or either with a ` + "`.gz`" + ` suffix.

## Rules

Row numbers count the header as row 1. Values are trimmed first and a missing
cell counts as empty. All rules run on every row.

| Column | Rule |
|---|---|
| id | non-empty, not used by an earlier row |
| day | Thursday, Friday, Saturday or Sunday |
| date | YYYY-MM-DD digits (no calendar check) |
| start_time, end_time | H:MM AM or HH:MM PM (no range check) |
| stage | one of the ten festival stages (see ` + "`schedcheck schema`" + `) |
| title | non-empty |
| category | Performance or Activity |

If a required column is missing, only the missing columns are reported.

## Exit codes

- **0**: ` + "`CSV validation passed.`" + ` on stdout.
- **2**: usage error, missing file, unreadable CSV, or any rule failure.
  Each problem is printed on stderr as ` + "`ERROR: <message>`" + `.
- **1**: any other command failed.

## Commands

- ` + "`schedcheck <path>`" + ` / ` + "`schedcheck validate <path>`" + `: validate a schedule.
- ` + "`schedcheck schema`" + `: print the schema as YAML.
- ` + "`schedcheck hook install [path]`" + `: reject commits while the schedule is invalid.
- ` + "`schedcheck hook remove`" + `: remove that pre-commit block.
- ` + "`schedcheck version`" + `: print the version.

## Configuration

Optional ` + "`.schedcheck.yaml`" + ` (or ` + "`--config`" + `), overridden by
` + "`SCHEDCHECK_*`" + ` environment variables:

` + "```yaml" + `
log:
  level: warn        # SCHEDCHECK_LOG_LEVEL or --log-level
  format: console    # or json
s3:
  region: eu-west-2
  endpoint: http://localhost:9000   # S3-compatible stores
hook:
  path: public/data/schedule.csv
` + "```" + `
`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print a reference of the schedule rules and exit codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if isTerminal(out) {
			if rendered, err := glamour.Render(explainText, "dark"); err == nil {
				fmt.Fprint(out, rendered)
				return
			}
		}
		fmt.Fprint(out, explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
