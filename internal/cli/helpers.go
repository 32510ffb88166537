package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/re-cinq/schedcheck/internal/schedule"
	"github.com/re-cinq/schedcheck/internal/source"
	"golang.org/x/term"
)

// printViolations writes one ERROR line per violation.
func printViolations(w io.Writer, report schedule.Report) {
	for _, msg := range report.Messages() {
		fmt.Fprintf(w, "ERROR: %s\n", msg)
	}
}

func s3Config() source.S3Config {
	return source.S3Config{
		Region:          settings.S3Region,
		Endpoint:        settings.S3Endpoint,
		AccessKeyID:     settings.S3AccessKeyID,
		SecretAccessKey: settings.S3SecretAccessKey,
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
