package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

// exitError carries the exit code for a failed command. msg, when set, is
// printed to stderr verbatim.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.msg
}

// invalidf reports a schedule that could not be validated or failed
// validation.
func invalidf(format string, args ...any) error {
	return &exitError{code: exitInvalid, msg: "ERROR: " + fmt.Sprintf(format, args...)}
}

func usageError(cmd *cobra.Command, reason string) error {
	msg := "Usage: " + cmd.UseLine()
	if reason != "" {
		msg = reason + "\n" + msg
	}
	return &exitError{code: exitInvalid, msg: msg}
}

func exactlyOnePath(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return usageError(cmd, "")
	default:
		return usageError(cmd, fmt.Sprintf("expected one schedule path, got %d", len(args)))
	}
}
