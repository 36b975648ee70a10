package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetings/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage or rejected input.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// exitError carries an exit code and whether the user was already told.
type exitError struct {
	code     int
	reported bool
	err      error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usage(err error) error {
	return &exitError{code: ExitUsage, err: err}
}

// reject prints n and returns err marked as already reported.
func reject(cmd *cobra.Command, n ui.Notice, err error) error {
	ui.Print(cmd.ErrOrStderr(), n)
	return &exitError{code: ExitUsage, reported: true, err: err}
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}

// Reported tells whether err was already shown to the user.
func Reported(err error) bool {
	var ee *exitError
	return errors.As(err, &ee) && ee.reported
}
