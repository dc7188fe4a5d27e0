package errors

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// OsExit is swapped out in tests.
var OsExit = os.Exit

const (
	// ExitCodeConfig is returned when the workspace or the CLI configuration cannot be read.
	ExitCodeConfig = 2
)

type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Cause() error {
	return e.cause
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to err.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode extracts the exit code from an error chain.
// It returns 0 for nil, the attached code when there is one,
// the child process code for exec.ExitError, and 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return 1
}
