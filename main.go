package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/nx-knip/cmd"
	errUtils "github.com/cloudposse/nx-knip/errors"
	log "github.com/cloudposse/nx-knip/pkg/logger"
)

func main() {
	errUtils.OsExit(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	// Cancelling the context stops a running `nx graph`.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	if err == nil {
		return 0
	}

	formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
	_, _ = os.Stderr.WriteString(formatted + "\n")

	exitCode := errUtils.GetExitCode(err)
	log.Debug("Exiting with exit code", "code", exitCode)
	return exitCode
}
