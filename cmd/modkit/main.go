// Package main is the entry point for modkit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opmodel/modkit/internal/cmd"
	oerrors "github.com/opmodel/modkit/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(cmd.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Check if the error contains an ExitError with a specific code
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			return exitErr.Code
		}
		// Non-ExitError: unexpected, print it
		fmt.Fprintln(os.Stderr, err)
		return oerrors.ExitCodeFromError(err)
	}
	return oerrors.ExitSuccess
}
