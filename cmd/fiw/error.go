package main

import (
	"errors"
	"fmt"

	"github.com/desertwitch/fiw/internal/configuration"
	"github.com/desertwitch/fiw/internal/io"
	"github.com/desertwitch/fiw/internal/validation"
)

var (
	// ErrArguments occurs when the command line is missing the source or the
	// target, or contains unknown flags.
	ErrArguments = errors.New("invalid arguments")

	// ErrConfiguration occurs when the configuration file or a configuration
	// flag cannot be used.
	ErrConfiguration = errors.New("invalid configuration")
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// failureMessages maps errors to the line printed to standard output before
// exiting with failure. The line is followed by a blank line. The first
// matching entry wins.
//
//nolint:gochecknoglobals
var failureMessages = []struct {
	err     error
	message string
}{
	{ErrArguments, "Usage: fiw source.img /dev/target_device"},
	{validation.ErrInvalidSource, "Error: Invalid source"},
	{validation.ErrInvalidTarget, "Error: Invalid target"},
	{validation.ErrSourceNotReadable, "Error: I cannot read the source file"},
	{validation.ErrSourceNotFile, "Error: source is not a file"},
	{validation.ErrTargetNotDevice, "Error: target must be a char or block device"},
	{validation.ErrTargetNotWritable, "Error: I cannot write to the target block device"},
	{io.ErrOpenSource, "Error: open() failed on source image file"},
	{io.ErrOpenTarget, "Error: open() failed on target block device"},
}

// failureMessage returns the line to print for a pre-flight failure.
func failureMessage(err error) string {
	for _, fm := range failureMessages {
		if errors.Is(err, fm.err) {
			return fm.message
		}
	}

	if errors.Is(err, ErrConfiguration) {
		if errors.Is(err, configuration.ErrInvalidLogLevel) {
			return "Error: unknown log level"
		}

		return "Error: cannot load the configuration file"
	}

	return "Error: " + err.Error()
}

// handleError prints the message for err and returns the exit code. A failed
// transfer call is reported to standard error, but only fails the program in
// strict mode, since everything up to that point was written synchronously.
func handleError(err error, cfg configuration.Config, d *deps) int {
	if err == nil {
		return exitSuccess
	}

	if errors.Is(err, io.ErrTransfer) {
		fmt.Fprintln(d.stderr, err)

		if cfg.Strict {
			return exitFailure
		}

		return exitSuccess
	}

	fmt.Fprintf(d.stdout, "%s\n\n", failureMessage(err))

	return exitFailure
}
