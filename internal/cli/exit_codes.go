package cli

import (
	stderrors "errors"

	"github.com/ariel-frischer/speclog/internal/errors"
	"github.com/ariel-frischer/speclog/internal/feature"
)

// Exit codes for the speclog CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitRuntimeFailure indicates an unexpected failure during execution.
	ExitRuntimeFailure = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitMissingPrecondition indicates a required directory or file is absent.
	ExitMissingPrecondition = 4
)

// ExitError carries a process exit code alongside the underlying error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit error"
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with an explicit exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// exitCodeFor resolves the process exit code for a command error.
func exitCodeFor(err error) int {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := asCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Precondition:
			return ExitMissingPrecondition
		}
	}
	return ExitRuntimeFailure
}

// asCLIError extracts a structured CLIError from an error chain.
func asCLIError(err error) *errors.CLIError {
	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// wrapDomainError converts feature-package errors into structured CLI errors
// with the matching exit code.
func wrapDomainError(err error) error {
	if err == nil {
		return nil
	}

	var missing *feature.MissingPathError
	if stderrors.As(err, &missing) {
		return NewExitError(ExitMissingPrecondition,
			errors.NewPreconditionError(missing.Error()))
	}

	if stderrors.Is(err, feature.ErrEmptyMessage) {
		return NewExitError(ExitInvalidArguments,
			errors.NewArgumentErrorWithUsage(
				"a log message is required",
				"speclog log <feature-id> <message>",
			))
	}

	return NewExitError(ExitRuntimeFailure, errors.Wrap(err, errors.Runtime))
}
