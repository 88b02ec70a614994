package main

import (
	"errors"

	"github.com/quantmind-br/canister-counter/internal/analyzer"
	"github.com/quantmind-br/canister-counter/internal/manifest"
)

// Process exit codes
const (
	exitOK           = 0
	exitFailure      = 1
	exitFileRead     = 2
	exitParse        = 3
	exitMissingField = 4
)

// exitCode maps an error returned by the root command to a process exit code
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var readErr *manifest.FileReadError
	var parseErr *manifest.ParseError
	var missingErr *analyzer.MissingFieldError

	switch {
	case errors.As(err, &readErr):
		return exitFileRead
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &missingErr):
		return exitMissingField
	default:
		return exitFailure
	}
}
