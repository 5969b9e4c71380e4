package main

import (
	"errors"
	"os"

	"github.com/cranberry-synth/manualgen"
	"github.com/cranberry-synth/manualgen/internal/config"
)

// Exit codes for manualgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Manual generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing source, write failure, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, manualgen.ErrInvalidHighlightStyle) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, manualgen.ErrMissingInput) ||
		errors.Is(err, manualgen.ErrReadInput) ||
		errors.Is(err, manualgen.ErrInvalidEncoding) ||
		errors.Is(err, manualgen.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
