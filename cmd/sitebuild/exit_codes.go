package main

import (
	"errors"
	"os"

	site "github.com/evanshlee/evanshlee.github.io"
	"github.com/evanshlee/evanshlee.github.io/internal/config"
)

// Exit codes for the sitebuild CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Build completed
	ExitGeneral = 1 // General error, or page failures with --strict
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Output, styles or template files unusable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, site.ErrOutputDir) ||
		errors.Is(err, site.ErrStylesCopy) ||
		errors.Is(err, site.ErrBaseTemplateNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrInvalidEnvValue) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
