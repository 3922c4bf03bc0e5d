package cli

import (
	"errors"
	"os"

	"github.com/peamaeq/rowan/internal/configloader"
)

// Exit codes for rowan.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a generic command failure.
	ExitError = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitIOError
	}

	return ExitError
}
