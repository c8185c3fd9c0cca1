// Package exitcode maps errors onto stable process exit codes so scripts
// can branch on failure class instead of parsing stderr.
package exitcode

import (
	"os"

	"github.com/ledgerline/ledgerline/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing, expired, or rejected session
	AuthError = 3

	// NetworkError indicates the platform could not be reached
	NetworkError = 4

	// ConfigError indicates an unreadable or invalid configuration file
	ConfigError = 5

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode classifies an error by its code rather than its text
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case errors.HasCode(err, errors.ErrCodeAuthNotLoggedIn),
		errors.HasCode(err, errors.ErrCodeAuthUnauthorized),
		errors.HasCode(err, errors.ErrCodeAuthForbidden),
		errors.HasCode(err, errors.ErrCodeAuthLoginFailed):
		return AuthError
	case errors.HasCode(err, errors.ErrCodeAPIUnavailable):
		return NetworkError
	case errors.HasCode(err, errors.ErrCodeConfigNotFound),
		errors.HasCode(err, errors.ErrCodeConfigInvalid),
		errors.HasCode(err, errors.ErrCodeConfigKey):
		return ConfigError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case ConfigError:
		return "Configuration error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
