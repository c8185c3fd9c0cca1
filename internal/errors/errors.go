package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn  ErrorCode = "AUTH-001"
	ErrCodeAuthLoginFailed  ErrorCode = "AUTH-002"
	ErrCodeAuthUnauthorized ErrorCode = "AUTH-003"
	ErrCodeAuthResetFailed  ErrorCode = "AUTH-004"
	ErrCodeAuthForbidden    ErrorCode = "AUTH-005"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionReadFailed  ErrorCode = "SESSION-001"
	ErrCodeSessionWriteFailed ErrorCode = "SESSION-002"
	ErrCodeSessionCorrupt     ErrorCode = "SESSION-003"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIUnavailable ErrorCode = "API-003"
	ErrCodeAPIBadStatus   ErrorCode = "API-004"

	// Organization errors (ORG-001 to ORG-099)
	ErrCodeOrgNotFound    ErrorCode = "ORG-001"
	ErrCodeOrgNoneJoined  ErrorCode = "ORG-002"
	ErrCodeOrgNotSelected ErrorCode = "ORG-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG-002"
	ErrCodeConfigKey      ErrorCode = "CONFIG-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// LedgerError represents an enhanced error with code, suggestions, and a cause
type LedgerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *LedgerError) Unwrap() error {
	return e.Cause
}

// New creates a new LedgerError
func New(code ErrorCode, message string) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new LedgerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *LedgerError) WithSuggestion(suggestion string) *LedgerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *LedgerError) WithSuggestions(suggestions ...string) *LedgerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError reports that a protected command ran without a session
func NewNotLoggedInError() *LedgerError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'ledgerline auth login' to authenticate")
}

// NewUnauthorizedError reports a rejected token; callers treat it as an implicit logout
func NewUnauthorizedError() *LedgerError {
	return New(ErrCodeAuthUnauthorized, "session expired or invalid").
		WithSuggestion("Run 'ledgerline auth login' to authenticate again")
}

// NewNoOrganizationsError reports that the user belongs to no organization
func NewNoOrganizationsError() *LedgerError {
	return New(ErrCodeOrgNoneJoined, "you are not a member of any organization").
		WithSuggestion("Ask an administrator to add you to an organization")
}

// IsUnauthorized reports whether err carries the unauthorized code anywhere in its chain
func IsUnauthorized(err error) bool {
	return HasCode(err, ErrCodeAuthUnauthorized)
}

// HasCode reports whether err or any wrapped cause carries the given code
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if le, ok := err.(*LedgerError); ok && le.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
