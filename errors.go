package adorn

import (
	"fmt"
	"strings"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeValidation indicates malformed registration metadata or invalid
	// wildcard usage in a priority declaration.
	CodeValidation = "VALIDATION"

	// CodeCircularDependency indicates the ordering constraints admit no
	// linear extension.
	CodeCircularDependency = "CIRCULAR_DEPENDENCY"

	// CodeNoService indicates resolution was attempted before a service
	// was set.
	CodeNoService = "NO_SERVICE"

	// CodeInvalidFactory indicates a nil factory was provided.
	CodeInvalidFactory = "INVALID_FACTORY"

	// CodeUnknownMiddleware indicates a manifest entry references a
	// middleware with no bound factory.
	CodeUnknownMiddleware = "UNKNOWN_MIDDLEWARE"

	// CodeTypeMismatch indicates a type mismatch in a typed resolution.
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// ERROR TYPE
// =============================================================================

// Error is a coded registry error. Two Errors match under errors.Is when
// their codes are equal, so the package sentinels can be used as targets
// regardless of which constructor produced the error.
type Error struct {
	Code    string
	Message string
	Cause   error
	context map[string]any
}

func newError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Code == e.Code
}

// WithContext attaches a diagnostic key/value pair.
func (e *Error) WithContext(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}

	e.context[key] = value

	return e
}

// Context returns the diagnostic value stored under key.
func (e *Error) Context(key string) (any, bool) {
	value, ok := e.context[key]

	return value, ok
}

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrValidation is a sentinel for malformed registration metadata or
// invalid wildcard usage (for error checking).
var ErrValidation = newError(CodeValidation, "invalid middleware metadata", nil)

// ErrCircularDependencySentinel is a sentinel for contradictory ordering
// constraints (for error checking).
var ErrCircularDependencySentinel = newError(CodeCircularDependency, "circular dependency", nil)

// ErrNoService is returned when a factory is resolved before any service
// has been set.
var ErrNoService = newError(CodeNoService, "no service set on registry", nil)

// ErrInvalidFactory is returned when a nil factory is provided.
var ErrInvalidFactory = newError(CodeInvalidFactory, "factory cannot be nil", nil)

// ErrTypeMismatchSentinel is a sentinel for type mismatch during typed
// resolution.
var ErrTypeMismatchSentinel = newError(CodeTypeMismatch, "type mismatch", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrInvalidPriority creates an error for a malformed priority declaration.
func ErrInvalidPriority(key, reason string) *Error {
	return newError(
		CodeValidation,
		fmt.Sprintf("invalid '%s' priority: %s", key, reason),
		nil,
	).WithContext("key", key)
}

// ErrWildcardNotAlone creates an error for a wildcard sharing a priority
// list with explicit names.
func ErrWildcardNotAlone(key string) *Error {
	return newError(
		CodeValidation,
		fmt.Sprintf("wildcard must be the sole entry of '%s'", key),
		nil,
	).WithContext("key", key)
}

// ErrWildcardConflict creates an error for a wildcard combined with an
// explicit priority on the other key.
func ErrWildcardConflict(name string) *Error {
	return newError(
		CodeValidation,
		fmt.Sprintf("middleware '%s' cannot combine a wildcard with an explicit priority", name),
		nil,
	).WithContext("middleware", name)
}

// ErrCircularDependency creates an error for contradictory ordering
// constraints.
func ErrCircularDependency(cycle []string) *Error {
	return newError(
		CodeCircularDependency,
		fmt.Sprintf("circular ordering constraint: %v", cycle),
		nil,
	).WithContext("cycle", cycle)
}

// ErrUnknownMiddleware creates an error for manifest entries with no
// bound factory.
func ErrUnknownMiddleware(names []string) *Error {
	return newError(
		CodeUnknownMiddleware,
		fmt.Sprintf("no factory bound for middleware(s): %s", strings.Join(names, ", ")),
		nil,
	).WithContext("middlewares", names)
}

// ErrTypeMismatch creates an error for a typed resolution that produced
// an unexpected concrete type.
func ErrTypeMismatch(context string, actual any) *Error {
	return newError(
		CodeTypeMismatch,
		fmt.Sprintf("decorated service for context '%s' has type %T", context, actual),
		nil,
	).WithContext("context", context).
		WithContext("actual_type", fmt.Sprintf("%T", actual))
}
