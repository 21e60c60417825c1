// Package errors defines the error kinds that the HTTP layer knows how to render.
// Domain code returns its own sentinel errors; delivery packages translate them
// into these kinds and the central error handler turns them into responses.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for the credential-related kinds. Use errors.Is against them;
// the typed constructors below match too.
var (
	ErrAuthenticationFailed   = &AuthenticationFailedError{}
	ErrAccessDenied           = &AccessDeniedError{}
	ErrAuthenticationRequired = &AuthenticationRequiredError{}
)

// ValidationError reports rejected request fields. Each detail is one
// human-readable line.
type ValidationError struct {
	Details []string
}

func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Details, ", ")
}

func (e *ValidationError) Kind() Code { return CodeValidation }

// InvalidArgumentError is a malformed argument whose message is safe to show.
type InvalidArgumentError struct {
	Message string
	Cause   error
}

func NewInvalidArgument(msg string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: msg}
}

// WrapInvalidArgument keeps cause in the chain for logging.
func WrapInvalidArgument(msg string, cause error) *InvalidArgumentError {
	return &InvalidArgumentError{Message: msg, Cause: cause}
}

func (e *InvalidArgumentError) Error() string { return e.Message }
func (e *InvalidArgumentError) Unwrap() error { return e.Cause }
func (e *InvalidArgumentError) Kind() Code    { return CodeInvalidArgument }

// BindingError is a request body or query that could not be decoded.
// Validator errors inside it still render as validation failures.
type BindingError struct {
	Cause error
}

func NewBindingError(cause error) *BindingError {
	return &BindingError{Cause: cause}
}

func (e *BindingError) Error() string { return withCause("bind request", e.Cause) }
func (e *BindingError) Unwrap() error { return e.Cause }

// AuthenticationFailedError means the presented credentials were wrong.
type AuthenticationFailedError struct {
	Cause error
}

func NewAuthenticationFailed(cause error) *AuthenticationFailedError {
	return &AuthenticationFailedError{Cause: cause}
}

func (e *AuthenticationFailedError) Error() string {
	return withCause("authentication failed", e.Cause)
}
func (e *AuthenticationFailedError) Unwrap() error { return e.Cause }
func (e *AuthenticationFailedError) Kind() Code    { return CodeAuthenticationFailed }
func (e *AuthenticationFailedError) Is(target error) bool {
	_, ok := target.(*AuthenticationFailedError)
	return ok
}

// AccessDeniedError means the caller is authenticated but not allowed.
type AccessDeniedError struct {
	Cause error
}

func NewAccessDenied(cause error) *AccessDeniedError {
	return &AccessDeniedError{Cause: cause}
}

func (e *AccessDeniedError) Error() string { return withCause("access denied", e.Cause) }
func (e *AccessDeniedError) Unwrap() error { return e.Cause }
func (e *AccessDeniedError) Kind() Code    { return CodeAccessDenied }
func (e *AccessDeniedError) Is(target error) bool {
	_, ok := target.(*AccessDeniedError)
	return ok
}

// AuthenticationRequiredError means no usable identity was presented.
type AuthenticationRequiredError struct {
	Cause error
}

func NewAuthenticationRequired(cause error) *AuthenticationRequiredError {
	return &AuthenticationRequiredError{Cause: cause}
}

func (e *AuthenticationRequiredError) Error() string {
	return withCause("authentication required", e.Cause)
}
func (e *AuthenticationRequiredError) Unwrap() error { return e.Cause }
func (e *AuthenticationRequiredError) Kind() Code    { return CodeAuthenticationRequired }
func (e *AuthenticationRequiredError) Is(target error) bool {
	_, ok := target.(*AuthenticationRequiredError)
	return ok
}

// ResourceNotFoundError carries either a ready message or the resource type and id.
type ResourceNotFoundError struct {
	Message      string
	ResourceType string
	ID           string
}

func NewResourceNotFound(msg string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Message: msg}
}

// NewResourceNotFoundByID formats the message from resourceType and id at render time.
func NewResourceNotFoundByID(resourceType string, id any) *ResourceNotFoundError {
	return &ResourceNotFoundError{ResourceType: resourceType, ID: fmt.Sprint(id)}
}

func (e *ResourceNotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found (ID: %s)", e.ResourceType, e.ID)
}

func (e *ResourceNotFoundError) Kind() Code { return CodeResourceNotFound }

// DuplicateResourceError carries either a ready message or the conflicting field.
type DuplicateResourceError struct {
	Message      string
	ResourceType string
	Field        string
	Value        string
}

func NewDuplicateResource(msg string) *DuplicateResourceError {
	return &DuplicateResourceError{Message: msg}
}

func NewDuplicateResourceByField(resourceType, field string, value any) *DuplicateResourceError {
	return &DuplicateResourceError{ResourceType: resourceType, Field: field, Value: fmt.Sprint(value)}
}

func (e *DuplicateResourceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists (%s: %s)", e.ResourceType, e.Field, e.Value)
}

func (e *DuplicateResourceError) Kind() Code { return CodeDuplicateResource }

// BusinessLogicError is a rule violation whose message is shown as is.
type BusinessLogicError struct {
	Message string
}

func NewBusinessLogic(msg string) *BusinessLogicError {
	return &BusinessLogicError{Message: msg}
}

func (e *BusinessLogicError) Error() string { return e.Message }
func (e *BusinessLogicError) Kind() Code    { return CodeBusinessRule }

// TooManyRequestsError is returned when a caller exceeds a rate limit.
type TooManyRequestsError struct {
	Message string
}

func NewTooManyRequests(msg string) *TooManyRequestsError {
	return &TooManyRequestsError{Message: msg}
}

func (e *TooManyRequestsError) Error() string { return e.Message }
func (e *TooManyRequestsError) Kind() Code    { return CodeTooManyRequests }

// HTTPError pins an explicit status and code.
type HTTPError struct {
	Status  int
	Code    Code
	Message string
}

func NewHTTPError(status int, code Code, msg string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: msg}
}

func (e *HTTPError) Error() string { return e.Message }
func (e *HTTPError) Kind() Code    { return e.Code }

// KindOf returns the code of the first Coder in err's chain.
func KindOf(err error) (Code, bool) {
	var c Coder
	if errors.As(err, &c) {
		return c.Kind(), true
	}
	return "", false
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + ": " + cause.Error()
}
