package errors

// Code is the machine-readable error code sent to clients as "errorCode".
type Code string

const (
	CodeValidation             Code = "VALIDATION_ERROR"
	CodeInvalidArgument        Code = "INVALID_ARGUMENT"
	CodeAuthenticationFailed   Code = "AUTHENTICATION_FAILED"
	CodeAccessDenied           Code = "ACCESS_DENIED"
	CodeAuthenticationRequired Code = "AUTHENTICATION_REQUIRED"
	CodeTokenExpired           Code = "TOKEN_EXPIRED"
	CodeResourceNotFound       Code = "RESOURCE_NOT_FOUND"
	CodeDuplicateResource      Code = "DUPLICATE_RESOURCE"
	CodeBusinessRule           Code = "BUSINESS_RULE_VIOLATION"
	CodeTooManyRequests        Code = "TOO_MANY_REQUESTS"
	CodeMethodNotAllowed       Code = "METHOD_NOT_ALLOWED"
	CodeServiceUnavailable     Code = "SERVICE_UNAVAILABLE"
	CodeInternal               Code = "INTERNAL_SERVER_ERROR"
)

// Coder is implemented by every error kind in this package.
type Coder interface {
	error
	Kind() Code
}
