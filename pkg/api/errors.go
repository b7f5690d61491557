package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeUnauthenticated    ErrorType = "unauthenticated"
	ErrorTypeAccessDenied       ErrorType = "access_denied"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeDuplicateIdentity  ErrorType = "duplicate_identity"
	ErrorTypeServerError        ErrorType = "server_error"
)

// APIError is a structured API error with a type, a message, and for
// validation failures the list of offending fields.
type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Fields  []string  `json:"fields,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (fields: %s)", e.Type, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorResponse wraps an APIError as the top-level JSON error envelope.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// NewValidationError creates an APIError naming the missing or malformed
// fields.
func NewValidationError(fields ...string) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: "all fields are required",
		Fields:  fields,
	}
}

// NewInvalidCredentialsError creates the deliberately uninformative login
// failure. Unknown email and wrong password must be indistinguishable.
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "invalid credentials",
	}
}

// NewUnauthenticatedError creates an APIError for missing, invalid, or
// expired tokens.
func NewUnauthenticatedError() *APIError {
	return &APIError{
		Type:    ErrorTypeUnauthenticated,
		Message: "authentication required",
	}
}

// NewAccessDeniedError creates an APIError for an existing resource the
// caller does not own.
func NewAccessDeniedError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeAccessDenied,
		Message: message,
	}
}

// NewNotFoundError creates an APIError for resources that cannot be found.
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewDuplicateIdentityError creates an APIError for a username or email
// collision at registration.
func NewDuplicateIdentityError() *APIError {
	return &APIError{
		Type:    ErrorTypeDuplicateIdentity,
		Message: "username or email already taken",
	}
}

// NewServerError creates an APIError for internal failures. The underlying
// message is passed through to the caller.
func NewServerError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeServerError,
		Message: message,
	}
}

// AsAPIError converts any error into an *APIError. Errors that already
// carry a type pass through; everything else becomes a server error.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewServerError(err.Error())
}
