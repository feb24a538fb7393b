package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	ParseError         ErrorType = "PARSE_ERROR"
	ProviderError      ErrorType = "PROVIDER_ERROR"
	RateLimitError     ErrorType = "RATE_LIMIT_EXCEEDED"
	DuplicateError     ErrorType = "DUPLICATE_SUBMISSION"
	ServerError        ErrorType = "SERVER_ERROR"
	ServiceUnavailable ErrorType = "SERVICE_UNAVAILABLE"
)

// Messages returned to callers of the contact endpoint.
const (
	MsgMissingFields = "Missing required fields"
	MsgInvalidEmail  = "Invalid email address"
	MsgSendFailed    = "Failed to send message"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	RetryAfter int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the response status for the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// ExposesDetail reports whether Detail may be returned to the caller.
// Parse and provider failures carry the underlying message; everything
// else only shows Message.
func (e *AppError) ExposesDetail() bool {
	return e.Type == ParseError || e.Type == ProviderError
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingRequiredFields is returned when email or projectType is absent.
func MissingRequiredFields(fields ...string) *AppError {
	return ValidationFailed(MsgMissingFields, fmt.Sprintf("missing: %v", fields))
}

// InvalidEmail is returned when the email fails the shape check.
func InvalidEmail() *AppError {
	return ValidationFailed(MsgInvalidEmail, "email does not look like local@domain.tld")
}

// RequestParseFailed wraps a body decoding failure. It maps to 500 like a
// provider failure does.
func RequestParseFailed(err error) *AppError {
	return Wrap(err, ParseError, MsgSendFailed)
}

// ProviderFailed wraps an email provider failure.
func ProviderFailed(err error) *AppError {
	return Wrap(err, ProviderError, MsgSendFailed)
}

func RateLimitExceeded(message string, retryAfterSeconds int) *AppError {
	return &AppError{
		Type:       RateLimitError,
		Message:    message,
		Detail:     fmt.Sprintf("retry after %d seconds", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
		RetryAfter: retryAfterSeconds,
	}
}

func DuplicateSubmission(key string) *AppError {
	return &AppError{
		Type:       DuplicateError,
		Message:    "Duplicate submission",
		Detail:     fmt.Sprintf("idempotency key %q was already processed", key),
		HTTPStatus: http.StatusConflict,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case RateLimitError:
		return http.StatusTooManyRequests
	case DuplicateError:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
