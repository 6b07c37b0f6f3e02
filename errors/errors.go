package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError       ErrorType = "VALIDATION_ERROR"
	MethodNotAllowedError ErrorType = "METHOD_NOT_ALLOWED"
	ConfigurationError    ErrorType = "CONFIGURATION_ERROR"
	DeliveryError         ErrorType = "DELIVERY_ERROR"
	ServerError           ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error. Message is what the
// client sees; Detail and Raw only reach the logs.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the status to answer with, defaulting to 500.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return getHTTPStatus(e.Type)
	}
	return e.HTTPStatus
}

// Wrap wraps a raw error with AppError context. The raw error's text becomes
// the client-facing message when message is empty.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	if message == "" {
		message = err.Error()
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

func MethodNotAllowed(method string) *AppError {
	return &AppError{
		Type:       MethodNotAllowedError,
		Message:    "Method Not Allowed",
		Detail:     fmt.Sprintf("method %s", method),
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// MisconfiguredMailer reports missing mail credentials with the underlying
// message intact.
func MisconfiguredMailer(err error) *AppError {
	return Wrap(err, ConfigurationError, "")
}

// DeliveryFailed reports a transport failure. The client sees the transport's
// own message; the adapter's context stays in Detail.
func DeliveryFailed(err error) *AppError {
	if err == nil {
		return nil
	}
	cause := err
	if inner := stderrors.Unwrap(err); inner != nil {
		cause = inner
	}
	return Wrap(err, DeliveryError, cause.Error())
}

// InternalServerError covers errors that reach the handler without a type.
func InternalServerError(err error) *AppError {
	return Wrap(err, ServerError, "")
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case MethodNotAllowedError:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
