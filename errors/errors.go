package errors

import "fmt"

// Application error types organized by category for better error handling

type ErrorType string

// Request Errors - errors produced directly by request dispatch
const (
	NotFoundError         ErrorType = "NOT_FOUND_ERROR"
	MethodNotAllowedError ErrorType = "METHOD_NOT_ALLOWED_ERROR"
)

// Infrastructure Errors - errors related to external collaborators
const (
	LocationError        ErrorType = "LOCATION_ERROR"
	UpstreamNetworkError ErrorType = "UPSTREAM_NETWORK_ERROR"
	UpstreamStatusError  ErrorType = "UPSTREAM_STATUS_ERROR"
	UpstreamDecodeError  ErrorType = "UPSTREAM_DECODE_ERROR"
	UpstreamTimeoutError ErrorType = "UPSTREAM_TIMEOUT_ERROR"
)

// System/Contract Errors - errors related to configuration and upstream schema
const (
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
	DataContractError  ErrorType = "DATA_CONTRACT_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Request Error Constructors
func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewMethodNotAllowedError(message string) *AppError {
	return New(MethodNotAllowedError, message)
}

// Infrastructure Error Constructors
func NewLocationError(message string, cause error) *AppError {
	return Wrap(LocationError, message, cause)
}

func NewUpstreamNetworkError(message string, cause error) *AppError {
	return Wrap(UpstreamNetworkError, message, cause)
}

func NewUpstreamStatusError(message string, cause error) *AppError {
	return Wrap(UpstreamStatusError, message, cause)
}

func NewUpstreamDecodeError(message string, cause error) *AppError {
	return Wrap(UpstreamDecodeError, message, cause)
}

func NewUpstreamTimeoutError(message string, cause error) *AppError {
	return Wrap(UpstreamTimeoutError, message, cause)
}

// System/Contract Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

func NewDataContractError(message string) *AppError {
	return New(DataContractError, message)
}
