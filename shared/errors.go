package shared

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeForbidden          = "FORBIDDEN"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeStore              = "STORE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError carries the HTTP status and public message for a failure
// alongside the underlying cause.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
	Data       interface{}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(statusCode int, code string, err error, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

func NewValidationError(err error, message string, data interface{}) *AppError {
	appErr := newAppError(http.StatusBadRequest, CodeValidation, err, message)
	appErr.Data = data
	return appErr
}

func NewBadRequestError(err error, message string) *AppError {
	return newAppError(http.StatusBadRequest, CodeBadRequest, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	return newAppError(http.StatusNotFound, CodeNotFound, err, message)
}

func NewConflictError(err error, message string) *AppError {
	return newAppError(http.StatusConflict, CodeConflict, err, message)
}

func NewForbiddenError(err error, message string) *AppError {
	return newAppError(http.StatusForbidden, CodeForbidden, err, message)
}

func NewTooManyRequestsError(message string, data interface{}) *AppError {
	appErr := newAppError(http.StatusTooManyRequests, CodeTooManyRequests, nil, message)
	appErr.Data = data
	return appErr
}

func NewServiceUnavailableError(err error, message string) *AppError {
	return newAppError(http.StatusServiceUnavailable, CodeServiceUnavailable, err, message)
}

// NewStoreError wraps a persistence failure. Store errors are never retried.
func NewStoreError(err error, message string) *AppError {
	return newAppError(http.StatusInternalServerError, CodeStore, err, message)
}

func NewInternalError(err error, message string) *AppError {
	return newAppError(http.StatusInternalServerError, CodeInternal, err, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Code == code
}

func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func IsConflict(err error) bool {
	return hasCode(err, CodeConflict)
}

func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func IsStoreError(err error) bool {
	return hasCode(err, CodeStore)
}
