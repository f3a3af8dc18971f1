package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrKeyInactive        = errors.New("api key invalid or inactive")
	ErrValidation         = errors.New("validation error")
	ErrInvalidInput       = errors.New("invalid input")
)

// Custom error type with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Err: ErrUnauthorized}
}

func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, Err: ErrForbidden}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password", Err: ErrInvalidCredentials}
}

func TokenExpired(msg string) *AppError {
	return &AppError{Code: "TOKEN_EXPIRED", Message: msg, Err: ErrTokenExpired}
}

func TokenInvalid(msg string) *AppError {
	return &AppError{Code: "TOKEN_INVALID", Message: msg, Err: ErrTokenInvalid}
}

func EmailExists(msg string) *AppError {
	return &AppError{Code: "EMAIL_EXISTS", Message: msg, Err: ErrEmailExists}
}

func UsernameExists(msg string) *AppError {
	return &AppError{Code: "USERNAME_EXISTS", Message: msg, Err: ErrUsernameExists}
}

func KeyInactive(msg string) *AppError {
	return &AppError{Code: "API_KEY_INACTIVE", Message: msg, Err: ErrKeyInactive}
}

func Validation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, Err: ErrValidation}
}
