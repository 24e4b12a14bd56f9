package models

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
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

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// NewInvalidScheduleError reports an event scheduled into the past.
func NewInvalidScheduleError() *AppError {
	return &AppError{
		Code:    "INVALID_SCHEDULE",
		Message: "Event date must be in the future",
	}
}

// NewInvalidUsernameError reports a username outside the allowed character set.
func NewInvalidUsernameError() *AppError {
	return &AppError{
		Code:    "INVALID_USERNAME",
		Message: "Username may only contain letters, digits and @/./+/-/_",
	}
}

// NewDuplicateEmailError reports a registration attempt with an email that is
// already taken (compared case-insensitively).
func NewDuplicateEmailError() *AppError {
	return &AppError{
		Code:    "DUPLICATE_EMAIL",
		Message: "A user with that email already exists",
	}
}

// NewPasswordMismatchError reports that password and confirmation differ.
func NewPasswordMismatchError() *AppError {
	return &AppError{
		Code:    "PASSWORD_MISMATCH",
		Message: "Passwords do not match",
	}
}

// NewWeakPasswordError carries the reasons reported by the password policy.
func NewWeakPasswordError(reasons []string) *AppError {
	return &AppError{
		Code:    "WEAK_PASSWORD",
		Message: "Password is too weak",
		Err:     fmt.Errorf("%s", strings.Join(reasons, "; ")),
	}
}

// NewAuthorizationDeniedError reports a user-facing authorization denial.
// It never mutates state and is always surfaced as a 403, not a hard failure.
func NewAuthorizationDeniedError(message string) *AppError {
	return &AppError{
		Code:    "AUTHORIZATION_DENIED",
		Message: message,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
