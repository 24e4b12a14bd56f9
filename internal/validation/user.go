// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"

	"github.com/Izanmg/streamevents/internal/models"
)

// usernameRegex mirrors the classic "word characters plus @/./+/-" rule.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.@+-]+$`)

// emailRegex is a pragmatic format check, not a full RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername checks the username against the allowed character set.
func ValidateUsername(username string) error {
	if username == "" || !usernameRegex.MatchString(username) {
		return models.NewInvalidUsernameError()
	}
	if len(username) > 150 {
		return models.NewValidationError("Username must not exceed 150 characters")
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}
