package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/Izanmg/streamevents/internal/models"
)

var (
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// PasswordPolicy is a pluggable strength rule set. Validate returns every
// reason the password fails; an empty slice means the password passes.
type PasswordPolicy interface {
	Validate(password string) []string
}

// StrengthPolicy is the default PasswordPolicy. The zero value is not
// usable; construct it with DefaultPasswordPolicy.
type StrengthPolicy struct {
	MinLength      int
	MaxLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireDigit   bool
	RequireSpecial bool
}

// DefaultPasswordPolicy returns the policy applied at registration unless a
// different one is injected.
func DefaultPasswordPolicy() StrengthPolicy {
	return StrengthPolicy{
		MinLength:      12,
		MaxLength:      128,
		RequireUpper:   true,
		RequireLower:   true,
		RequireDigit:   true,
		RequireSpecial: true,
	}
}

// Validate implements PasswordPolicy.
func (p StrengthPolicy) Validate(password string) []string {
	var reasons []string

	if len(password) < p.MinLength {
		reasons = append(reasons, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		reasons = append(reasons, fmt.Sprintf("password must not exceed %d characters", p.MaxLength))
	}

	if p.RequireUpper {
		hasUpper := false
		for _, r := range password {
			if unicode.IsUpper(r) {
				hasUpper = true
				break
			}
		}
		if !hasUpper {
			reasons = append(reasons, "password must contain at least one uppercase letter")
		}
	}

	if p.RequireLower {
		hasLower := false
		for _, r := range password {
			if unicode.IsLower(r) {
				hasLower = true
				break
			}
		}
		if !hasLower {
			reasons = append(reasons, "password must contain at least one lowercase letter")
		}
	}

	if p.RequireDigit && !digitRegex.MatchString(password) {
		reasons = append(reasons, "password must contain at least one digit")
	}

	if p.RequireSpecial && !specialRegex.MatchString(password) {
		reasons = append(reasons, "password must contain at least one special character (!@#$%^&*)")
	}

	return reasons
}

// ValidatePasswordStrength runs the password through the given policy and
// converts any failures into a WeakPassword error carrying all reasons.
func ValidatePasswordStrength(password string, policy PasswordPolicy) error {
	if reasons := policy.Validate(password); len(reasons) > 0 {
		return models.NewWeakPasswordError(reasons)
	}
	return nil
}

// ValidatePasswordConfirmation checks that the password and its confirmation
// field match exactly.
func ValidatePasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		return models.NewPasswordMismatchError()
	}
	return nil
}
