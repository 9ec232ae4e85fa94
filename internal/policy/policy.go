// Package policy holds the credential rules: password strength checks and
// password hashing. Everything here is pure with respect to the store.
package policy

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// StrengthMessage is the single combined message for any failed strength
// check, kept compatible with the registration form copy.
const StrengthMessage = "Password must be at least 8 characters with uppercase, lowercase, and a number"

// MinPasswordLength is the strength floor on password length.
const MinPasswordLength = 8

// IsPasswordStrong reports whether the password satisfies the strength floor:
// at least 8 characters with at least one ASCII uppercase letter, one ASCII
// lowercase letter, and one decimal digit. The rules are deliberately ASCII
// only to keep the policy auditable.
func IsPasswordStrong(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range []byte(password) {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// HashPassword derives the stored form of a password: a salted bcrypt hash.
// Raw passwords never reach the store.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
