package services

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 8

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateSignupInput(name string, email string, password string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("name", "must not be empty")
	}
	if err := ValidateLoginInput(email, password); err != nil {
		return err
	}
	return nil
}

func ValidateLoginInput(email string, password string) error {
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return newValidationError("email", "must be a valid email address")
	}
	if len([]rune(password)) < minPasswordLength {
		return newValidationError("password", "must be at least 8 characters")
	}
	return nil
}
