package auth

import (
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

var (
	// ErrInvalidEmail indicates a missing or malformed email address.
	ErrInvalidEmail = apperrors.New(apperrors.CodeAuthInvalidEmail, "a valid email is required")
	// ErrWeakPassword indicates a password below the minimum length.
	ErrWeakPassword = apperrors.New(apperrors.CodeAuthWeakPassword, "password is too short")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = apperrors.New(apperrors.CodeAuthEmailTaken, "email already registered")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = apperrors.New(apperrors.CodeAuthInvalidCredentials, "invalid login credentials")
)

// Account represents a registered participant identity.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and validates an email address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
