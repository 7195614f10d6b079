// Package errors provides structured domain errors with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Auth errors
	CodeAuthInvalidCredentials Code = "AUTH_INVALID_CREDENTIALS"
	CodeAuthEmailNotConfirmed  Code = "AUTH_EMAIL_NOT_CONFIRMED"
	CodeAuthEmailTaken         Code = "AUTH_EMAIL_TAKEN"
	CodeAuthInvalidEmail       Code = "AUTH_INVALID_EMAIL"
	CodeAuthWeakPassword       Code = "AUTH_WEAK_PASSWORD"
	CodeAuthInvalidToken       Code = "AUTH_INVALID_TOKEN"

	// Profile errors
	CodeProfileNotFound        Code = "PROFILE_NOT_FOUND"
	CodeProfileUsernameTaken   Code = "PROFILE_USERNAME_TAKEN"
	CodeProfileInvalidUsername Code = "PROFILE_INVALID_USERNAME"
	CodeProfileImageTooLarge   Code = "PROFILE_IMAGE_TOO_LARGE"
	CodeProfileImageBadType    Code = "PROFILE_IMAGE_BAD_TYPE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)
