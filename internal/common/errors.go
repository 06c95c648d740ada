// Package common defines shared constants and sentinel errors used across
// the service and repository layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential verification errors. Both map to the same client-facing
	// rejection; the distinction is internal only.
	ErrUnknownUser   = errors.New("unknown user")
	ErrWrongPassword = errors.New("wrong password")

	// Session errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")

	// Registration errors.
	ErrEmailTaken = errors.New("email already registered")
)
