// Package common defines shared constants and sentinel errors used across
// the layers of the hub. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidPosition  = errors.New("invalid row position")

	// Directory / repository errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Auth errors.
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
)
