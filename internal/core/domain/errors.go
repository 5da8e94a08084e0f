package domain

import "errors"

var (
	// ErrValidation wraps one or more violated entity invariants.
	ErrValidation = errors.New("validation failed")

	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenInvalid covers malformed, tampered and expired tokens alike.
	ErrTokenInvalid = errors.New("token is invalid or expired")
	// ErrUnknownSubject means the token verified but its subject no longer
	// resolves to a stored user. Still a 401 at the HTTP boundary.
	ErrUnknownSubject = errors.New("token subject does not resolve to a user")
)
