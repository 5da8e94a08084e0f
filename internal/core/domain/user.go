package domain

import (
	"fmt"
	"time"
	"unicode"
)

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidateUsername enforces the 3 to 50 character bound.
func ValidateUsername(username string) error {
	if n := len(username); n < 3 || n > 50 {
		return fmt.Errorf("%w: username must be between 3 and 50 characters", ErrValidation)
	}
	return nil
}

// ValidatePassword enforces the registration password policy: minimum eight
// characters with at least one uppercase letter, one lowercase letter and one
// digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if !upper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", ErrValidation)
	}
	if !lower {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", ErrValidation)
	}
	if !digit {
		return fmt.Errorf("%w: password must contain at least one digit", ErrValidation)
	}
	return nil
}
