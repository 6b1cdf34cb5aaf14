package validation

import (
	"net/mail"
)

// ValidateEmail validates email format and length using Go's built-in
// RFC 5322 parser.
func ValidateEmail(email string) error {
	// RFC 5321: total address max 254 characters with @
	if len(email) > 254 {
		return errorf("email address is too long (max 254 characters)")
	}

	if email == "" {
		return errorf("email address is required")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errorf("invalid email address format")
	}

	return nil
}
