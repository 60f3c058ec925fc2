package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validation here is presence-only: fields must be supplied and the password
// confirmation must match. There is no format or complexity policy.

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidateRegistrationInput enforces presence of the registration fields and
// that the password matches its confirmation.
func ValidateRegistrationInput(username, email, password, confirmedPassword string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if !SamePassword(password, confirmedPassword) {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateNewPassword is the same rule for the reset form, which only carries
// the password pair.
func ValidateNewPassword(password, confirmedPassword string) error {
	if password == "" {
		return ErrMissingFields
	}
	if !SamePassword(password, confirmedPassword) {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateContactInput enforces presence of every contact field. Content is
// not sanitized beyond that.
func ValidateContactInput(mobile, email, address, registrationNumber string) error {
	if mobile == "" || email == "" || address == "" || registrationNumber == "" {
		return fmt.Errorf("all fields are required")
	}
	return nil
}

func SamePassword(password string, confirmedPassword string) bool {
	return password == confirmedPassword
}
