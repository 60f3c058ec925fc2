package utils

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicateRegistration = errors.New("registration number already exists for this user")
	ErrContactNotFound       = errors.New("contact not found")
	ErrResetTokenInvalid     = errors.New("reset token is invalid or has expired")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrMissingFields         = errors.New("all fields are required")
	ErrPasswordMismatch      = errors.New("passwords do not match")
)
