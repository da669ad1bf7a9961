package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidState       = errors.New("invalid state")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAmount      = errors.New("amount must be a non-negative number")
	ErrInvalidTarget      = errors.New("monthly target must be positive")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// Validation constants
const (
	MaxProfileNameLength = 255
	MinPasswordLength    = 6
)
