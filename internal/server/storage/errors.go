package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSettingsNotFound indicates that no settings document is stored
	// for the requested user/platform pair
	ErrSettingsNotFound = errors.New("privacy settings not found")
)
