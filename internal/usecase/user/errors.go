// Package user provides use cases for account registration and credential
// verification.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrDuplicateUser indicates that the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrInvalidCredentials indicates that the email/password pair did not
	// match a known account. Deliberately vague to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)
