// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as User,
// Article and Interaction, along with their validation rules and domain-specific
// errors.
package entity

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
)

// emailPattern is a pragmatic RFC-ish email check. Stricter validation is
// delegated to the mail provider at delivery time.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered account in the system.
// Identity fields (Username, Email) are immutable after registration.
// PasswordHash holds a bcrypt hash, never the raw credential.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Interests    []string
	CreatedAt    time.Time
}

// ValidateUsername checks the username length constraints.
// Returns a ValidationError describing the first violated rule.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must be between %d and %d characters", minUsernameLength, maxUsernameLength),
		}
	}
	return nil
}

// ValidateEmail checks the email address format.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}
