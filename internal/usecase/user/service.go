package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

// minPasswordLength is the minimum accepted password length in bytes.
const minPasswordLength = 8

// RegisterInput represents the input parameters for registering a new user.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Interests []string
}

// Service provides user account use cases.
// It handles registration and credential verification and delegates
// persistence to the repository.
type Service struct {
	Repo repository.UserRepository
}

// Register creates a new user account with a bcrypt-hashed password.
// Interests are normalized (lowercased, deduplicated) before storage.
// Returns a ValidationError if any input field is invalid and
// ErrDuplicateUser if the username or email is already taken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := entity.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, &entity.ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}

	interests, err := entity.NormalizeTags("interests", in.Interests)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Interests:    interests,
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies the email/password pair and returns the matching
// user. Returns ErrInvalidCredentials for an unknown email or a wrong
// password; the two cases are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get retrieves a user by ID. Returns ErrUserNotFound if no such user exists.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
