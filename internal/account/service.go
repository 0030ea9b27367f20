package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/filebox/service/internal/apperr"
)

// ErrInvalidCredentials is returned when email/password verification fails.
// Callers must not distinguish "unknown email" from "wrong password".
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service contains business logic for account management and credential
// verification.
type Service struct {
	repo Repository
}

// NewService creates a new account Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, password string) (*Account, error) {
	if email == "" {
		return nil, apperr.New(apperr.KindValidationFailed, "Missing email")
	}
	if password == "" {
		return nil, apperr.New(apperr.KindValidationFailed, "Missing password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a, err := s.repo.Create(ctx, email, string(hash))
	if errors.Is(err, ErrAlreadyExists) {
		return nil, apperr.New(apperr.KindAlreadyExists, "Already exist")
	}
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

// VerifyCredentials checks the email/password pair and returns the account
// id on success. Unknown email and wrong password both yield
// ErrInvalidCredentials.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("get account by email: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return a.ID, nil
}

// GetByID returns the account for the id.
func (s *Service) GetByID(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

// Count returns the number of registered accounts.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// IsNotFound returns true when the error indicates an account was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
