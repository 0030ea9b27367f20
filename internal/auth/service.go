// Package auth handles the login/logout flow: credential verification
// followed by issuing or revoking an opaque session token.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/filebox/service/internal/account"
	"github.com/filebox/service/internal/apperr"
	"github.com/filebox/service/internal/session"
)

// Service composes the credential check with the session store.
type Service struct {
	accounts *account.Service
	sessions session.Store
}

// NewService creates a new auth Service.
func NewService(accounts *account.Service, sessions session.Store) *Service {
	return &Service{accounts: accounts, sessions: sessions}
}

// Connect verifies the credentials and mints a new session token. Each call
// creates an independent session; tokens are never reused across logins.
func (s *Service) Connect(ctx context.Context, email, password string) (string, error) {
	accountID, err := s.accounts.VerifyCredentials(ctx, email, password)
	if errors.Is(err, account.ErrInvalidCredentials) {
		return "", apperr.New(apperr.KindUnauthenticated, "Unauthorized")
	}
	if err != nil {
		return "", fmt.Errorf("verify credentials: %w", err)
	}

	token, err := s.sessions.Issue(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Disconnect revokes the session token.
func (s *Service) Disconnect(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
