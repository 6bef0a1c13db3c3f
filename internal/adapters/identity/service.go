// Package identity wraps account persistence and session issuance behind a
// single sign-up/sign-in surface, so callers do not talk to the account store
// and session store separately.
package identity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"usra/internal/adapters/http/middleware"
	accountstore "usra/internal/adapters/storage/account"
	"usra/internal/domain/account"

	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned when an account already exists for the email.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// Service implements account creation and session management.
type Service struct {
	accounts accountstore.Store
	sessions *middleware.SessionStore

	// Injected for testability.
	Now        func() time.Time
	GenerateID func() string
}

// NewService creates an identity service over the given stores.
func NewService(accounts accountstore.Store, sessions *middleware.SessionStore) *Service {
	return &Service{
		accounts:   accounts,
		sessions:   sessions,
		Now:        time.Now,
		GenerateID: func() string { return uuid.New().String() },
	}
}

// CreateAccount creates a school representative account.
// PRE: email non-empty, password meets the minimum length
// POST: Account persisted with hashed password; returns the new account ID
// INVARIANT: Email must be unique
func (s *Service) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if email == "" {
		return "", errors.New("email cannot be empty")
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		slog.Info("auth_event", "event", "signup_rejected", "email", email, "reason", "email_taken")
		return "", ErrEmailTaken
	}

	acct := account.Account{
		ID:          s.GenerateID(),
		Email:       email,
		DisplayName: displayName,
		Role:        account.RoleSchoolRep,
		CreatedAt:   s.Now(),
	}
	if err := acct.Validate(); err != nil {
		return "", err
	}
	if err := acct.SetPassword(password); err != nil {
		return "", err
	}
	if err := s.accounts.Save(ctx, acct); err != nil {
		return "", err
	}

	slog.Info("auth_event", "event", "account_created", "email", email, "role", acct.Role)
	return acct.ID, nil
}

// CreateSession issues a session token for the given account.
// PRE: accountID refers to an existing account
// POST: Session is active; returns the token
func (s *Service) CreateSession(ctx context.Context, accountID string) (string, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	token, err := s.sessions.Create(acct.ID, acct.Email, acct.Role)
	if err != nil {
		return "", err
	}
	slog.Info("auth_event", "event", "session_created", "account_id", accountID)
	return token, nil
}

// DeleteSession revokes a session token. Unknown tokens are a no-op.
func (s *Service) DeleteSession(ctx context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}
