package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"usra/internal/adapters/http/middleware"
	"usra/internal/adapters/storage"
	"usra/internal/domain/account"
)

// mockAccountStore implements the account store over a map.
type mockAccountStore struct {
	accounts map[string]account.Account
	saveErr  error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]account.Account)}
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return account.Account{}, storage.ErrNotFound
	}
	return a, nil
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, storage.ErrNotFound
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.accounts[a.ID] = a
	return nil
}

func newTestService(store *mockAccountStore) *Service {
	svc := NewService(store, middleware.NewSessionStore())
	svc.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.GenerateID = func() string { return "acct-001" }
	return svc
}

func TestCreateAccount_Valid(t *testing.T) {
	store := newMockAccountStore()
	svc := newTestService(store)

	id, err := svc.CreateAccount(context.Background(), "head@school.ug", "longenough1", "Jane Okello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "acct-001" {
		t.Errorf("id = %q, want acct-001", id)
	}

	saved, ok := store.accounts["acct-001"]
	if !ok {
		t.Fatal("account not persisted")
	}
	if saved.Role != account.RoleSchoolRep {
		t.Errorf("role = %q, want %q", saved.Role, account.RoleSchoolRep)
	}
	if saved.PasswordHash == "" || saved.PasswordHash == "longenough1" {
		t.Error("password not hashed")
	}
	if err := saved.CheckPassword("longenough1"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	store := newMockAccountStore()
	svc := newTestService(store)

	if _, err := svc.CreateAccount(context.Background(), "head@school.ug", "longenough1", ""); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	svc.GenerateID = func() string { return "acct-002" }
	_, err := svc.CreateAccount(context.Background(), "head@school.ug", "different1", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
	if len(store.accounts) != 1 {
		t.Errorf("store has %d accounts, want 1", len(store.accounts))
	}
}

func TestCreateAccount_ShortPassword(t *testing.T) {
	store := newMockAccountStore()
	svc := newTestService(store)

	_, err := svc.CreateAccount(context.Background(), "head@school.ug", "short", "")
	if !errors.Is(err, account.ErrPasswordTooShort) {
		t.Errorf("err = %v, want ErrPasswordTooShort", err)
	}
	if len(store.accounts) != 0 {
		t.Error("account should not be persisted on password failure")
	}
}

func TestCreateSession_RoundTrip(t *testing.T) {
	store := newMockAccountStore()
	sessions := middleware.NewSessionStore()
	svc := NewService(store, sessions)
	svc.GenerateID = func() string { return "acct-001" }

	id, err := svc.CreateAccount(context.Background(), "head@school.ug", "longenough1", "")
	if err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	token, err := svc.CreateSession(context.Background(), id)
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	sess, ok := sessions.Get(token)
	if !ok {
		t.Fatal("session not stored")
	}
	if sess.AccountID != id {
		t.Errorf("session account = %q, want %q", sess.AccountID, id)
	}

	if err := svc.DeleteSession(context.Background(), token); err != nil {
		t.Fatalf("delete session failed: %v", err)
	}
	if _, ok := sessions.Get(token); ok {
		t.Error("session still present after delete")
	}
}

func TestCreateSession_UnknownAccount(t *testing.T) {
	svc := newTestService(newMockAccountStore())

	_, err := svc.CreateSession(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
