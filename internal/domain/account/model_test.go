package account

import (
	"errors"
	"testing"
	"time"
)

func validAccount() Account {
	return Account{
		ID:        "acct-001",
		Email:     "head@school.ug",
		Role:      RoleSchoolRep,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestValidate(t *testing.T) {
	a := validAccount()
	if err := a.Validate(); err != nil {
		t.Fatalf("valid account rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Account)
		want   error
	}{
		{"empty email", func(a *Account) { a.Email = "" }, ErrEmptyEmail},
		{"email missing at", func(a *Account) { a.Email = "not-an-email" }, ErrInvalidEmail},
		{"unknown role", func(a *Account) { a.Role = "referee" }, ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAccount()
			tc.mutate(&a)
			if err := a.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSetPassword(t *testing.T) {
	a := validAccount()

	if err := a.SetPassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("empty password err = %v, want ErrEmptyPassword", err)
	}
	if err := a.SetPassword("seven77"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("7-char password err = %v, want ErrPasswordTooShort", err)
	}
	if err := a.SetPassword("eight888"); err != nil {
		t.Fatalf("8-char password rejected: %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "eight888" {
		t.Error("password not hashed")
	}
}

func TestCheckPassword(t *testing.T) {
	a := validAccount()
	if err := a.SetPassword("correct-horse"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}

	if err := a.CheckPassword("correct-horse"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := a.CheckPassword("wrong-horse"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password err = %v, want ErrWrongPassword", err)
	}
}

func TestLockout(t *testing.T) {
	a := validAccount()
	if a.IsLocked() {
		t.Fatal("fresh account should not be locked")
	}

	for i := 0; i < 4; i++ {
		a.RecordFailedLogin()
	}
	if a.IsLocked() {
		t.Error("locked before reaching the threshold")
	}

	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Error("not locked after 5 failed logins")
	}

	a.ResetFailedLogins()
	if a.IsLocked() {
		t.Error("still locked after reset")
	}
	if a.FailedLogins != 0 {
		t.Errorf("FailedLogins = %d after reset, want 0", a.FailedLogins)
	}
}

func TestIsAdmin(t *testing.T) {
	a := validAccount()
	if a.IsAdmin() {
		t.Error("school rep should not be admin")
	}
	a.Role = RoleAdmin
	if !a.IsAdmin() {
		t.Error("admin role not recognized")
	}
}
