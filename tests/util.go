package testutil

import (
	"context"
	"net/mail"
	"testing"
	"time"

	"github.com/campushelper/backend/core"
	"github.com/campushelper/backend/core/user"
)

// NewConfig returns a self-contained test configuration; nothing is read from
// the environment so tests stay hermetic.
func NewConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		Debug:            false,
		TestMode:         true,
		AppName:          "Campus Helper",
		Build:            "test",
		SecretKey:        []byte("secret test key"),
		FrontendBaseURL:  "http://localhost:5173",
		DefaultFromEmail: mail.Address{Name: "Campus Helper", Address: "noreply@test.cd"},
		Server: core.ServerConfig{
			JWTExpirationDelta:        time.Hour,
			PasswordResetTimeoutDelta: 3 * 24 * time.Hour,
		},
	}
}

// CreateUser persists a user fixture directly through the repository,
// bypassing service-level side effects.
func CreateUser(t *testing.T, repo user.Repository, email, pwd, role string) user.User {
	t.Helper()

	now := time.Now().UTC()
	usr := user.User{
		Email:     core.CleanString(email, true /* lower */),
		Role:      user.NormalizeRole(role),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("SetPassword() failed, %v", err)
	}

	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed, %v", err)
	}
	return usr
}
