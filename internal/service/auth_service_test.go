package service

import (
	"errors"
	"testing"
	"time"

	"github.com/festpix/festpix-backend/internal/models"
)

func TestRegisterCreatesOrganizerWithDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)

	resp, err := env.auth.Register(models.RegisterRequest{
		Username: "fiona",
		Email:    "fiona@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.Role != models.RoleEventOrganizer {
		t.Fatalf("expected default role, got %q", resp.User.Role)
	}
	if resp.User.UploadRateLimit != models.DefaultUploadRateLimit {
		t.Fatalf("expected default rate limit, got %d", resp.User.UploadRateLimit)
	}
	if !resp.User.IsActive {
		t.Fatalf("new accounts must start active")
	}
	if resp.User.Password == "hunter22" {
		t.Fatalf("password must be stored hashed")
	}

	// Welcome mail goes out asynchronously.
	deadline := time.Now().Add(2 * time.Second)
	for {
		env.email.mu.Lock()
		sent := len(env.email.sent)
		env.email.mu.Unlock()
		if sent == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("welcome email never sent")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRegisterPersistsZeroRateLimit(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)

	resp, err := env.auth.Register(models.RegisterRequest{
		Username:        "greta",
		Email:           "greta@example.com",
		Password:        "hunter22",
		UploadRateLimit: intPtr(0),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Read back from the database: an explicit 0 must survive the insert,
	// not be replaced by the default.
	stored, err := env.users.GetUserByID(resp.User.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.UploadRateLimit != 0 {
		t.Fatalf("inserted rate limit 0, database holds %d", stored.UploadRateLimit)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)
	env.createOrganizer(t, "gita", 10)

	_, err := env.auth.Register(models.RegisterRequest{
		Username: "other",
		Email:    "gita@example.com",
		Password: "hunter22",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)
	env.createOrganizer(t, "hans", 10)

	_, err := env.auth.Register(models.RegisterRequest{
		Username: "hans",
		Email:    "fresh@example.com",
		Password: "hunter22",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)

	if _, err := env.auth.Register(models.RegisterRequest{
		Username: "ines",
		Email:    "ines@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := env.auth.Login(models.LoginRequest{
		Email:    "ines@example.com",
		Password: "wrong-horse",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Unknown accounts look the same as a bad password.
	_, err = env.auth.Login(models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)

	resp, err := env.auth.Register(models.RegisterRequest{
		Username: "jana",
		Email:    "jana@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := env.users.DeactivateUser(resp.User.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err = env.auth.Login(models.LoginRequest{
		Email:    "jana@example.com",
		Password: "correct-horse",
	})
	if !errors.Is(err, ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestLoginSucceeds(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	env := newTestEnv(t)

	if _, err := env.auth.Register(models.RegisterRequest{
		Username: "kira",
		Email:    "kira@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := env.auth.Login(models.LoginRequest{
		Email:    "kira@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
}
