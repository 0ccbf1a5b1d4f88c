package store

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/JosiahVarughese/mojo-social/internal/clock"
	"github.com/JosiahVarughese/mojo-social/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, clock.Stepped(clock.Epoch, time.Minute))
}

// registerAndLogin registers an account and makes it the active session.
func registerAndLogin(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	u := register(t, s, username)
	if _, f := s.Login(username, "Abc123!"); f != FailNone {
		t.Fatalf("login %q failed: %v", username, f)
	}
	return u
}

func register(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	u, f := s.Register(username, "Abc123!")
	if f != FailNone {
		t.Fatalf("register %q failed: %v", username, f)
	}
	return u
}
