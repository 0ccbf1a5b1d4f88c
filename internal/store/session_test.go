package store

import (
	"testing"

	"github.com/JosiahVarughese/mojo-social/internal/models"
)

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		want     Failure
	}{
		{"empty username", "", "Abc123!", FailEmptyUsername},
		{"short username", "abc", "Abc123!", FailShortUsername},
		{"empty password", "alice", "", FailEmptyPassword},
		{"weak password", "alice", "abcdef", FailWeakPassword},
		{"valid", "alice", "Abc123!", FailNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestStore(t)
			u, f := s.Register(c.username, c.password)
			if f != c.want {
				t.Fatalf("Register = %v, want %v", f, c.want)
			}
			if c.want == FailNone && u.ID == "" {
				t.Fatal("successful registration returned the null user")
			}
			if c.want != FailNone && u.ID != "" {
				t.Fatal("failed registration returned a real user")
			}
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	s := newTestStore(t)
	if _, f := s.Register("alice", "Abc123!"); f != FailNone {
		t.Fatalf("register: %v", f)
	}
	if _, f := s.Login("alice", "Abc123!"); f != FailNone {
		t.Fatalf("login: %v", f)
	}
	if got := s.CurrentSession().Username; got != "alice" {
		t.Fatalf("current session = %q, want alice", got)
	}
	if _, f := s.Login("alice", "wrong!1"); f != FailWrongPassword {
		t.Fatalf("wrong password = %v, want %v", f, FailWrongPassword)
	}
}

func TestLoginFailures(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "alice")

	if _, f := s.Login("", "x"); f != FailEmptyUsername {
		t.Fatalf("empty username = %v", f)
	}
	if _, f := s.Login("alice", ""); f != FailEmptyPassword {
		t.Fatalf("empty password = %v", f)
	}
	if _, f := s.Login("nobody", "Abc123!"); f != FailUnknownUsername {
		t.Fatalf("unknown username = %v", f)
	}
}

// Registration never checks for duplicates; login matches the first
// account with the username, so the later registration is unreachable.
func TestDuplicateUsernamesAllowed(t *testing.T) {
	s := newTestStore(t)
	first, f := s.Register("alice", "Abc123!")
	if f != FailNone {
		t.Fatalf("first register: %v", f)
	}
	second, f := s.Register("alice", "Xyz789?")
	if f != FailNone {
		t.Fatalf("duplicate register: %v", f)
	}
	if first.ID == second.ID {
		t.Fatal("duplicate accounts share an id")
	}

	got, f := s.Login("alice", "Abc123!")
	if f != FailNone || got.ID != first.ID {
		t.Fatalf("login resolved %v (%v), want the first account", got.ID, f)
	}
	if _, f := s.Login("alice", "Xyz789?"); f != FailWrongPassword {
		t.Fatalf("second account's password = %v, want %v", f, FailWrongPassword)
	}
}

func TestLoginNotificationOrder(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "alice")

	var order []string
	s.Session.Subscribe(func(models.User) { order = append(order, "session") })
	s.Inbox.Subscribe(func([]*models.Thread) { order = append(order, "inbox") })
	s.Feed.Subscribe(func([]*models.Post) { order = append(order, "feed") })

	s.Login("alice", "Abc123!")

	want := []string{"session", "inbox", "feed"}
	if len(order) != len(want) {
		t.Fatalf("events %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("events %v, want %v", order, want)
		}
	}
}

// Logout must not fire the inbox stream: the resulting session is the
// null sentinel and has no inbox to update.
func TestLogoutSkipsInboxNotification(t *testing.T) {
	s := newTestStore(t)
	registerAndLogin(t, s, "alice")

	var order []string
	s.Session.Subscribe(func(u models.User) {
		order = append(order, "session")
		if !u.IsNull() {
			t.Errorf("logout published session %+v, want null", u)
		}
	})
	s.Inbox.Subscribe(func([]*models.Thread) { order = append(order, "inbox") })
	s.Feed.Subscribe(func([]*models.Post) { order = append(order, "feed") })

	s.Logout()

	if len(order) != 2 || order[0] != "session" || order[1] != "feed" {
		t.Fatalf("events %v, want [session feed]", order)
	}
	if !s.CurrentSession().IsNull() {
		t.Fatal("session not reset to the null sentinel")
	}
}

func TestCurrentSessionIsACopy(t *testing.T) {
	s := newTestStore(t)
	registerAndLogin(t, s, "alice")

	u := s.CurrentSession()
	u.Username = "mallory"
	u.ID = "forged"

	if got := s.CurrentSession(); got.Username != "alice" {
		t.Fatalf("stored session mutated: %+v", got)
	}
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t)
	register(t, s, "alice")
	register(t, s, "bobby")
	registerAndLogin(t, s, "carol")

	if got := len(s.ListUsers(false)); got != 3 {
		t.Fatalf("ListUsers(false) = %d users, want 3", got)
	}
	for _, u := range s.ListUsers(true) {
		if u.Username == "carol" {
			t.Fatal("ListUsers(true) includes the active session")
		}
	}
	if got := len(s.ListUsers(true)); got != 2 {
		t.Fatalf("ListUsers(true) = %d users, want 2", got)
	}
}

func TestFindUserByName(t *testing.T) {
	s := newTestStore(t)
	alice := register(t, s, "alice")

	if got := s.FindUserByName("alice"); got.ID != alice.ID {
		t.Fatalf("found %+v, want alice", got)
	}
	if got := s.FindUserByName("nobody"); !got.IsNull() {
		t.Fatalf("miss returned %+v, want the null sentinel", got)
	}
}
