package store

import (
	"testing"

	"github.com/JosiahVarughese/mojo-social/internal/models"
)

func TestPopulateSampleData(t *testing.T) {
	s := newTestStore(t)
	s.PopulateSampleData(nil)

	roster := DefaultRoster()

	if got := s.CurrentSession().Username; got != "MoJo" {
		t.Fatalf("active session = %q, want MoJo", got)
	}
	if got := len(s.ListUsers(false)); got != len(roster)+1 {
		t.Fatalf("%d accounts, want %d", got, len(roster)+1)
	}
	if got := len(s.ListUsers(true)); got != len(roster) {
		t.Fatalf("ListUsers(true) = %d, want %d", got, len(roster))
	}
	if got := len(s.ListPosts()); got != len(roster) {
		t.Fatalf("%d posts, want one per roster name", got)
	}

	// One pair thread per dummy plus the shared group thread.
	inbox := s.ListInbox()
	if got := len(inbox); got != len(roster)+1 {
		t.Fatalf("MoJo has %d threads, want %d", got, len(roster)+1)
	}

	var group *models.Thread
	for _, th := range inbox {
		if len(th.Users) == 4 {
			group = th
		}
	}
	if group == nil {
		t.Fatal("no group thread seeded")
	}
	if got := len(group.Messages); got != 3 {
		t.Fatalf("group thread has %d messages, want 3", got)
	}
	for _, m := range group.Messages {
		if m.Content != "This is a group message test." || m.Type != models.MessageDM {
			t.Fatalf("group message = %+v", m)
		}
	}

	// Every seeded account can log in with the shared password.
	for _, name := range roster {
		if _, f := s.Login(name, SeedPassword); f != FailNone {
			t.Fatalf("seeded account %q cannot log in: %v", name, f)
		}
	}
}

func TestPopulateSampleDataCustomRoster(t *testing.T) {
	s := newTestStore(t)
	s.PopulateSampleData([]string{"Ziggy", "Trillian"})

	if got := len(s.ListUsers(false)); got != 3 {
		t.Fatalf("%d accounts, want 3", got)
	}
	if got := len(s.ListPosts()); got != 2 {
		t.Fatalf("%d posts, want 2", got)
	}
	// Fewer than three dummies: no group thread.
	if got := len(s.ListInbox()); got != 2 {
		t.Fatalf("MoJo has %d threads, want 2", got)
	}
}

func TestPostTimestampsNonDecreasing(t *testing.T) {
	s := newTestStore(t)
	s.PopulateSampleData(nil)

	posts := s.ListPosts()
	for i := 1; i < len(posts); i++ {
		if posts[i].Date.Before(posts[i-1].Date) {
			t.Fatalf("post %d predates post %d", i, i-1)
		}
	}
}
