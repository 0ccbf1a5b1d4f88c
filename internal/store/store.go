// Package store is the in-memory data service. It owns every collection
// (accounts, posts, the active session) and publishes three change
// streams collaborators re-render from: the current session, the active
// session's inbox, and the global feed.
//
// Everything runs synchronously on the caller's goroutine. There is no
// persistence and no locking; the model is single-threaded.
package store

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/JosiahVarughese/mojo-social/internal/clock"
	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/pubsub"
)

type Store struct {
	log   *slog.Logger
	clock clock.Source

	accounts []*models.Account
	posts    []*models.Post
	active   *models.Account

	// Session fires on every login/logout with the new identity.
	Session pubsub.Stream[models.User]
	// Inbox fires with a deep copy of the active session's conversations.
	Inbox pubsub.Stream[[]*models.Thread]
	// Feed fires with a deep copy of all posts.
	Feed pubsub.Stream[[]*models.Post]
}

func New(log *slog.Logger, ts clock.Source) *Store {
	s := &Store{log: log, clock: ts}
	s.active = models.NullAccount()
	return s
}

// findAccount resolves an id to the stored account, or a fresh null
// sentinel on a miss. The sentinel is never stored, so mutations on it
// (e.g. attaching a thread to an unknown participant) go nowhere.
func (s *Store) findAccount(id string) *models.Account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return models.NullAccount()
}

func (s *Store) findPost(id string) *models.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func newID() string { return uuid.NewString() }

// clonePosts is the feed snapshot: every post independently deep-copied.
func (s *Store) clonePosts() []*models.Post {
	out := make([]*models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// cloneInbox is the inbox snapshot for the active session.
func (s *Store) cloneInbox() []*models.Thread {
	out := make([]*models.Thread, len(s.active.Conversations))
	for i, t := range s.active.Conversations {
		out[i] = t.Clone()
	}
	return out
}

// ListUsers returns the public identities of all registered accounts,
// optionally excluding the active session.
func (s *Store) ListUsers(excludeCurrent bool) []models.User {
	exclude := ""
	if excludeCurrent {
		exclude = s.active.ID
	}
	var out []models.User
	for _, a := range s.accounts {
		if a.ID != exclude {
			out = append(out, a.Snapshot())
		}
	}
	return out
}

// FindUserByName returns the first account with the given username, or
// the null sentinel.
func (s *Store) FindUserByName(name string) models.User {
	for _, a := range s.accounts {
		if a.Username == name {
			return a.Snapshot()
		}
	}
	return models.NullAccount().Snapshot()
}
