package store

import (
	"github.com/JosiahVarughese/mojo-social/internal/auth"
	"github.com/JosiahVarughese/mojo-social/internal/metrics"
	"github.com/JosiahVarughese/mojo-social/internal/models"
)

// Failure discriminates the outcome of registration and login. The zero
// value means success. Authorization misses elsewhere in the store are
// silent no-ops and never produce a Failure; only credential validation
// is reported to the user.
type Failure string

const (
	FailNone            Failure = ""
	FailEmptyUsername   Failure = "empty_username"
	FailShortUsername   Failure = "short_username"
	FailEmptyPassword   Failure = "empty_password"
	FailWeakPassword    Failure = "weak_password"
	FailUnknownUsername Failure = "unknown_username"
	FailWrongPassword   Failure = "wrong_password"
)

// UserMessage is the text shown on the login/register form.
func (f Failure) UserMessage() string {
	switch f {
	case FailNone:
		return "Success"
	case FailEmptyUsername:
		return "Please enter a username."
	case FailShortUsername:
		return "Usernames must be at least 4 characters."
	case FailEmptyPassword:
		return "Please enter a password."
	case FailWeakPassword:
		return "Passwords must be at least 6 characters long and include at least one letter, number and special character."
	case FailUnknownUsername:
		return "The username entered doesn't belong to any registered accounts."
	case FailWrongPassword:
		return "Incorrect password."
	}
	return string(f)
}

func (f Failure) outcome() string {
	if f == FailNone {
		return "success"
	}
	return string(f)
}

// Register validates and appends a new account. It does not log the
// account in, and it does not reject duplicate usernames: login matches
// the first account with a username, so a duplicate registration is
// simply unreachable afterwards.
func (s *Store) Register(username, password string) (models.User, Failure) {
	fail := func(f Failure) (models.User, Failure) {
		metrics.RegistrationsTotal.WithLabelValues(f.outcome()).Inc()
		return models.NullAccount().Snapshot(), f
	}
	if username == "" {
		return fail(FailEmptyUsername)
	}
	if len(username) < 4 {
		return fail(FailShortUsername)
	}
	if password == "" {
		return fail(FailEmptyPassword)
	}
	if !auth.ValidPassword(password) {
		return fail(FailWeakPassword)
	}

	acct := &models.Account{
		User:     models.User{ID: newID(), Username: username},
		Password: password,
	}
	s.accounts = append(s.accounts, acct)

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	metrics.Accounts.Set(float64(len(s.accounts)))
	s.log.Debug("account registered", "id", acct.ID, "username", acct.Username)
	return acct.Snapshot(), FailNone
}

// Login makes the matching account the active session. The password is
// compared in plaintext; that is the whole security model of this demo.
func (s *Store) Login(username, password string) (models.User, Failure) {
	fail := func(f Failure) (models.User, Failure) {
		metrics.LoginsTotal.WithLabelValues(f.outcome()).Inc()
		s.log.Info("login failed", "username", username, "reason", f)
		return models.NullAccount().Snapshot(), f
	}
	if username == "" {
		return fail(FailEmptyUsername)
	}
	if password == "" {
		return fail(FailEmptyPassword)
	}

	var acct *models.Account
	for _, a := range s.accounts {
		if a.Username == username {
			acct = a
			break
		}
	}
	if acct == nil {
		return fail(FailUnknownUsername)
	}
	if password != acct.Password {
		return fail(FailWrongPassword)
	}

	s.reassign(acct.Snapshot())
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Debug("login", "username", username)
	return acct.Snapshot(), FailNone
}

// Logout resets the active session to the null sentinel. Only the
// session and feed streams fire; the inbox stream stays quiet because
// the resulting session has no inbox.
func (s *Store) Logout() {
	s.reassign(models.User{})
}

// CurrentSession returns a copy of the active session's identity.
func (s *Store) CurrentSession() models.User {
	return s.active.Snapshot()
}

// reassign switches the active session to the account behind u (null
// fallback on a miss) and republishes, in order: session, inbox (only
// for a real session), feed.
func (s *Store) reassign(u models.User) {
	s.active = s.findAccount(u.ID)
	s.Session.Publish(s.active.Snapshot())
	if s.active.ID != "" {
		s.Inbox.Publish(s.cloneInbox())
	}
	s.Feed.Publish(s.clonePosts())
}
