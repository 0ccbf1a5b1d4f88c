package models

// User is the public identity of a registered account. The zero ID is
// the "no user" sentinel: lookups that miss resolve to it instead of
// returning an error, so callers must check IsNull before trusting the
// result.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// IsNull reports whether u is the logged-out / not-found sentinel.
func (u User) IsNull() bool { return u.ID == "" }

// Account is a User plus credentials and the conversation list. The
// password is stored and compared in plaintext: this is a single-process
// demo with no security model.
type Account struct {
	User
	Password      string
	Conversations []*Thread
}

// NullAccount returns a fresh logged-out sentinel. It is never stored in
// the account collection; every call returns a new value so nothing can
// accumulate state on a shared fallback.
func NullAccount() *Account {
	return &Account{User: User{ID: "", Username: "err"}}
}

// Snapshot returns the public identity detached from the account.
func (a *Account) Snapshot() User { return a.User }
