package models

import "time"

// Post is an article on the global feed. Author is an identity snapshot.
// Comments is a thread with an empty participant set, used purely as a
// message container. IsNew is a transient flag: true only between
// creation and the first successful save, so the editor can tell "new
// draft" from "editing an existing post".
type Post struct {
	ID       string
	Author   User
	Date     time.Time
	Title    string
	Content  string
	Comments *Thread
	IsNew    bool
}

// Clone deep-copies the post including its comment thread, so mutating
// the result never touches stored state.
func (p *Post) Clone() *Post {
	c := *p
	c.Comments = p.Comments.Clone()
	return &c
}
