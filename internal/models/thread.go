package models

import "time"

// MessageType selects which change stream a message mutation notifies:
// direct messages republish the inbox, comments republish the feed.
type MessageType string

const (
	MessageDM      MessageType = "dm"
	MessageComment MessageType = "comment"
)

// Message is one entry in a thread. Author is a snapshot of the sender's
// identity at send time, not a live reference. Thread is a back-reference
// to the containing thread (the thread owns the message, not the other
// way around).
type Message struct {
	ID      string
	Type    MessageType
	Author  User
	Thread  *Thread
	Date    time.Time
	Content string
}

// Clone copies the message. The thread back-reference is left to the
// caller: Thread.Clone rebinds it to the cloned thread so a cloned
// structure never points into stored state.
func (m *Message) Clone() *Message {
	c := *m
	return &c
}

// Thread is either a DM conversation (Users non-empty, order = first
// assembly order) or a post's comment container (Users empty). Messages
// are kept in append order.
type Thread struct {
	ID       string
	Users    []User
	Messages []*Message
}

// Clone deep-copies the thread: participant list, message list, and each
// message. The copies' back-references point at the clone, never at the
// original.
func (t *Thread) Clone() *Thread {
	c := &Thread{
		ID:       t.ID,
		Users:    append([]User(nil), t.Users...),
		Messages: make([]*Message, len(t.Messages)),
	}
	for i, m := range t.Messages {
		mc := m.Clone()
		mc.Thread = c
		c.Messages[i] = mc
	}
	return c
}

// LastMessageDate returns the timestamp of the most recent message, or
// the zero time for an empty thread. Messages are appended in timeline
// order, so the last element is the newest.
func (t *Thread) LastMessageDate() time.Time {
	if len(t.Messages) == 0 {
		return time.Time{}
	}
	return t.Messages[len(t.Messages)-1].Date
}

// HasParticipants reports whether the thread's participant set is
// exactly the given set: same size, same membership by id, in any order.
func (t *Thread) HasParticipants(users []User) bool {
	if len(t.Users) != len(users) {
		return false
	}
	for _, u := range t.Users {
		found := false
		for _, v := range users {
			if v.ID == u.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
