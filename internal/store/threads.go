package store

import (
	"sort"

	"github.com/JosiahVarughese/mojo-social/internal/metrics"
	"github.com/JosiahVarughese/mojo-social/internal/models"
)

// MessageOp selects what EditOrDeleteMessage does.
type MessageOp string

const (
	OpDelete MessageOp = "delete"
	OpUpdate MessageOp = "update"
)

// ResolveConversation returns a deep copy of the thread for the given
// participant set, creating it first if none exists. Conversation
// identity is participant-set equality, order-independent; the search
// runs over the first participant's conversation list. An empty set
// resolves to nil.
func (s *Store) ResolveConversation(users []models.User) *models.Thread {
	t := s.resolveConversation(users)
	if t == nil {
		return nil
	}
	return t.Clone()
}

func (s *Store) resolveConversation(users []models.User) *models.Thread {
	if len(users) == 0 {
		return nil
	}
	owner := s.findAccount(users[0].ID)
	for _, t := range owner.Conversations {
		if t.HasParticipants(users) {
			return t
		}
	}
	return s.createConversation(users)
}

// createConversation builds a thread and attaches it to every named
// participant's conversation list. Participants that don't resolve to a
// stored account get nothing. The active session's inbox is republished
// unconditionally, even when the session is not a participant; that
// over-notification matches the behavior this store reproduces.
func (s *Store) createConversation(users []models.User) *models.Thread {
	t := &models.Thread{
		ID:    newID(),
		Users: append([]models.User(nil), users...),
	}
	for _, u := range users {
		acct := s.findAccount(u.ID)
		if acct.ID == "" {
			continue
		}
		acct.Conversations = append(acct.Conversations, t)
	}
	metrics.ThreadsCreated.Inc()
	s.log.Debug("thread created", "id", t.ID, "participants", len(t.Users))
	s.Inbox.Publish(s.cloneInbox())
	return t
}

func (s *Store) newMessage(author models.User, thread *models.Thread, content string, typ models.MessageType) *models.Message {
	return &models.Message{
		ID:      newID(),
		Type:    typ,
		Author:  author,
		Thread:  thread,
		Date:    s.clock.Next(),
		Content: content,
	}
}

// SendMessage appends a DM to the conversation for the given participant
// set, creating it if needed, then republishes the active session's
// inbox snapshot.
func (s *Store) SendMessage(content string, users []models.User, author models.User) {
	t := s.resolveConversation(users)
	if t == nil {
		return
	}
	m := s.newMessage(author, t, content, models.MessageDM)
	t.Messages = append(t.Messages, m)
	metrics.MessagesTotal.Inc()
	s.Inbox.Publish(s.cloneInbox())
}

// EditOrDeleteMessage applies op to the stored message matching m's id.
// The owning thread is located by m's type: DMs are searched in the
// active session's conversation list, comments in all posts' comment
// threads. Delete removes the message from the sequence; update
// overwrites the stored content with m's. The matching stream (inbox for
// DMs, feed for comments) is republished either way.
func (s *Store) EditOrDeleteMessage(m *models.Message, op MessageOp) {
	thread := s.findMessageThread(m)
	if thread == nil {
		return
	}

	switch op {
	case OpDelete:
		for i, stored := range thread.Messages {
			if stored.ID == m.ID {
				thread.Messages = append(thread.Messages[:i], thread.Messages[i+1:]...)
				break
			}
		}
	case OpUpdate:
		for _, stored := range thread.Messages {
			if stored.ID == m.ID {
				stored.Content = m.Content
				break
			}
		}
	}

	switch m.Type {
	case models.MessageDM:
		s.Inbox.Publish(s.cloneInbox())
	case models.MessageComment:
		s.Feed.Publish(s.clonePosts())
	}
}

func (s *Store) findMessageThread(m *models.Message) *models.Thread {
	if m.Thread == nil {
		return nil
	}
	switch m.Type {
	case models.MessageDM:
		for _, t := range s.active.Conversations {
			if t.ID == m.Thread.ID {
				return t
			}
		}
	case models.MessageComment:
		for _, p := range s.posts {
			if p.Comments.ID == m.Thread.ID {
				return p.Comments
			}
		}
	}
	return nil
}

// ListInbox returns a deep copy of the active session's conversations in
// discovery order.
func (s *Store) ListInbox() []*models.Thread {
	return s.cloneInbox()
}

// SortThreadsByLastMessage stably sorts threads by the timestamp of each
// thread's most recent message, in place. Empty threads sort as oldest.
func SortThreadsByLastMessage(threads []*models.Thread, ascending bool) {
	sort.SliceStable(threads, func(i, j int) bool {
		if ascending {
			return threads[i].LastMessageDate().Before(threads[j].LastMessageDate())
		}
		return threads[j].LastMessageDate().Before(threads[i].LastMessageDate())
	})
}
