package store

import (
	"sort"

	"github.com/JosiahVarughese/mojo-social/internal/metrics"
	"github.com/JosiahVarughese/mojo-social/internal/models"
)

// CreatePost builds a draft post with a fresh id, a timeline timestamp,
// and an empty comment container. The draft is not stored until SavePost.
func (s *Store) CreatePost(title, content string, author models.User) *models.Post {
	return &models.Post{
		ID:       newID(),
		Author:   author,
		Date:     s.clock.Next(),
		Title:    title,
		Content:  content,
		Comments: &models.Thread{ID: newID()},
		IsNew:    true,
	}
}

// SavePost updates the stored post with the same id in place, or appends
// p as a new post. Either way IsNew is cleared and the full feed
// snapshot is republished. Appending stores a detached copy, so the
// caller's value never aliases stored state.
func (s *Store) SavePost(p *models.Post) {
	if existing := s.findPost(p.ID); existing != nil {
		existing.Title = p.Title
		existing.Content = p.Content
		existing.IsNew = false
		s.log.Debug("post updated", "id", p.ID)
	} else {
		stored := p.Clone()
		stored.IsNew = false
		s.posts = append(s.posts, stored)
		metrics.PostsCreated.Inc()
		metrics.Posts.Set(float64(len(s.posts)))
		s.log.Debug("post created", "id", stored.ID, "author", stored.Author.Username)
	}
	s.Feed.Publish(s.clonePosts())
}

// DeletePost removes the post if, and only if, the acting user is its
// author. Anyone else's attempt is a silent no-op: the UI is expected to
// hide the action, the store just refuses to act.
func (s *Store) DeletePost(p *models.Post, acting models.User) {
	if acting.ID != p.Author.ID {
		return
	}
	kept := s.posts[:0]
	for _, stored := range s.posts {
		if stored.ID != p.ID {
			kept = append(kept, stored)
		}
	}
	s.posts = kept
	metrics.Posts.Set(float64(len(s.posts)))
	s.log.Debug("post deleted", "id", p.ID)
	s.Feed.Publish(s.clonePosts())
}

// AddComment appends a comment message to the post's comment thread and
// republishes the feed. A post that no longer exists (looked up by id)
// is a silent no-op.
func (s *Store) AddComment(p *models.Post, content string, author models.User) {
	target := s.findPost(p.ID)
	if target == nil {
		return
	}
	m := s.newMessage(author, target.Comments, content, models.MessageComment)
	target.Comments.Messages = append(target.Comments.Messages, m)
	metrics.CommentsTotal.Inc()
	s.Feed.Publish(s.clonePosts())
}

// ListPosts returns a deep copy of the stored posts in insertion order.
// Display order is the caller's problem; see SortPostsByDate.
func (s *Store) ListPosts() []*models.Post {
	return s.clonePosts()
}

// SortPostsByDate stably sorts posts by timestamp in place. The timeline
// clock can produce equal timestamps, so stability matters: ties keep
// their insertion order.
func SortPostsByDate(posts []*models.Post, ascending bool) {
	sort.SliceStable(posts, func(i, j int) bool {
		if ascending {
			return posts[i].Date.Before(posts[j].Date)
		}
		return posts[j].Date.Before(posts[i].Date)
	})
}
