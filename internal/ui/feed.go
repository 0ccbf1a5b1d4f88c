package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/store"
)

// feedModel lists every post, newest first. The slice it holds is always
// a detached snapshot from the store, so scrolling and rendering never
// touch live state.
type feedModel struct {
	ctx    *appCtx
	posts  []*models.Post
	cursor int
}

func newFeedModel(ctx *appCtx) feedModel {
	return feedModel{ctx: ctx}
}

func (m *feedModel) reload() {
	m.setPosts(m.ctx.store.ListPosts())
}

func (m *feedModel) setPosts(posts []*models.Post) {
	store.SortPostsByDate(posts, false)
	m.posts = posts
	if m.cursor >= len(posts) {
		m.cursor = max(0, len(posts)-1)
	}
}

func (m feedModel) Update(msg tea.Msg) (feedModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.posts) {
			return m, navTo(openPostMsg{Post: m.posts[m.cursor]})
		}
	case "n":
		return m, navTo(newPostMsg{})
	case "d":
		// The store refuses anyone but the author; nothing to guard here.
		if m.cursor < len(m.posts) {
			m.ctx.store.DeletePost(m.posts[m.cursor], m.ctx.store.CurrentSession())
		}
	}
	return m, nil
}

func (m feedModel) View() string {
	if len(m.posts) == 0 {
		return faintStyle.Render("Nothing here yet. Press n to write the first post.")
	}

	var b strings.Builder
	for i, p := range m.posts {
		line := fmt.Sprintf("%s — %s, %s (%d comments)",
			p.Title, p.Author.Username, p.Date.Format("Jan 2 2006"), len(p.Comments.Messages))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		helpStyle.Render("enter open · n new post · d delete (own) · ↑/↓ move"),
	)
}
