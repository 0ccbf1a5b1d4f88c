package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/store"
)

// postModel is both the post reader (with its comment thread) and the
// post editor. A nil post means "new draft": the model asks the store
// for a fresh one and opens in edit mode.
type postModel struct {
	ctx     *appCtx
	session models.User
	post    *models.Post

	editing    bool
	title      textinput.Model
	body       textarea.Model
	comment    textinput.Model
	commenting bool
	// editingComment is the comment being rewritten in the input, nil
	// when the input composes a fresh comment.
	editingComment *models.Message
	cursor         int
}

func newPostModel(ctx *appCtx, post *models.Post, session models.User) postModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120

	body := textarea.New()
	body.Placeholder = "say something"
	body.SetWidth(72)
	body.SetHeight(8)

	comment := textinput.New()
	comment.Placeholder = "add a comment"
	comment.CharLimit = 280

	m := postModel{ctx: ctx, session: session, title: title, body: body, comment: comment}

	if post == nil {
		m.post = ctx.store.CreatePost("", "", session)
		m.editing = true
		m.title.Focus()
	} else {
		m.post = post
	}
	return m
}

// refresh swaps in the current snapshot of the displayed post after a
// feed update. A post deleted under us keeps the last snapshot on
// screen; every store mutation through it is an id-keyed no-op anyway.
func (m *postModel) refresh(posts []*models.Post) {
	for _, p := range posts {
		if p.ID == m.post.ID {
			m.post = p
			if m.cursor >= len(p.Comments.Messages) {
				m.cursor = 0
			}
			return
		}
	}
}

func (m postModel) Update(msg tea.Msg) (postModel, tea.Cmd) {
	if m.editing {
		return m.updateEditor(msg)
	}
	return m.updateReader(msg)
}

func (m postModel) updateEditor(msg tea.Msg) (postModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			if m.title.Focused() {
				m.title.Blur()
				return m, m.body.Focus()
			}
			m.body.Blur()
			return m, m.title.Focus()

		case "ctrl+s":
			m.post.Title = m.title.Value()
			m.post.Content = m.body.Value()
			m.ctx.store.SavePost(m.post)
			m.editing = false
			m.title.Blur()
			m.body.Blur()
			return m, nil

		case "esc":
			if m.post.IsNew {
				// Unsaved draft: drop it and go back.
				return m, navTo(backMsg{})
			}
			m.editing = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.title.Focused() {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m postModel) updateReader(msg tea.Msg) (postModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.commenting {
		switch key.String() {
		case "enter":
			content := strings.TrimSpace(m.comment.Value())
			if content != "" {
				if m.editingComment != nil {
					edited := m.editingComment
					edited.Content = content
					m.ctx.store.EditOrDeleteMessage(edited, store.OpUpdate)
				} else {
					m.ctx.store.AddComment(m.post, content, m.session)
				}
			}
			m.comment.SetValue("")
			m.comment.Blur()
			m.commenting = false
			m.editingComment = nil
			return m, nil
		case "esc":
			m.comment.SetValue("")
			m.comment.Blur()
			m.commenting = false
			m.editingComment = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.comment, cmd = m.comment.Update(msg)
		return m, cmd
	}

	comments := m.post.Comments.Messages
	switch key.String() {
	case "esc":
		return m, navTo(backMsg{})
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(comments)-1 {
			m.cursor++
		}
	case "c":
		m.commenting = true
		return m, m.comment.Focus()
	case "e":
		if m.post.Author.ID == m.session.ID {
			m.editing = true
			m.title.SetValue(m.post.Title)
			m.body.SetValue(m.post.Content)
			return m, m.title.Focus()
		}
		if m.cursor < len(comments) && comments[m.cursor].Author.ID == m.session.ID {
			m.editingComment = comments[m.cursor]
			m.comment.SetValue(comments[m.cursor].Content)
			m.commenting = true
			return m, m.comment.Focus()
		}
	case "d":
		if m.cursor < len(comments) && comments[m.cursor].Author.ID == m.session.ID {
			m.ctx.store.EditOrDeleteMessage(comments[m.cursor], store.OpDelete)
		}
	case "x":
		if m.post.Author.ID == m.session.ID {
			m.ctx.store.DeletePost(m.post, m.session)
			return m, navTo(backMsg{})
		}
	}
	return m, nil
}

func (m postModel) View() string {
	if m.editing {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.title.View(),
			"",
			m.body.View(),
			helpStyle.Render("ctrl+s save · tab switch field · esc cancel"),
		)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.post.Title))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%s · %s", m.post.Author.Username, m.post.Date.Format("Jan 2 2006"))))
	b.WriteString("\n\n")
	b.WriteString(m.post.Content)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Comments (%d)", len(m.post.Comments.Messages))))
	b.WriteString("\n")

	for i, c := range m.post.Comments.Messages {
		line := fmt.Sprintf("%s: %s", c.Author.Username, c.Content)
		if i == m.cursor && !m.commenting {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.commenting {
		b.WriteString("\n")
		b.WriteString(m.comment.View())
	}

	help := "c comment · e edit (own) · d delete comment (own) · x delete post (own) · esc back"
	return lipgloss.JoinVertical(lipgloss.Left, b.String(), helpStyle.Render(help))
}
