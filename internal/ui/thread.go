package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/store"
)

// threadModel shows one conversation and replies into it. Replies go to
// the thread's own participant set, so the store resolves them back to
// this same thread.
type threadModel struct {
	ctx     *appCtx
	session models.User
	thread  *models.Thread

	input   textinput.Model
	typing  bool
	editing *models.Message
	cursor  int
}

func newThreadModel(ctx *appCtx, thread *models.Thread, session models.User) threadModel {
	input := textinput.New()
	input.Placeholder = "reply"
	input.CharLimit = 500

	return threadModel{
		ctx:     ctx,
		session: session,
		thread:  thread,
		input:   input,
		cursor:  max(0, len(thread.Messages)-1),
	}
}

// refresh swaps in the thread's current snapshot after an inbox update.
func (m *threadModel) refresh(threads []*models.Thread) {
	for _, t := range threads {
		if t.ID == m.thread.ID {
			m.thread = t
			m.cursor = max(0, len(t.Messages)-1)
			return
		}
	}
}

func (m threadModel) Update(msg tea.Msg) (threadModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		switch key.String() {
		case "enter":
			content := strings.TrimSpace(m.input.Value())
			if content != "" {
				if m.editing != nil {
					edited := m.editing
					edited.Content = content
					m.ctx.store.EditOrDeleteMessage(edited, store.OpUpdate)
				} else {
					m.ctx.store.SendMessage(content, m.thread.Users, m.session)
				}
			}
			m.input.SetValue("")
			m.input.Blur()
			m.typing = false
			m.editing = nil
			return m, nil
		case "esc":
			m.input.SetValue("")
			m.input.Blur()
			m.typing = false
			m.editing = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	msgs := m.thread.Messages
	switch key.String() {
	case "esc":
		return m, navTo(backMsg{})
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(msgs)-1 {
			m.cursor++
		}
	case "r":
		m.typing = true
		return m, m.input.Focus()
	case "e":
		if m.cursor < len(msgs) && msgs[m.cursor].Author.ID == m.session.ID {
			m.editing = msgs[m.cursor]
			m.input.SetValue(msgs[m.cursor].Content)
			m.typing = true
			return m, m.input.Focus()
		}
	case "d":
		if m.cursor < len(msgs) && msgs[m.cursor].Author.ID == m.session.ID {
			m.ctx.store.EditOrDeleteMessage(msgs[m.cursor], store.OpDelete)
		}
	}
	return m, nil
}

func (m threadModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(threadLabel(m.thread, m.session)))
	b.WriteString("\n\n")

	for i, msgItem := range m.thread.Messages {
		line := fmt.Sprintf("[%s] %s: %s",
			msgItem.Date.Format("Jan 2 15:04"), msgItem.Author.Username, msgItem.Content)
		if i == m.cursor && !m.typing {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		helpStyle.Render("r reply · e edit (own) · d delete (own) · esc back"),
	)
}
