package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/store"
)

// inboxModel lists the active session's conversations, freshest first.
type inboxModel struct {
	ctx     *appCtx
	threads []*models.Thread
	cursor  int
}

func newInboxModel(ctx *appCtx) inboxModel {
	return inboxModel{ctx: ctx}
}

func (m *inboxModel) reload() {
	m.setThreads(m.ctx.store.ListInbox())
}

func (m *inboxModel) setThreads(threads []*models.Thread) {
	store.SortThreadsByLastMessage(threads, false)
	m.threads = threads
	if m.cursor >= len(threads) {
		m.cursor = 0
	}
}

func (m inboxModel) Update(msg tea.Msg) (inboxModel, tea.Cmd) {
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
		if m.cursor < len(m.threads)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.threads) {
			return m, navTo(openThreadMsg{Thread: m.threads[m.cursor]})
		}
	case "n":
		return m, navTo(composeMsg{})
	}
	return m, nil
}

// threadLabel names a conversation by the other participants.
func threadLabel(t *models.Thread, me models.User) string {
	var names []string
	for _, u := range t.Users {
		if u.ID != me.ID {
			names = append(names, u.Username)
		}
	}
	if len(names) == 0 {
		return "(just you)"
	}
	return strings.Join(names, ", ")
}

func (m inboxModel) View() string {
	if len(m.threads) == 0 {
		return faintStyle.Render("No conversations. Press n to start one.")
	}

	me := m.ctx.store.CurrentSession()
	var b strings.Builder
	for i, t := range m.threads {
		preview := ""
		if n := len(t.Messages); n > 0 {
			last := t.Messages[n-1]
			preview = fmt.Sprintf(" — %s: %s", last.Author.Username, last.Content)
		}
		line := threadLabel(t, me) + preview
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		helpStyle.Render("enter open · n new message · ↑/↓ move"),
	)
}
