package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/models"
)

// usersModel lists everyone else; enter starts a conversation.
type usersModel struct {
	ctx    *appCtx
	users  []models.User
	cursor int
}

func newUsersModel(ctx *appCtx) usersModel {
	return usersModel{ctx: ctx}
}

func (m *usersModel) reload() {
	m.users = m.ctx.store.ListUsers(true)
	if m.cursor >= len(m.users) {
		m.cursor = 0
	}
}

func (m usersModel) Update(msg tea.Msg) (usersModel, tea.Cmd) {
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
		if m.cursor < len(m.users)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.users) {
			to := m.users[m.cursor]
			return m, navTo(composeMsg{To: &to})
		}
	}
	return m, nil
}

func (m usersModel) View() string {
	if len(m.users) == 0 {
		return faintStyle.Render("Nobody else is registered.")
	}
	var b strings.Builder
	for i, u := range m.users {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + u.Username))
		} else {
			b.WriteString("  " + u.Username)
		}
		b.WriteString("\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		helpStyle.Render("enter message · ↑/↓ move"),
	)
}
