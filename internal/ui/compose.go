package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/models"
)

// composeModel starts a new conversation: pick recipients by username,
// type a message, send. The recipient field offers suggestions as you
// type; when the field loses focus the list is cleared a debounce-delay
// later, so tabbing away and straight back keeps it.
type composeModel struct {
	ctx     *appCtx
	session models.User

	recipient   textinput.Model
	message     textinput.Model
	picked      []models.User
	suggestions []models.User
	suggestIdx  int
	status      string
}

func newComposeModel(ctx *appCtx, session models.User, to *models.User) composeModel {
	recipient := textinput.New()
	recipient.Placeholder = "add recipient by username"
	recipient.CharLimit = 64
	recipient.Focus()

	message := textinput.New()
	message.Placeholder = "message"
	message.CharLimit = 500

	m := composeModel{ctx: ctx, session: session, recipient: recipient, message: message}
	if to != nil {
		m.picked = append(m.picked, *to)
	}
	return m
}

// suggest recomputes the suggestion list for the current input. Any
// interaction with the field supersedes a pending delayed clear.
func (m *composeModel) suggest() {
	m.ctx.deb.Cancel()
	m.suggestions = nil
	m.suggestIdx = 0

	query := strings.ToLower(strings.TrimSpace(m.recipient.Value()))
	if query == "" {
		return
	}
	for _, u := range m.ctx.store.ListUsers(true) {
		if m.alreadyPicked(u) {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), query) {
			m.suggestions = append(m.suggestions, u)
		}
	}
}

func (m *composeModel) alreadyPicked(u models.User) bool {
	for _, p := range m.picked {
		if p.ID == u.ID {
			return true
		}
	}
	return false
}

func (m *composeModel) clearSuggestions() {
	m.suggestions = nil
	m.suggestIdx = 0
}

func (m composeModel) Update(msg tea.Msg) (composeModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.ctx.deb.Cancel()
		return m, navTo(backMsg{})

	case "tab":
		if m.recipient.Focused() {
			m.recipient.Blur()
			// Clear the suggestion list shortly after focus leaves the
			// field, unless the user comes back first.
			events := m.ctx.events
			m.ctx.deb.Schedule(func() { events <- clearSuggestionsMsg{} })
			return m, m.message.Focus()
		}
		m.message.Blur()
		m.suggest()
		return m, m.recipient.Focus()

	case "up":
		if m.recipient.Focused() && m.suggestIdx > 0 {
			m.suggestIdx--
			return m, nil
		}
	case "down":
		if m.recipient.Focused() && m.suggestIdx < len(m.suggestions)-1 {
			m.suggestIdx++
			return m, nil
		}

	case "enter":
		if m.recipient.Focused() {
			if m.suggestIdx < len(m.suggestions) {
				m.picked = append(m.picked, m.suggestions[m.suggestIdx])
				m.recipient.SetValue("")
				m.suggest()
			}
			return m, nil
		}
		return m.send()

	case "ctrl+s":
		return m.send()
	}

	if m.recipient.Focused() {
		var cmd tea.Cmd
		m.recipient, cmd = m.recipient.Update(msg)
		m.suggest()
		return m, cmd
	}
	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	return m, cmd
}

func (m composeModel) send() (composeModel, tea.Cmd) {
	content := strings.TrimSpace(m.message.Value())
	if len(m.picked) == 0 {
		m.status = "Pick at least one recipient."
		return m, nil
	}
	if content == "" {
		m.status = "Write a message first."
		return m, nil
	}

	participants := append([]models.User{m.session}, m.picked...)
	m.ctx.store.SendMessage(content, participants, m.session)
	m.ctx.deb.Cancel()
	return m, navTo(backMsg{})
}

func (m composeModel) View() string {
	var picked string
	if len(m.picked) == 0 {
		picked = faintStyle.Render("no recipients yet")
	} else {
		names := make([]string, len(m.picked))
		for i, u := range m.picked {
			names[i] = u.Username
		}
		picked = "To: " + strings.Join(names, ", ")
	}

	var b strings.Builder
	b.WriteString(picked)
	b.WriteString("\n\n")
	b.WriteString(m.recipient.View())
	b.WriteString("\n")
	for i, u := range m.suggestions {
		if i == m.suggestIdx {
			b.WriteString(selectedStyle.Render("> " + u.Username))
		} else {
			b.WriteString(faintStyle.Render("  " + u.Username))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.message.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		helpStyle.Render("enter pick/send · tab switch field · ctrl+s send · esc back"),
	)
}
