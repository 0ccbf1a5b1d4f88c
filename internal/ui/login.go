package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/store"
)

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

// loginModel is the sign-in / register form. Submission goes straight to
// the store; a successful login flips the whole app via the session
// stream, so this model never navigates on its own.
type loginModel struct {
	ctx      *appCtx
	mode     loginMode
	username textinput.Model
	password textinput.Model
	focused  int // 0 username, 1 password
	status   string
	statusOK bool
}

func newLoginModel(ctx *appCtx) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return loginModel{ctx: ctx, username: username, password: password}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			m.focused = 1 - m.focused
			if m.focused == 0 {
				m.password.Blur()
				return m, m.username.Focus()
			}
			m.username.Blur()
			return m, m.password.Focus()

		case "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			m.status = ""
			return m, nil

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username, password := m.username.Value(), m.password.Value()

	if m.mode == modeRegister {
		_, fail := m.ctx.store.Register(username, password)
		m.status = fail.UserMessage()
		m.statusOK = fail == store.FailNone
		if m.statusOK {
			// Back to the login form with the username kept.
			m.mode = modeLogin
			m.password.SetValue("")
		}
		return m, nil
	}

	_, fail := m.ctx.store.Login(username, password)
	if fail != store.FailNone {
		m.status = fail.UserMessage()
		m.statusOK = false
	}
	return m, nil
}

func (m loginModel) View() string {
	heading := "Sign in"
	action := "register instead"
	if m.mode == modeRegister {
		heading = "Create an account"
		action = "sign in instead"
	}

	status := ""
	if m.status != "" {
		if m.statusOK {
			status = okStyle.Render(m.status)
		} else {
			status = errorStyle.Render(m.status)
		}
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(heading),
		"",
		m.username.View(),
		m.password.View(),
		"",
		status,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(form),
		helpStyle.Render("enter submit · tab switch field · ctrl+r "+action),
	)
}
