// Package ui is the terminal front end: one bubbletea program whose view
// models are thin collaborators over the data service. Views observe the
// store's change streams while they are on screen and let their
// subscriptions go when they are not.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JosiahVarughese/mojo-social/internal/debounce"
	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/pubsub"
	"github.com/JosiahVarughese/mojo-social/internal/store"
)

// View identifies the active screen.
type View int

const (
	ViewLogin View = iota
	ViewFeed
	ViewPost
	ViewInbox
	ViewThread
	ViewCompose
	ViewUsers
)

func (v View) title() string {
	switch v {
	case ViewLogin:
		return "sign in"
	case ViewFeed:
		return "feed"
	case ViewPost:
		return "post"
	case ViewInbox:
		return "inbox"
	case ViewThread:
		return "thread"
	case ViewCompose:
		return "new message"
	case ViewUsers:
		return "people"
	}
	return ""
}

// App is the root model. It owns navigation, the session header, and
// the stream subscriptions; the per-screen models do the rest.
type App struct {
	ctx *appCtx

	view    View
	session models.User
	width   int
	height  int

	login   loginModel
	feed    feedModel
	post    postModel
	inbox   inboxModel
	thread  threadModel
	compose composeModel
	users   usersModel

	// The session stream is observed for the program's whole lifetime;
	// feed and inbox subscriptions are volatile and follow the view.
	sessionSub *pubsub.Subscription
	feedSub    *pubsub.Subscription
	inboxSub   *pubsub.Subscription
}

func NewApp(st *store.Store, log *slog.Logger, deb *debounce.Debouncer) App {
	ctx := &appCtx{
		store:  st,
		log:    log,
		deb:    deb,
		events: make(chan tea.Msg, 64),
	}

	a := App{
		ctx:     ctx,
		view:    ViewLogin,
		session: st.CurrentSession(),
		login:   newLoginModel(ctx),
		feed:    newFeedModel(ctx),
		inbox:   newInboxModel(ctx),
		users:   newUsersModel(ctx),
	}
	a.sessionSub = st.Session.Subscribe(func(u models.User) {
		ctx.events <- sessionChangedMsg{User: u}
	})

	// Seeded demos start logged in.
	if !a.session.IsNull() {
		a.feed.reload()
		a.switchTo(ViewFeed)
	}
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(a.ctx.events))
}

// switchTo changes the active view and re-balances the volatile stream
// subscriptions: feed while looking at posts, inbox while looking at
// conversations, neither otherwise.
func (a *App) switchTo(v View) {
	needFeed := v == ViewFeed || v == ViewPost
	needInbox := v == ViewInbox || v == ViewThread || v == ViewCompose

	if needFeed && a.feedSub == nil {
		a.feedSub = a.ctx.store.Feed.Subscribe(func(posts []*models.Post) {
			a.ctx.events <- feedChangedMsg{Posts: posts}
		})
	}
	if !needFeed && a.feedSub != nil {
		a.feedSub.Cancel()
		a.feedSub = nil
	}
	if needInbox && a.inboxSub == nil {
		a.inboxSub = a.ctx.store.Inbox.Subscribe(func(threads []*models.Thread) {
			a.ctx.events <- inboxChangedMsg{Threads: threads}
		})
	}
	if !needInbox && a.inboxSub != nil {
		a.inboxSub.Cancel()
		a.inboxSub = nil
	}

	a.view = v
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case sessionChangedMsg:
		a.session = msg.User
		if a.session.IsNull() {
			a.login = newLoginModel(a.ctx)
			a.switchTo(ViewLogin)
		} else if a.view == ViewLogin {
			a.feed.reload()
			a.switchTo(ViewFeed)
		}
		return a, waitForEvent(a.ctx.events)

	case feedChangedMsg:
		a.feed.setPosts(msg.Posts)
		if a.view == ViewPost {
			a.post.refresh(msg.Posts)
		}
		return a, waitForEvent(a.ctx.events)

	case inboxChangedMsg:
		a.inbox.setThreads(msg.Threads)
		if a.view == ViewThread {
			a.thread.refresh(msg.Threads)
		}
		return a, waitForEvent(a.ctx.events)

	case clearSuggestionsMsg:
		a.compose.clearSuggestions()
		return a, waitForEvent(a.ctx.events)

	case openPostMsg:
		a.post = newPostModel(a.ctx, msg.Post, a.session)
		a.switchTo(ViewPost)
		return a, nil
	case newPostMsg:
		a.post = newPostModel(a.ctx, nil, a.session)
		a.switchTo(ViewPost)
		return a, textinput.Blink
	case openThreadMsg:
		a.thread = newThreadModel(a.ctx, msg.Thread, a.session)
		a.switchTo(ViewThread)
		return a, nil
	case composeMsg:
		a.compose = newComposeModel(a.ctx, a.session, msg.To)
		a.switchTo(ViewCompose)
		return a, textinput.Blink
	case backMsg:
		switch a.view {
		case ViewPost:
			a.feed.reload()
			a.switchTo(ViewFeed)
		case ViewThread, ViewCompose:
			a.inbox.reload()
			a.switchTo(ViewInbox)
		default:
			a.feed.reload()
			a.switchTo(ViewFeed)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		}
		if !a.session.IsNull() {
			switch msg.String() {
			case "ctrl+f":
				a.feed.reload()
				a.switchTo(ViewFeed)
				return a, nil
			case "ctrl+b":
				a.inbox.reload()
				a.switchTo(ViewInbox)
				return a, nil
			case "ctrl+p":
				a.users.reload()
				a.switchTo(ViewUsers)
				return a, nil
			case "ctrl+l":
				a.ctx.store.Logout()
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case ViewLogin:
		a.login, cmd = a.login.Update(msg)
	case ViewFeed:
		a.feed, cmd = a.feed.Update(msg)
	case ViewPost:
		a.post, cmd = a.post.Update(msg)
	case ViewInbox:
		a.inbox, cmd = a.inbox.Update(msg)
	case ViewThread:
		a.thread, cmd = a.thread.Update(msg)
	case ViewCompose:
		a.compose, cmd = a.compose.Update(msg)
	case ViewUsers:
		a.users, cmd = a.users.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	who := "signed out"
	if !a.session.IsNull() {
		who = a.session.Username
	}
	header := headerStyle.Render(fmt.Sprintf(" mojo-social · %s · %s ", a.view.title(), who))

	var body string
	switch a.view {
	case ViewLogin:
		body = a.login.View()
	case ViewFeed:
		body = a.feed.View()
	case ViewPost:
		body = a.post.View()
	case ViewInbox:
		body = a.inbox.View()
	case ViewThread:
		body = a.thread.View()
	case ViewCompose:
		body = a.compose.View()
	case ViewUsers:
		body = a.users.View()
	}

	help := ""
	if !a.session.IsNull() {
		help = helpStyle.Render("ctrl+f feed · ctrl+b inbox · ctrl+p people · ctrl+l sign out · ctrl+c quit")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, help)
}
