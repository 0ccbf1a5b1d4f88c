package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JosiahVarughese/mojo-social/internal/debounce"
	"github.com/JosiahVarughese/mojo-social/internal/models"
	"github.com/JosiahVarughese/mojo-social/internal/store"
)

// appCtx is shared by every view model: the data service, the event
// channel that carries stream callbacks into the tea loop, and the
// debouncer for the compose view's suggestion list.
type appCtx struct {
	store  *store.Store
	log    *slog.Logger
	deb    *debounce.Debouncer
	events chan tea.Msg
}

// Stream callbacks run synchronously while the store mutates, so they
// only push onto the event channel; waitForEvent pulls the messages back
// into Update on the tea side.
type (
	sessionChangedMsg struct{ User models.User }
	inboxChangedMsg   struct{ Threads []*models.Thread }
	feedChangedMsg    struct{ Posts []*models.Post }

	// clearSuggestionsMsg arrives from the debouncer a beat after the
	// recipient field loses focus.
	clearSuggestionsMsg struct{}
)

// Navigation requests emitted by view models and handled by the root.
type (
	openPostMsg   struct{ Post *models.Post }
	newPostMsg    struct{}
	openThreadMsg struct{ Thread *models.Thread }
	composeMsg    struct{ To *models.User }
	backMsg       struct{}
)

func waitForEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func navTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
