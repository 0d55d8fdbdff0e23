package views

import (
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// Action is a user intent applied to a screen state record.
type Action interface {
	action()
}

type (
	SetFilter     struct{ Filter StatusFilter }
	SetSearch     struct{ Query string }
	OpenDetail    struct{ GameID string }
	CloseDetail   struct{}
	RequestDelete struct{ ID string }
	// ResolveDelete ends a pending deletion, whether confirmed or not.
	ResolveDelete struct{}
)

func (SetFilter) action()     {}
func (SetSearch) action()     {}
func (OpenDetail) action()    {}
func (CloseDetail) action()   {}
func (RequestDelete) action() {}
func (ResolveDelete) action() {}

// LibraryState is the state of the library screen.
type LibraryState struct {
	Filter StatusFilter
	Search string
	// Selected is the game whose detail overlay is open.
	Selected string
	// PendingDelete is the game awaiting delete confirmation.
	PendingDelete string
}

// Apply returns the state after a. Unknown actions leave it unchanged.
func (s LibraryState) Apply(a Action) LibraryState {
	switch a := a.(type) {
	case SetFilter:
		s.Filter = a.Filter
	case SetSearch:
		s.Search = strings.TrimSpace(a.Query)
	case OpenDetail:
		s.Selected = a.GameID
	case CloseDetail:
		s.Selected = ""
	case RequestDelete:
		s.PendingDelete = a.ID
	case ResolveDelete:
		s.PendingDelete = ""
	}
	return s
}

// Visible returns the games the library shows for this state.
func (s LibraryState) Visible(games []models.Game) []models.Game {
	return FilterGames(games, s.Filter, s.Search)
}

// DetailState is the state of the game detail overlay.
type DetailState struct {
	GameID        string
	Search        string
	PendingDelete string
}

// Apply returns the state after a. Unrelated actions are ignored.
func (s DetailState) Apply(a Action) DetailState {
	switch a := a.(type) {
	case OpenDetail:
		s = DetailState{GameID: a.GameID}
	case CloseDetail:
		s = DetailState{}
	case SetSearch:
		s.Search = strings.TrimSpace(a.Query)
	case RequestDelete:
		s.PendingDelete = a.ID
	case ResolveDelete:
		s.PendingDelete = ""
	}
	return s
}

// Visible applies the detail search to reviews.
func (s DetailState) Visible(reviews []models.Review) []models.Review {
	return FilterReviews(reviews, s.Search)
}
