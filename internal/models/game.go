package models

import (
	"strings"
	"time"
)

// Game is a catalog entry as returned by the backend.
type Game struct {
	ID          string   `json:"_id"`
	Title       string   `json:"titulo"`
	Category    Category `json:"genero"`
	Platform    Platform `json:"plataforma"`
	ReleaseYear int      `json:"añoLanzamiento"`
	Developer   string   `json:"desarrollador"`
	CoverURL    string   `json:"imagenPortada,omitempty"`
	Description string   `json:"descripcion"`
	Completed   bool     `json:"completado"`
}

// GameInput is the user-supplied part of a Game, used for create and full
// replace.
type GameInput struct {
	Title       string   `json:"titulo" validate:"required,max=200"`
	Category    Category `json:"genero" validate:"category"`
	Platform    Platform `json:"plataforma" validate:"platform"`
	ReleaseYear int      `json:"añoLanzamiento" validate:"releaseyear"`
	Developer   string   `json:"desarrollador" validate:"required,max=200"`
	CoverURL    string   `json:"imagenPortada" validate:"omitempty,url"`
	Description string   `json:"descripcion" validate:"required,max=1000"`
	Completed   bool     `json:"completado"`
}

// NewGameInput returns the defaults of an empty game form.
func NewGameInput(now time.Time) GameInput {
	return GameInput{
		Category:    CategoryAction,
		Platform:    PlatformPC,
		ReleaseYear: now.Year(),
	}
}

// Input returns the editable fields of g, used to pre-populate an edit form.
func (g Game) Input() GameInput {
	return GameInput{
		Title:       g.Title,
		Category:    g.Category,
		Platform:    g.Platform,
		ReleaseYear: g.ReleaseYear,
		Developer:   g.Developer,
		CoverURL:    g.CoverURL,
		Description: g.Description,
		Completed:   g.Completed,
	}
}

// Normalized trims surrounding whitespace from the text fields.
func (in GameInput) Normalized() GameInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Developer = strings.TrimSpace(in.Developer)
	in.CoverURL = strings.TrimSpace(in.CoverURL)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Validate checks the normalized input against the field rules.
func (in GameInput) Validate() error {
	return validateStruct(in.Normalized())
}

// Build returns the Game described by in under the given id.
func (in GameInput) Build(id string) Game {
	in = in.Normalized()
	return Game{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Platform:    in.Platform,
		ReleaseYear: in.ReleaseYear,
		Developer:   in.Developer,
		CoverURL:    in.CoverURL,
		Description: in.Description,
		Completed:   in.Completed,
	}
}

// CoverOrPlaceholder returns the cover URL, or placeholder when the cover is
// missing or not a usable http(s) URL.
func (g Game) CoverOrPlaceholder(placeholder string) string {
	u := strings.TrimSpace(g.CoverURL)
	if u == "" || !isHTTPURL(u) {
		return placeholder
	}
	return u
}
