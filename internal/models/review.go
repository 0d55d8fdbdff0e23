package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Review is a user's assessment of a game.
type Review struct {
	ID          string     `json:"_id"`
	Game        GameRef    `json:"juegoId"`
	Rating      int        `json:"puntuacion"`
	Body        string     `json:"textoReseña"`
	HoursPlayed float64    `json:"horasJugadas"`
	Difficulty  Difficulty `json:"dificultad"`
	Recommends  bool       `json:"recomendaria"`
	CreatedAt   time.Time  `json:"fechaCreacion,omitzero"`
}

// GameID returns the id of the reviewed game.
func (r Review) GameID() string { return r.Game.ID }

// Input returns the editable fields of r.
func (r Review) Input() ReviewInput {
	return ReviewInput{
		GameID:      r.Game.ID,
		Rating:      r.Rating,
		Body:        r.Body,
		HoursPlayed: r.HoursPlayed,
		Difficulty:  r.Difficulty,
		Recommends:  r.Recommends,
	}
}

// ReviewInput is the user-supplied part of a Review.
type ReviewInput struct {
	GameID      string     `json:"juegoId" validate:"required"`
	Rating      int        `json:"puntuacion" validate:"min=1,max=5"`
	Body        string     `json:"textoReseña" validate:"required,min=10,max=2000"`
	HoursPlayed float64    `json:"horasJugadas" validate:"finite,gte=0"`
	Difficulty  Difficulty `json:"dificultad" validate:"difficulty"`
	Recommends  bool       `json:"recomendaria"`
}

// NewReviewInput returns the defaults of an empty review form for gameID.
func NewReviewInput(gameID string) ReviewInput {
	return ReviewInput{
		GameID:     gameID,
		Rating:     5,
		Difficulty: DifficultyNormal,
		Recommends: true,
	}
}

// Normalized trims the free-text fields.
func (in ReviewInput) Normalized() ReviewInput {
	in.GameID = strings.TrimSpace(in.GameID)
	in.Body = strings.TrimSpace(in.Body)
	return in
}

// Validate checks the normalized input and returns ValidationErrors.
func (in ReviewInput) Validate() error {
	return validateStruct(in.Normalized())
}

// Build returns the Review described by in. game may be nil.
func (in ReviewInput) Build(id string, game *Game, createdAt time.Time) Review {
	in = in.Normalized()
	return Review{
		ID:          id,
		Game:        GameRef{ID: in.GameID, Game: game},
		Rating:      in.Rating,
		Body:        in.Body,
		HoursPlayed: in.HoursPlayed,
		Difficulty:  in.Difficulty,
		Recommends:  in.Recommends,
		CreatedAt:   createdAt,
	}
}

// GameRef is the reviewed-game reference. The backend sends either the bare
// id or the populated game record; both decode into a GameRef with ID set.
type GameRef struct {
	ID   string
	Game *Game
}

func (r GameRef) MarshalJSON() ([]byte, error) {
	if r.Game != nil {
		return json.Marshal(r.Game)
	}
	return json.Marshal(r.ID)
}

func (r *GameRef) UnmarshalJSON(b []byte) error {
	res := gjson.ParseBytes(b)
	switch {
	case res.Type == gjson.Null:
		*r = GameRef{}
	case res.Type == gjson.String:
		*r = GameRef{ID: res.String()}
	case res.IsObject():
		var g Game
		if err := json.Unmarshal(b, &g); err != nil {
			return err
		}
		*r = GameRef{ID: g.ID, Game: &g}
	default:
		return fmt.Errorf("juegoId: unexpected JSON %s", res.Type)
	}
	return nil
}
