package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, year int) {
	t.Helper()
	prev := Now
	Now = func() time.Time { return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { Now = prev })
}

func validGameInput() GameInput {
	return GameInput{
		Title:       "Hollow Knight",
		Category:    CategoryAdventure,
		Platform:    PlatformSwitch,
		ReleaseYear: 2017,
		Developer:   "Team Cherry",
		Description: "Metroidvania in a ruined insect kingdom.",
	}
}

func TestGameInput_Validate(t *testing.T) {
	fixedNow(t, 2025)

	tests := []struct {
		name      string
		mutate    func(*GameInput)
		wantField string
	}{
		{name: "valid", mutate: func(*GameInput) {}},
		{name: "blank title", mutate: func(in *GameInput) { in.Title = "   " }, wantField: "titulo"},
		{name: "missing developer", mutate: func(in *GameInput) { in.Developer = "" }, wantField: "desarrollador"},
		{name: "year too old", mutate: func(in *GameInput) { in.ReleaseYear = 1969 }, wantField: "añoLanzamiento"},
		{name: "year upper bound ok", mutate: func(in *GameInput) { in.ReleaseYear = 2027 }},
		{name: "year too new", mutate: func(in *GameInput) { in.ReleaseYear = 2028 }, wantField: "añoLanzamiento"},
		{name: "bad cover", mutate: func(in *GameInput) { in.CoverURL = "not a url" }, wantField: "imagenPortada"},
		{name: "good cover", mutate: func(in *GameInput) { in.CoverURL = "https://img.example/hk.png" }},
		{name: "unknown genre", mutate: func(in *GameInput) { in.Category = "Shooter" }, wantField: "genero"},
		{name: "unknown platform", mutate: func(in *GameInput) { in.Platform = "Amiga" }, wantField: "plataforma"},
		{name: "description too long", mutate: func(in *GameInput) { in.Description = strings.Repeat("á", 1001) }, wantField: "descripcion"},
		{name: "description at limit", mutate: func(in *GameInput) { in.Description = strings.Repeat("á", 1000) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validGameInput()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			_, ok := verrs.Field(tt.wantField)
			assert.True(t, ok, "expected error on %s, got %v", tt.wantField, verrs)
		})
	}
}

func TestReviewInput_Validate(t *testing.T) {
	valid := ReviewInput{GameID: "g1", Rating: 4, Body: "Great pacing.", HoursPlayed: 12.5, Difficulty: DifficultyHard}

	tests := []struct {
		name      string
		mutate    func(*ReviewInput)
		wantField string
	}{
		{name: "valid", mutate: func(*ReviewInput) {}},
		{name: "rating zero", mutate: func(in *ReviewInput) { in.Rating = 0 }, wantField: "puntuacion"},
		{name: "rating six", mutate: func(in *ReviewInput) { in.Rating = 6 }, wantField: "puntuacion"},
		{name: "short body", mutate: func(in *ReviewInput) { in.Body = "  too short " }, wantField: "textoReseña"},
		{name: "long body", mutate: func(in *ReviewInput) { in.Body = strings.Repeat("x", 2001) }, wantField: "textoReseña"},
		{name: "negative hours", mutate: func(in *ReviewInput) { in.HoursPlayed = -1 }, wantField: "horasJugadas"},
		{name: "infinite hours", mutate: func(in *ReviewInput) { in.HoursPlayed = math.Inf(1) }, wantField: "horasJugadas"},
		{name: "NaN hours", mutate: func(in *ReviewInput) { in.HoursPlayed = math.NaN() }, wantField: "horasJugadas"},
		{name: "unknown difficulty", mutate: func(in *ReviewInput) { in.Difficulty = "Brutal" }, wantField: "dificultad"},
		{name: "no game", mutate: func(in *ReviewInput) { in.GameID = "" }, wantField: "juegoId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			_, ok := verrs.Field(tt.wantField)
			assert.True(t, ok, "expected error on %s, got %v", tt.wantField, verrs)
		})
	}
}

func TestReviewInput_NonFiniteHoursMessage(t *testing.T) {
	in := ReviewInput{GameID: "g1", Rating: 3, Body: "Endless grind.", HoursPlayed: math.Inf(1), Difficulty: DifficultyNormal}

	var verrs ValidationErrors
	require.ErrorAs(t, in.Validate(), &verrs)
	msg, ok := verrs.Field("horasJugadas")
	require.True(t, ok)
	assert.Equal(t, "must be a finite number", msg)
}

func TestFormDefaults(t *testing.T) {
	g := NewGameInput(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, GameInput{Category: CategoryAction, Platform: PlatformPC, ReleaseYear: 2024}, g)

	r := NewReviewInput("g1")
	assert.Equal(t, ReviewInput{GameID: "g1", Rating: 5, Difficulty: DifficultyNormal, Recommends: true}, r)
}

func TestDifficulty_Ordinal(t *testing.T) {
	assert.Equal(t, 1, DifficultyEasy.Ordinal())
	assert.Equal(t, 2, DifficultyNormal.Ordinal())
	assert.Equal(t, 3, DifficultyHard.Ordinal())
	assert.Equal(t, 4, DifficultyVeryHard.Ordinal())
	assert.Equal(t, 0, Difficulty("Extreme").Ordinal())
}

func TestParseLabels(t *testing.T) {
	d, ok := ParseDifficulty("muy dificil")
	assert.True(t, ok)
	assert.Equal(t, DifficultyVeryHard, d)

	d, ok = ParseDifficulty("3")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, d)

	c, ok := ParseCategory("accion")
	assert.True(t, ok)
	assert.Equal(t, CategoryAction, c)

	p, ok := ParsePlatform("nintendo  switch")
	assert.True(t, ok)
	assert.Equal(t, PlatformSwitch, p)

	_, ok = ParsePlatform("Dreamcast")
	assert.False(t, ok)
}

func TestReview_DecodesBareAndPopulatedGameRef(t *testing.T) {
	bare := `{"_id":"r1","juegoId":"g1","puntuacion":4,"textoReseña":"Solid game","dificultad":"Normal","recomendaria":true}`
	populated := `{"_id":"r2","juegoId":{"_id":"g2","titulo":"Celeste","genero":"Puzzle"},"puntuacion":5,"horasJugadas":30,"dificultad":"Difícil","fechaCreacion":"2024-05-01T10:00:00Z"}`

	var r1, r2 Review
	require.NoError(t, json.Unmarshal([]byte(bare), &r1))
	require.NoError(t, json.Unmarshal([]byte(populated), &r2))

	assert.Equal(t, "g1", r1.GameID())
	assert.Nil(t, r1.Game.Game)
	assert.Zero(t, r1.HoursPlayed)

	assert.Equal(t, "g2", r2.GameID())
	require.NotNil(t, r2.Game.Game)
	assert.Equal(t, "Celeste", r2.Game.Game.Title)
	assert.Equal(t, DifficultyHard, r2.Difficulty)
	assert.Equal(t, 2024, r2.CreatedAt.Year())
}

func TestGameRef_RejectsNumbers(t *testing.T) {
	var r Review
	err := json.Unmarshal([]byte(`{"juegoId":42}`), &r)
	assert.Error(t, err)
}

func TestReviewInput_MarshalsWireNames(t *testing.T) {
	b, err := json.Marshal(ReviewInput{GameID: "g1", Rating: 3, Body: "body text!", Difficulty: DifficultyEasy})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "g1", m["juegoId"])
	assert.Equal(t, "body text!", m["textoReseña"])
	assert.Equal(t, "Fácil", m["dificultad"])
}

func TestGame_InputRoundTrip(t *testing.T) {
	in := validGameInput()
	in.Title = "  Hollow Knight  "

	g := in.Build("g9")
	want := Game{
		ID: "g9", Title: "Hollow Knight", Category: CategoryAdventure, Platform: PlatformSwitch,
		ReleaseYear: 2017, Developer: "Team Cherry", Description: "Metroidvania in a ruined insect kingdom.",
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("Build mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, in.Normalized(), g.Input())
}

func TestGame_CoverOrPlaceholder(t *testing.T) {
	const ph = "https://placeholder/cover.png"

	assert.Equal(t, ph, Game{}.CoverOrPlaceholder(ph))
	assert.Equal(t, ph, Game{CoverURL: "file:///etc/passwd"}.CoverOrPlaceholder(ph))
	assert.Equal(t, ph, Game{CoverURL: "::bad"}.CoverOrPlaceholder(ph))
	assert.Equal(t, "https://img/x.png", Game{CoverURL: " https://img/x.png "}.CoverOrPlaceholder(ph))
}
