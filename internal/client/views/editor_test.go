package views

import (
	"testing"

	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_CreateSuccess(t *testing.T) {
	var e Editor[models.GameInput]
	assert.Equal(t, PhaseIdle, e.Phase())

	require.NoError(t, e.OpenCreate(models.GameInput{Category: models.CategoryAction}))
	assert.Equal(t, PhaseEditing, e.Phase())
	assert.Equal(t, ModeCreate, e.Mode())

	require.NoError(t, e.Update(func(in *models.GameInput) { in.Title = "Doom" }))

	draft, err := e.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Doom", draft.Title)
	assert.True(t, e.Submitting())

	require.NoError(t, e.Succeed())
	assert.False(t, e.Open())
	assert.Equal(t, models.GameInput{}, e.Draft())
}

func TestEditor_FailureKeepsDraft(t *testing.T) {
	var e Editor[models.ReviewInput]
	require.NoError(t, e.OpenEdit("r1", models.ReviewInput{Body: "original text"}))
	assert.Equal(t, ModeEdit, e.Mode())
	assert.Equal(t, "r1", e.TargetID())

	require.NoError(t, e.Update(func(in *models.ReviewInput) { in.Body = "edited text here" }))
	_, err := e.Submit()
	require.NoError(t, err)

	require.NoError(t, e.Fail("server unavailable"))
	assert.Equal(t, PhaseEditing, e.Phase())
	assert.Equal(t, "edited text here", e.Draft().Body)
	assert.Equal(t, "server unavailable", e.Notice())
	assert.Equal(t, "r1", e.TargetID())

	_, err = e.Submit()
	require.NoError(t, err)
	assert.Empty(t, e.Notice())
}

func TestEditor_InvalidTransitions(t *testing.T) {
	var e Editor[string]

	assert.ErrorIs(t, e.Update(func(*string) {}), ErrInvalidTransition)
	_, err := e.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, e.Succeed(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Fail("x"), ErrInvalidTransition)
	assert.ErrorIs(t, e.Cancel(), ErrInvalidTransition)

	require.NoError(t, e.OpenCreate("draft"))
	assert.ErrorIs(t, e.OpenEdit("id", "other"), ErrInvalidTransition)
	assert.ErrorIs(t, e.Succeed(), ErrInvalidTransition)

	_, err = e.Submit()
	require.NoError(t, err)
	assert.ErrorIs(t, e.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Update(func(*string) {}), ErrInvalidTransition)
}

func TestEditor_CancelAndReject(t *testing.T) {
	var e Editor[string]
	require.NoError(t, e.OpenCreate("x"))
	require.NoError(t, e.Reject("title is required"))
	assert.Equal(t, PhaseEditing, e.Phase())
	assert.Equal(t, "title is required", e.Notice())

	require.NoError(t, e.Cancel())
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, "", e.Draft())
}
