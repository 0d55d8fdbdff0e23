package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer

	got, err := GetMultiline(rdr("a\nb\n\n"), "Text", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = GetMultiline(rdr("\n"), "Text", "keep me", &out)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got)

	_, err = GetMultiline(rdr(""), "Text", "", &out)
	assert.Error(t, err)
}

func TestPromptText_DefaultOnEmpty(t *testing.T) {
	var out bytes.Buffer
	got, err := promptText(rdr("\n"), &out, "Title", "Doom")
	require.NoError(t, err)
	assert.Equal(t, "Doom", got)
	assert.Equal(t, "Title [Doom]: ", out.String())
}

func TestPromptInt_RetriesOnGarbage(t *testing.T) {
	var out bytes.Buffer
	got, err := promptInt(rdr("abc\n2019\n"), &out, "Year", 2025)
	require.NoError(t, err)
	assert.Equal(t, 2019, got)
	assert.Contains(t, out.String(), "whole number")
}

func TestPromptFloat_AcceptsComma(t *testing.T) {
	var out bytes.Buffer
	got, err := promptFloat(rdr("12,5\n"), &out, "Hours", 0)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
}

func TestPromptFloat_RejectsNonFinite(t *testing.T) {
	var out bytes.Buffer
	got, err := promptFloat(rdr("inf\nNaN\n-Infinity\n40\n"), &out, "Hours", 0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a number."))
}

func TestPromptBool(t *testing.T) {
	var out bytes.Buffer
	got, err := promptBool(rdr("maybe\nY\n"), &out, "Completed", false)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = promptBool(rdr("\n"), &out, "Completed", true)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestPromptChoice(t *testing.T) {
	var out bytes.Buffer

	got, err := promptChoice(rdr("3\n"), &out, "Platform", models.Platforms, models.PlatformPC, models.ParsePlatform)
	require.NoError(t, err)
	assert.Equal(t, models.PlatformXbox, got)

	got, err = promptChoice(rdr("nope\nmultiple\n"), &out, "Platform", models.Platforms, models.PlatformPC, models.ParsePlatform)
	require.NoError(t, err)
	assert.Equal(t, models.PlatformMultiple, got)

	gotDifficulty, err := promptChoice(rdr("\n"), &out, "Difficulty", models.Difficulties, models.DifficultyNormal, models.ParseDifficulty)
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyNormal, gotDifficulty)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	for in, want := range map[string]bool{"y\n": true, "yes\n": true, "\n": false, "n\n": false, "whatever\n": false} {
		got, err := Confirm(rdr(in), &out, "Sure?")
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
