package models

import "strings"

// Category is the genre of a game.
type Category string

const (
	CategoryAction     Category = "Acción"
	CategoryAdventure  Category = "Aventura"
	CategoryRPG        Category = "RPG"
	CategoryStrategy   Category = "Estrategia"
	CategorySports     Category = "Deportes"
	CategorySimulation Category = "Simulación"
	CategoryHorror     Category = "Terror"
	CategoryPuzzle     Category = "Puzzle"
	CategoryRacing     Category = "Carreras"
	CategoryOther      Category = "Otro"
)

// Categories lists every genre in display order.
var Categories = []Category{
	CategoryAction, CategoryAdventure, CategoryRPG, CategoryStrategy, CategorySports,
	CategorySimulation, CategoryHorror, CategoryPuzzle, CategoryRacing, CategoryOther,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the known genres ignoring case and accents.
func ParseCategory(s string) (Category, bool) {
	k := foldLabel(s)
	for _, v := range Categories {
		if foldLabel(string(v)) == k {
			return v, true
		}
	}
	return "", false
}

// Platform is the system a game runs on.
type Platform string

const (
	PlatformPC          Platform = "PC"
	PlatformPlayStation Platform = "PlayStation"
	PlatformXbox        Platform = "Xbox"
	PlatformSwitch      Platform = "Nintendo Switch"
	PlatformMobile      Platform = "Mobile"
	PlatformMultiple    Platform = "Múltiple"
)

// Platforms lists the accepted platforms in form order.
var Platforms = []Platform{
	PlatformPC, PlatformPlayStation, PlatformXbox, PlatformSwitch, PlatformMobile, PlatformMultiple,
}

// Valid reports whether p is one of Platforms.
func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// ParsePlatform matches s against the platform labels ignoring case and
// accents.
func ParsePlatform(s string) (Platform, bool) {
	k := foldLabel(s)
	for _, v := range Platforms {
		if foldLabel(string(v)) == k {
			return v, true
		}
	}
	return "", false
}

// Difficulty is the perceived difficulty recorded with a review. The levels
// are ordered, see Ordinal.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Fácil"
	DifficultyNormal   Difficulty = "Normal"
	DifficultyHard     Difficulty = "Difícil"
	DifficultyVeryHard Difficulty = "Muy Difícil"
)

// Difficulties lists the levels from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyVeryHard}

// Ordinal maps Fácil..Muy Difícil to 1..4. Unknown labels map to 0.
func (d Difficulty) Ordinal() int {
	for i, v := range Difficulties {
		if v == d {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether d is one of the four levels.
func (d Difficulty) Valid() bool { return d.Ordinal() > 0 }

// ParseDifficulty accepts a label (case and accent insensitive), an English
// alias or the ordinal 1..4.
func ParseDifficulty(s string) (Difficulty, bool) {
	k := foldLabel(s)
	switch k {
	case "1", "easy":
		return DifficultyEasy, true
	case "2":
		return DifficultyNormal, true
	case "3", "hard":
		return DifficultyHard, true
	case "4", "very hard":
		return DifficultyVeryHard, true
	}
	for _, v := range Difficulties {
		if foldLabel(string(v)) == k {
			return v, true
		}
	}
	return "", false
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n",
)

func foldLabel(s string) string {
	return strings.ToLower(accentFolder.Replace(strings.Join(strings.Fields(s), " ")))
}
