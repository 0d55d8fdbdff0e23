// Package models defines the catalog records exchanged between the client and
// the catalog backend: games, reviews and their input forms.
//
// JSON tags follow the backend wire format, which uses Spanish field names
// (titulo, genero, juegoId, ...). Enum values are transmitted as their
// display labels.
package models
