package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal    = errors.New("internal error")
	ErrorUnknownGame = errors.New("referenced game does not exist")
)
