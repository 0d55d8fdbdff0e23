// Package apierror describes the structured error body of the backend API:
//
//	{"success": false, "error": {"code": "...", "message": "...", "details": [...]}}
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeUnknownGame = "UNKNOWN_GAME"
	CodeInternal    = "INTERNAL_ERROR"
)

// Error is an API error with its HTTP status.
type Error struct {
	StatusCode int          `json:"-"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is the validation failure of one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

type body struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error"`
}

// ToJSON renders the full response body.
func (e *Error) ToJSON() []byte {
	data, _ := json.Marshal(body{Success: false, Error: e})
	return data
}

// BadRequest returns a 400 with code BAD_REQUEST.
func BadRequest(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Code: CodeBadRequest, Message: message}
}

// NotFound returns a 404. An empty message uses the default one.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// InternalError returns a 500 with code INTERNAL_ERROR.
func InternalError(message string) *Error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &Error{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: message}
}

// Validation converts field errors into a 400 response.
func Validation(errs models.ValidationErrors) *Error {
	details := make([]FieldError, len(errs))
	for i, fe := range errs {
		details[i] = FieldError{Field: fe.Field, Message: fe.Message}
	}
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		Message:    errs.Error(),
		Details:    details,
	}
}

// FromError maps service errors onto API errors. Unrecognised errors become
// a generic 500 so internals are not leaked.
func FromError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return Validation(verrs)
	case errors.Is(err, common.ErrorNotFound):
		return NotFound("")
	case errors.Is(err, common.ErrorUnknownGame):
		return &Error{
			StatusCode: http.StatusBadRequest,
			Code:       CodeUnknownGame,
			Message:    "The referenced game does not exist",
		}
	}
	return InternalError("")
}
