// Package response writes the success envelope of the backend API:
//
//	{"success": true, "data": ...}
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/server/apierror"
)

// Response is the success envelope. Data is always present, so an empty
// list is sent as [] rather than omitted.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// JSON sends data in the success envelope with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

// OK writes data with status 200.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created writes data with status 201.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Error sends err as an API error body.
func Error(w http.ResponseWriter, err error) {
	e := apierror.FromError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_, _ = w.Write(e.ToJSON())
}
