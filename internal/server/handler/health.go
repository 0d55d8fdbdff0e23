package handler

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/server/response"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
