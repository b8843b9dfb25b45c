package handler

import (
	"net/http"

	"github.com/go-todo-api/internal/transport/http/respond"
)

// HealthHandler handles the health-check endpoint.
type HealthHandler struct {
	wr *respond.Writer
}

func NewHealthHandler(wr *respond.Writer) *HealthHandler { return &HealthHandler{wr: wr} }

func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	h.wr.JSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
}
