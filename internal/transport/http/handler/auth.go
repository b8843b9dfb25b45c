package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-todo-api/internal/application/auth"
	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/pkg/validate"
	"github.com/go-todo-api/internal/transport/http/respond"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	svc auth.Service
	wr  *respond.Writer
}

func NewAuthHandler(svc auth.Service, wr *respond.Writer) *AuthHandler {
	return &AuthHandler{svc: svc, wr: wr}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.wr.Err(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.wr.Err(w, r, domain.Validation(err.Error()))
		return
	}

	u, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusCreated, SignupEnvelope{
		Message: "account created successfully",
		User:    u,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.wr.Err(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.wr.Err(w, r, domain.Validation(err.Error()))
		return
	}

	token, u, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusOK, LoginEnvelope{
		Message: "login successful",
		Token:   token,
		User:    u,
	})
}
