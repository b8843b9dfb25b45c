package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-todo-api/internal/application/task"
	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/transport/http/middleware"
	"github.com/go-todo-api/internal/transport/http/respond"
)

// TaskHandler handles the per-user task CRUD endpoints.
type TaskHandler struct {
	svc task.Service
	wr  *respond.Writer
}

func NewTaskHandler(svc task.Service, wr *respond.Writer) *TaskHandler {
	return &TaskHandler{svc: svc, wr: wr}
}

// userID pulls the authenticated identity injected by the auth middleware.
func (h *TaskHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.wr.Err(w, r, domain.Unauthorized("missing or invalid authorization header"))
		return "", false
	}
	return ident.UserID, true
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req domain.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.wr.Err(w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), userID, req)
	if err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusCreated, t)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	tasks, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req domain.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.wr.Err(w, r, err)
		return
	}

	t, err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "taskId"), req)
	if err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	t, err := h.svc.Complete(r.Context(), userID, chi.URLParam(r, "taskId"))
	if err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	taskID := chi.URLParam(r, "taskId")
	if err := h.svc.Delete(r.Context(), userID, taskID); err != nil {
		h.wr.Err(w, r, err)
		return
	}
	h.wr.JSON(w, http.StatusOK, DeleteTaskEnvelope{
		Message: "task deleted successfully",
		TaskID:  taskID,
	})
}
