package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/transport/http/middleware"
	"github.com/go-todo-api/internal/transport/http/respond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const taskID = "123e4567-e89b-12d3-a456-426614174000"

type mockTaskService struct{ mock.Mock }

func (m *mockTaskService) Create(ctx context.Context, userID string, req domain.CreateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, userID, req)
	if t, _ := args.Get(0).(*domain.Task); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *mockTaskService) Update(ctx context.Context, userID, taskID string, req domain.UpdateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, req)
	if t, _ := args.Get(0).(*domain.Task); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTaskService) Complete(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	if t, _ := args.Get(0).(*domain.Task); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTaskService) Delete(ctx context.Context, userID, taskID string) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

// taskRouter mounts the handler under the real routes so chi URL params work.
func taskRouter(svc *mockTaskService) http.Handler {
	h := NewTaskHandler(svc, respond.NewWriter(false))
	r := chi.NewRouter()
	r.Post("/todo", h.Create)
	r.Get("/todo", h.List)
	r.Put("/todo/{taskId}", h.Update)
	r.Delete("/todo/{taskId}", h.Delete)
	r.Patch("/todo/{taskId}/done", h.Complete)
	return r
}

func doAs(router http.Handler, userID, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(middleware.WithIdentity(req.Context(), &middleware.Identity{UserID: userID}))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateTask_Created(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("Create", mock.Anything, "u1", mock.Anything).
		Return(&domain.Task{UserID: "u1", TaskID: taskID, Title: "buy milk", Status: domain.StatusPending}, nil)

	rr := doAs(taskRouter(svc), "u1", http.MethodPost, "/todo", `{"title":"buy milk"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"pending"`)
	svc.AssertExpectations(t)
}

func TestCreateTask_NoIdentity_NothingCalled(t *testing.T) {
	svc := &mockTaskService{}

	rr := doAs(taskRouter(svc), "", http.MethodPost, "/todo", `{"title":"buy milk"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTask_ValidationError(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("Create", mock.Anything, "u1", mock.Anything).
		Return(nil, domain.Validation("title is required"))

	rr := doAs(taskRouter(svc), "u1", http.MethodPost, "/todo", `{}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "title is required")
}

func TestListTasks_OK(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("List", mock.Anything, "u1").Return([]domain.Task{{TaskID: taskID}}, nil)

	rr := doAs(taskRouter(svc), "u1", http.MethodGet, "/todo", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), taskID)
}

func TestListTasks_EmptyIsArray(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("List", mock.Anything, "u1").Return([]domain.Task{}, nil)

	rr := doAs(taskRouter(svc), "u1", http.MethodGet, "/todo", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("Update", mock.Anything, "u1", taskID, mock.Anything).Return(nil, domain.ErrNotFound)

	rr := doAs(taskRouter(svc), "u1", http.MethodPut, "/todo/"+taskID, `{"title":"x"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error":"Resource Not Found"`)
}

func TestCompleteTask_OK(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("Complete", mock.Anything, "u1", taskID).
		Return(&domain.Task{TaskID: taskID, Status: domain.StatusCompleted}, nil)

	rr := doAs(taskRouter(svc), "u1", http.MethodPatch, "/todo/"+taskID+"/done", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"completed"`)
}

func TestDeleteTask_OK(t *testing.T) {
	svc := &mockTaskService{}
	svc.On("Delete", mock.Anything, "u1", taskID).Return(nil)

	rr := doAs(taskRouter(svc), "u1", http.MethodDelete, "/todo/"+taskID, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"taskId":"`+taskID+`"`)
	assert.Contains(t, rr.Body.String(), "task deleted successfully")
}
