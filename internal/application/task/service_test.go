package task

import (
	"context"
	"testing"

	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const taskID = "123e4567-e89b-12d3-a456-426614174000"

type mockTaskStore struct{ mock.Mock }

func (m *mockTaskStore) Put(ctx context.Context, t *domain.Task) error {
	return m.Called(ctx, t).Error(0)
}
func (m *mockTaskStore) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *mockTaskStore) Update(ctx context.Context, userID, taskID string, updates map[string]interface{}) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, updates)
	if t, _ := args.Get(0).(*domain.Task); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTaskStore) Delete(ctx context.Context, userID, taskID string) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func strPtr(s string) *string { return &s }

func TestCreate_HappyPath(t *testing.T) {
	ts := &mockTaskStore{}
	ts.On("Put", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)

	svc := NewService(ts)
	created, err := svc.Create(context.Background(), "u1", domain.CreateTaskRequest{
		Title: strPtr("  buy milk  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.NoError(t, validate.TaskID(created.TaskID))
	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, "", created.Description)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	ts.AssertExpectations(t)
}

func TestCreate_ValidationFailure_NothingWritten(t *testing.T) {
	ts := &mockTaskStore{}

	svc := NewService(ts)
	_, err := svc.Create(context.Background(), "u1", domain.CreateTaskRequest{})

	var ve validate.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "title is required")
	ts.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestList(t *testing.T) {
	ts := &mockTaskStore{}
	ts.On("ListByUser", mock.Anything, "u1").Return([]domain.Task{{TaskID: taskID}}, nil)

	svc := NewService(ts)
	tasks, err := svc.List(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestUpdate_HappyPath(t *testing.T) {
	ts := &mockTaskStore{}
	ts.On("Update", mock.Anything, "u1", taskID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, hasStamp := updates[fieldUpdatedAt]
		return updates[fieldTitle] == "new title" && hasStamp
	})).Return(&domain.Task{TaskID: taskID, Title: "new title"}, nil)

	svc := NewService(ts)
	got, err := svc.Update(context.Background(), "u1", taskID, domain.UpdateTaskRequest{
		Title: strPtr("  new title  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	ts.AssertExpectations(t)
}

func TestUpdate_InvalidTaskID(t *testing.T) {
	ts := &mockTaskStore{}

	svc := NewService(ts)
	_, err := svc.Update(context.Background(), "u1", "not-a-uuid", domain.UpdateTaskRequest{
		Title: strPtr("x"),
	})

	var ve validate.ValidationError
	require.ErrorAs(t, err, &ve)
	ts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_EmptyBody(t *testing.T) {
	svc := NewService(&mockTaskStore{})
	_, err := svc.Update(context.Background(), "u1", taskID, domain.UpdateTaskRequest{})

	var ve validate.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve, "at least one field (title, description, or status) must be provided")
}

func TestUpdate_NotFound(t *testing.T) {
	ts := &mockTaskStore{}
	ts.On("Update", mock.Anything, "u1", taskID, mock.Anything).Return(nil, domain.ErrNotFound)

	svc := NewService(ts)
	_, err := svc.Update(context.Background(), "u1", taskID, domain.UpdateTaskRequest{
		Status: strPtr("cancelled"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplete(t *testing.T) {
	ts := &mockTaskStore{}
	ts.On("Update", mock.Anything, "u1", taskID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		return updates[fieldStatus] == domain.StatusCompleted
	})).Return(&domain.Task{TaskID: taskID, Status: domain.StatusCompleted}, nil)

	svc := NewService(ts)
	got, err := svc.Complete(context.Background(), "u1", taskID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	ts.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	ts := &mockTaskStore{}
	ts.On("Delete", mock.Anything, "u1", taskID).Return(nil)

	svc := NewService(ts)
	require.NoError(t, svc.Delete(context.Background(), "u1", taskID))
	ts.AssertExpectations(t)
}

func TestDelete_InvalidTaskID(t *testing.T) {
	ts := &mockTaskStore{}

	svc := NewService(ts)
	err := svc.Delete(context.Background(), "u1", "")

	var ve validate.ValidationError
	require.ErrorAs(t, err, &ve)
	ts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
