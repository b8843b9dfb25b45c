package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/pkg/id"
	"github.com/go-todo-api/internal/pkg/validate"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldUpdatedAt   = "updated_at"
)

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateTaskRequest) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, userID, taskID string, req domain.UpdateTaskRequest) (*domain.Task, error)
	Complete(ctx context.Context, userID, taskID string) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

type taskStore interface {
	Put(ctx context.Context, t *domain.Task) error
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, userID, taskID string, updates map[string]interface{}) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

type service struct {
	repo taskStore
}

func NewService(repo taskStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateTaskRequest) (*domain.Task, error) {
	input, err := validate.ValidateCreateTaskInput(req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Task{
		UserID:      userID,
		TaskID:      id.NewTaskID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}

	slog.Info("task created", "user_id", userID, "task_id", t.TaskID)
	return t, nil
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID, taskID string, req domain.UpdateTaskRequest) (*domain.Task, error) {
	if err := validate.TaskID(taskID); err != nil {
		return nil, err
	}
	input, err := validate.ValidateUpdateTaskInput(req)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		fieldUpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if input.Title != nil {
		updates[fieldTitle] = *input.Title
	}
	if input.Description != nil {
		updates[fieldDescription] = *input.Description
	}
	if input.Status != nil {
		updates[fieldStatus] = *input.Status
	}

	t, err := s.repo.Update(ctx, userID, taskID, updates)
	if err != nil {
		return nil, err
	}
	slog.Info("task updated", "user_id", userID, "task_id", taskID)
	return t, nil
}

func (s *service) Complete(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	if err := validate.TaskID(taskID); err != nil {
		return nil, err
	}

	t, err := s.repo.Update(ctx, userID, taskID, map[string]interface{}{
		fieldStatus:    domain.StatusCompleted,
		fieldUpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	slog.Info("task completed", "user_id", userID, "task_id", taskID)
	return t, nil
}

func (s *service) Delete(ctx context.Context, userID, taskID string) error {
	if err := validate.TaskID(taskID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	slog.Info("task deleted", "user_id", userID, "task_id", taskID)
	return nil
}
