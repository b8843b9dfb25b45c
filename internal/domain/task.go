package domain

import "time"

// Task statuses accepted by the API.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Task lives in the tasks table under a composite key: user_id (partition)
// and task_id (sort). (UserID, TaskID) uniquely identifies a task and the
// owner never changes.
type Task struct {
	UserID      string    `json:"userId" dynamodbav:"user_id"`
	TaskID      string    `json:"taskId" dynamodbav:"task_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	Status      string    `json:"status" dynamodbav:"status"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// CreateTaskRequest is the decoded create body before validation.
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskRequest is the decoded update body. Pointer fields distinguish
// "absent" from "empty"; at least one must be present.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
