package handler

import "github.com/go-todo-api/internal/domain"

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// SignupEnvelope wraps the created account. PasswordHash and PasswordSalt
// never serialize — domain.User hides them.
type SignupEnvelope struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// LoginEnvelope wraps a successful login.
type LoginEnvelope struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// DeleteTaskEnvelope confirms a deletion.
type DeleteTaskEnvelope struct {
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}
