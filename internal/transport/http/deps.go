package http

import (
	"github.com/go-todo-api/internal/infrastructure/dynamo"
	"github.com/go-todo-api/internal/infrastructure/token"
)

// Deps holds all infrastructure dependencies for the router. They are
// constructed once per process in main and injected — no package-level
// singletons.
type Deps struct {
	UserRepo *dynamo.UserRepo
	TaskRepo *dynamo.TaskRepo
	Tokens   *token.Provider
}
