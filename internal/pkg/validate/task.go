package validate

import (
	"errors"
	"strings"

	"github.com/go-todo-api/internal/domain"
)

// CreateTaskInput is a create body that passed validation, with trimmed values.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput is an update body that passed validation. Nil fields were
// absent from the request.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// collect appends the messages of a ValidationError to errs and passes any
// other error kind straight through.
func collect(errs ValidationError, err error) (ValidationError, error) {
	if err == nil {
		return errs, nil
	}
	var ve ValidationError
	if !errors.As(err, &ve) {
		return errs, err
	}
	return append(errs, ve...), nil
}

// ValidateCreateTaskInput checks a task-create body: title is required and at
// most 200 characters, description is optional and at most 1000. All violated
// rules are reported together. Description defaults to the empty string.
func ValidateCreateTaskInput(req domain.CreateTaskRequest) (CreateTaskInput, error) {
	var errs ValidationError
	var err error

	var title any
	if req.Title != nil {
		title = *req.Title
	}
	if errs, err = collect(errs, Required(title, "title")); err != nil {
		return CreateTaskInput{}, err
	}
	if errs, err = collect(errs, String(title, "title", 200)); err != nil {
		return CreateTaskInput{}, err
	}

	if req.Description != nil {
		if errs, err = collect(errs, String(*req.Description, "description", 1000)); err != nil {
			return CreateTaskInput{}, err
		}
	}

	if len(errs) > 0 {
		return CreateTaskInput{}, errs
	}

	out := CreateTaskInput{Title: strings.TrimSpace(*req.Title)}
	if req.Description != nil {
		out.Description = strings.TrimSpace(*req.Description)
	}
	return out, nil
}

// ValidateUpdateTaskInput checks a task-update body: every present field must
// be individually valid, and at least one of title, description or status must
// be present. The all-absent case gets its own dedicated error.
func ValidateUpdateTaskInput(req domain.UpdateTaskRequest) (UpdateTaskInput, error) {
	var errs ValidationError
	var err error
	var out UpdateTaskInput

	if req.Title != nil {
		before := len(errs)
		if errs, err = collect(errs, String(*req.Title, "title", 200)); err != nil {
			return UpdateTaskInput{}, err
		}
		if len(errs) == before {
			t := strings.TrimSpace(*req.Title)
			out.Title = &t
		}
	}

	if req.Description != nil {
		before := len(errs)
		if errs, err = collect(errs, String(*req.Description, "description", 1000)); err != nil {
			return UpdateTaskInput{}, err
		}
		if len(errs) == before {
			d := strings.TrimSpace(*req.Description)
			out.Description = &d
		}
	}

	if req.Status != nil {
		before := len(errs)
		if errs, err = collect(errs, Status(*req.Status)); err != nil {
			return UpdateTaskInput{}, err
		}
		if len(errs) == before {
			out.Status = req.Status
		}
	}

	if len(errs) > 0 {
		return UpdateTaskInput{}, errs
	}

	if out.Title == nil && out.Description == nil && out.Status == nil {
		return UpdateTaskInput{}, ValidationError{"at least one field (title, description, or status) must be provided"}
	}
	return out, nil
}
