package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/pkg/id"
	"github.com/go-todo-api/internal/pkg/password"
	"github.com/go-todo-api/internal/pkg/validate"
)

type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (token string, user *domain.User, err error)
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	RecordLogin(ctx context.Context, email string, at time.Time) error
}

type tokenSigner interface {
	Sign(userID, email string) (string, error)
}

type service struct {
	repo   userStore
	tokens tokenSigner
}

func NewService(repo userStore, tokens tokenSigner) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	if req.Email == "" || !validate.Email(req.Email) {
		return nil, domain.Validation("valid email is required")
	}
	if err := validate.PasswordStrength(req.Password); err != nil {
		return nil, domain.Validation(err.Error())
	}

	email := strings.ToLower(req.Email)
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	hash, salt, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		Email:        email,
		UserID:       id.NewUserID(),
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	slog.Info("user account created", "user_id", u.UserID, "email", email)
	return u, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.User, error) {
	if req.Email == "" || !validate.Email(req.Email) {
		return "", nil, domain.Validation("valid email is required")
	}
	if req.Password == "" {
		return "", nil, domain.Validation("password is required")
	}

	email := strings.ToLower(req.Email)
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Same message for unknown email and wrong password.
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.Unauthorized("invalid email or password")
		}
		return "", nil, err
	}

	if !password.Verify(req.Password, u.PasswordHash, u.PasswordSalt) {
		slog.Warn("invalid password attempt", "email", email)
		return "", nil, domain.Unauthorized("invalid email or password")
	}

	now := time.Now().UTC()
	if err := s.repo.RecordLogin(ctx, email, now); err != nil {
		return "", nil, fmt.Errorf("record login: %w", err)
	}
	u.LastLoginAt = &now

	token, err := s.tokens.Sign(u.UserID, u.Email)
	if err != nil {
		return "", nil, err
	}

	slog.Info("user logged in", "user_id", u.UserID, "email", email)
	return token, u, nil
}
