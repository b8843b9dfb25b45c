package domain

import "time"

// User is keyed by lowercase email in the users table. The opaque UserID is
// generated once at signup and never changes; it partitions the tasks table.
type User struct {
	Email        string     `json:"email" dynamodbav:"email"`
	UserID       string     `json:"userId" dynamodbav:"user_id"`
	Username     string     `json:"username" dynamodbav:"username"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	PasswordSalt string     `json:"-" dynamodbav:"password_salt"`
	CreatedAt    time.Time  `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" dynamodbav:"updated_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" dynamodbav:"last_login_at,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
