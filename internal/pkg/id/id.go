package id

import (
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewUserID generates a new ULID string. ULIDs are lexicographically sortable
// by creation time and safe for use as DynamoDB partition keys.
func NewUserID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// NewTaskID generates a random UUID string. Task identifiers must be
// UUID-shaped because path-parameter validation enforces the 8-4-4-4-12 form.
func NewTaskID() string {
	return uuid.NewString()
}
