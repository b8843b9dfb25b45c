package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

// Struct validates the given struct using its validate tags.
// Returns a human-readable error string or nil.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

// ValidationError aggregates every violated rule for one input, in the order
// the rules were checked.
type ValidationError []string

func (e ValidationError) Error() string {
	return strings.Join(e, "; ")
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uuidRe  = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// Email reports whether the value has a local@domain.tld shape.
func Email(email string) bool {
	return emailRe.MatchString(email)
}

// PasswordStrength checks length >= 8 plus at least one uppercase letter, one
// lowercase letter and one digit. Unlike the aggregate input validators it
// short-circuits: only the first violated rule is reported.
func PasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// Required fails when the value is nil or an empty string.
func Required(value any, field string) error {
	if value == nil || value == "" {
		return ValidationError{fmt.Sprintf("%s is required", field)}
	}
	return nil
}

// String fails when the value is not a string, is blank after trimming, or
// its trimmed length exceeds maxLength. Length is counted in characters, not
// bytes, so multibyte input is not penalized. maxLength 0 disables the limit.
func String(value any, field string, maxLength int) error {
	s, ok := value.(string)
	if !ok {
		return ValidationError{fmt.Sprintf("%s must be a string", field)}
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ValidationError{fmt.Sprintf("%s cannot be empty", field)}
	}
	if maxLength > 0 && utf8.RuneCountInString(trimmed) > maxLength {
		return ValidationError{fmt.Sprintf("%s must not exceed %d characters", field, maxLength)}
	}
	return nil
}

// UUID fails unless the value is a UUID-shaped string (8-4-4-4-12 hex groups,
// case-insensitive).
func UUID(value any, field string) error {
	s, ok := value.(string)
	if !ok || !uuidRe.MatchString(strings.ToLower(s)) {
		return ValidationError{fmt.Sprintf("%s must be a valid UUID", field)}
	}
	return nil
}

// TaskID validates a task identifier from path parameters.
func TaskID(taskID string) error {
	if taskID == "" {
		return ValidationError{"task ID is required"}
	}
	return UUID(taskID, "taskId")
}

// Status fails unless the value is one of the accepted task statuses.
func Status(value string) error {
	switch value {
	case "pending", "in-progress", "completed", "cancelled":
		return nil
	}
	return ValidationError{"status must be one of: pending, in-progress, completed, cancelled"}
}
