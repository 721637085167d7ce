package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/vedran77/tick/internal/domain"
)

// Error is a single failed validation rule. Checks run in order and the
// first failure wins, so clients always see one deterministic message.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegister(email, password string) error {
	if email == "" || password == "" {
		return &Error{Field: "email", Message: "Email and password are required"}
	}
	if !emailRegex.MatchString(email) {
		return &Error{Field: "email", Message: "Invalid email format"}
	}
	if len(password) < 8 {
		return &Error{Field: "password", Message: "Password must be at least 8 characters long"}
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return &Error{Field: "email", Message: "Email and password are required"}
	}
	return nil
}

// ValidateTaskFields checks whichever fields are present; nil means the
// field was not supplied and is skipped. Create passes every field it has,
// partial update passes only what the client sent.
func ValidateTaskFields(title, description, dueDate, priority *string) error {
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return &Error{Field: "title", Message: "Title is required"}
		}
		if len(*title) > 255 {
			return &Error{Field: "title", Message: "Title must be less than 255 characters"}
		}
	}
	if description != nil && len(*description) > 1000 {
		return &Error{Field: "description", Message: "Description must be less than 1000 characters"}
	}
	if dueDate != nil && *dueDate != "" {
		if _, err := time.Parse("2006-01-02", *dueDate); err != nil {
			return &Error{Field: "due_date", Message: "Due date must be in YYYY-MM-DD format"}
		}
	}
	if priority != nil && *priority != "" {
		if !domain.Priority(*priority).Valid() {
			return &Error{Field: "priority", Message: "Priority must be low, medium, or high"}
		}
	}
	return nil
}
