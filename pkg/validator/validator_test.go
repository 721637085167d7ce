package validator

import (
	"strings"
	"testing"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{
			name:     "valid input",
			email:    "user@example.com",
			password: "password123",
			wantMsg:  "",
		},
		{
			name:     "missing email",
			email:    "",
			password: "password123",
			wantMsg:  "Email and password are required",
		},
		{
			name:     "missing password",
			email:    "user@example.com",
			password: "",
			wantMsg:  "Email and password are required",
		},
		{
			name:     "no at sign",
			email:    "userexample.com",
			password: "password123",
			wantMsg:  "Invalid email format",
		},
		{
			name:     "no domain dot",
			email:    "user@example",
			password: "password123",
			wantMsg:  "Invalid email format",
		},
		{
			name:     "whitespace in email",
			email:    "us er@example.com",
			password: "password123",
			wantMsg:  "Invalid email format",
		},
		{
			name:     "password exactly 8",
			email:    "user@example.com",
			password: "12345678",
			wantMsg:  "",
		},
		{
			name:     "password 7 chars",
			email:    "user@example.com",
			password: "1234567",
			wantMsg:  "Password must be at least 8 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.email, tt.password)
			checkMessage(t, err, tt.wantMsg)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("user@example.com", "x"); err != nil {
		t.Errorf("ValidateLogin() = %v, want nil", err)
	}
	// login never rejects on email shape or password length, only presence
	if err := ValidateLogin("not-an-email", "x"); err != nil {
		t.Errorf("ValidateLogin() = %v, want nil", err)
	}
	err := ValidateLogin("", "password123")
	checkMessage(t, err, "Email and password are required")
}

func TestValidateTaskFields(t *testing.T) {
	long := strings.Repeat("a", 256)
	longDesc := strings.Repeat("a", 1001)
	maxTitle := strings.Repeat("a", 255)
	maxDesc := strings.Repeat("a", 1000)

	tests := []struct {
		name     string
		title    *string
		desc     *string
		dueDate  *string
		priority *string
		wantMsg  string
	}{
		{
			name:    "all absent",
			wantMsg: "",
		},
		{
			name:    "valid title",
			title:   ptr("Buy milk"),
			wantMsg: "",
		},
		{
			name:    "empty title",
			title:   ptr(""),
			wantMsg: "Title is required",
		},
		{
			name:    "whitespace title",
			title:   ptr("   "),
			wantMsg: "Title is required",
		},
		{
			name:    "title at limit",
			title:   ptr(maxTitle),
			wantMsg: "",
		},
		{
			name:    "title over limit",
			title:   ptr(long),
			wantMsg: "Title must be less than 255 characters",
		},
		{
			name:    "description at limit",
			desc:    ptr(maxDesc),
			wantMsg: "",
		},
		{
			name:    "description over limit",
			desc:    ptr(longDesc),
			wantMsg: "Description must be less than 1000 characters",
		},
		{
			name:    "valid due date",
			dueDate: ptr("2024-12-31"),
			wantMsg: "",
		},
		{
			name:    "malformed due date",
			dueDate: ptr("31/12/2024"),
			wantMsg: "Due date must be in YYYY-MM-DD format",
		},
		{
			name:     "priority low",
			priority: ptr("low"),
			wantMsg:  "",
		},
		{
			name:     "priority medium",
			priority: ptr("medium"),
			wantMsg:  "",
		},
		{
			name:     "priority high",
			priority: ptr("high"),
			wantMsg:  "",
		},
		{
			name:     "priority unknown",
			priority: ptr("urgent"),
			wantMsg:  "Priority must be low, medium, or high",
		},
		{
			name:     "priority uppercase rejected",
			priority: ptr("HIGH"),
			wantMsg:  "Priority must be low, medium, or high",
		},
		{
			name:    "first failure wins",
			title:   ptr(""),
			desc:    ptr(longDesc),
			wantMsg: "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskFields(tt.title, tt.desc, tt.dueDate, tt.priority)
			checkMessage(t, err, tt.wantMsg)
		})
	}
}

func checkMessage(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		if err != nil {
			t.Errorf("got error %q, want nil", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("got nil, want error %q", want)
	}
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func ptr(s string) *string {
	return &s
}
