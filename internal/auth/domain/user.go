package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is the name embedded in issued tokens.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail applies the canonical email form used for every comparison,
// storage and lookup: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
