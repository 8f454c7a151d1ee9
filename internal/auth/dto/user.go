package dto

import (
	"time"

	"github.com/storelane/auth-service/internal/auth/domain"
)

// UserOutput is the sanitized user projection returned to callers. It never
// carries the password hash.
type UserOutput struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}

// AuthResult is the envelope both Register and Login resolve to. Message is
// always set; Token, User and ExpiresAt are only present on success.
type AuthResult struct {
	Success   bool        `json:"success"`
	Token     string      `json:"token,omitempty"`
	User      *UserOutput `json:"user,omitempty"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
	Message   string      `json:"message"`
}
