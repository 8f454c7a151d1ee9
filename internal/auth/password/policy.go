// Package password evaluates candidate passwords against the account policy.
package password

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// bcryptMaxBytes is bcrypt's input limit. Anything longer is rejected by the
// hasher, so the policy must never accept it; an overlong password is a
// validation condition, not an internal error.
const bcryptMaxBytes = 72

// weakPasswords are rejected outright regardless of length or composition.
// Compared case-insensitively.
var weakPasswords = map[string]struct{}{
	"123456":    {},
	"12345678":  {},
	"password":  {},
	"password1": {},
	"qwerty":    {},
	"admin":     {},
	"letmein":   {},
	"welcome":   {},
}

// Policy holds the configurable length bounds.
type Policy struct {
	MinLength int
	MaxLength int
}

func NewPolicy(minLength, maxLength int) *Policy {
	if maxLength <= 0 || maxLength > bcryptMaxBytes {
		maxLength = bcryptMaxBytes
	}
	return &Policy{MinLength: minLength, MaxLength: maxLength}
}

// Validate checks a candidate password. Rules are evaluated in order and the
// first failure wins; the returned reason is safe to show to the user.
// Pure and safe for unsynchronized concurrent use.
func (p *Policy) Validate(password string) (bool, string) {
	if strings.TrimSpace(password) == "" {
		return false, "password is required"
	}

	// Minimum is counted in characters; the maximum stays byte-based because
	// bcrypt's limit is a byte limit.
	if utf8.RuneCountInString(password) < p.MinLength || len(password) > p.MaxLength {
		return false, fmt.Sprintf("password must be between %d and %d characters", p.MinLength, p.MaxLength)
	}

	var hasDigit, hasLetter bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if !hasDigit || !hasLetter {
		return false, "password must contain at least one letter and one digit"
	}

	if _, ok := weakPasswords[strings.ToLower(password)]; ok {
		return false, "password is too common, please choose another"
	}

	return true, ""
}
