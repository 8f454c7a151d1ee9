package errors

import (
	"errors"
)

var (
	ErrValidation         = errors.New("invalid input")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInternal           = errors.New("internal error")
)
